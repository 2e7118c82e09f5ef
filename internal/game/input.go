package game

import (
	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
	"github.com/samdwyer/thefloor/internal/protocol"
	"github.com/samdwyer/thefloor/internal/ui"
)

// translate turns a frontend command into an event for screen. Space means
// different things depending on where the screen is.
func translate(screen protocol.Screen, cmd ui.Command, cursor board.Position) (protocol.Event, bool) {
	switch s := screen.(type) {
	case *floor.Controller:
		switch cmd {
		case ui.CommandConfirm:
			if s.Phase() == floor.PhaseAwaitingResultAck {
				return protocol.Signal(protocol.EventAcknowledge), true
			}
			return protocol.Signal(protocol.EventActivate), true
		case ui.CommandSelect:
			return protocol.Select(cursor), true
		}
	case *duel.Controller:
		switch cmd {
		case ui.CommandConfirm:
			switch s.Phase() {
			case duel.PhaseNotStarted:
				return protocol.Signal(protocol.EventStart), true
			case duel.PhaseActive:
				return protocol.Signal(protocol.EventReveal), true
			case duel.PhaseTimeUp:
				return protocol.Signal(protocol.EventAcknowledge), true
			}
		case ui.CommandPass:
			return protocol.Signal(protocol.EventPass), true
		case ui.CommandPause:
			return protocol.Signal(protocol.EventPause), true
		}
	}
	return protocol.Event{}, false
}

// cursorStep returns the row and column offset for a movement command.
func cursorStep(cmd ui.Command) (dr, dc int, ok bool) {
	switch cmd {
	case ui.CommandUp:
		return -1, 0, true
	case ui.CommandDown:
		return 1, 0, true
	case ui.CommandLeft:
		return 0, -1, true
	case ui.CommandRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
