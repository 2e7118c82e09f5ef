package protocol

import "github.com/samdwyer/thefloor/internal/board"

// EventKind is the input alphabet shared by both screens.
type EventKind int

const (
	// EventActivate starts the randomizer.
	EventActivate EventKind = iota
	// EventAcknowledge confirms a result (floor merge, duel hand-back).
	EventAcknowledge
	// EventSelect picks a grid position; Pos is set.
	EventSelect
	// EventStart starts a duel.
	EventStart
	// EventReveal shows the answer and passes the turn.
	EventReveal
	// EventPass takes the time penalty and keeps the turn.
	EventPass
	// EventPause toggles the duel pause.
	EventPause
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventActivate:
		return "activate"
	case EventAcknowledge:
		return "acknowledge"
	case EventSelect:
		return "select"
	case EventStart:
		return "start"
	case EventReveal:
		return "reveal"
	case EventPass:
		return "pass"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Event is one discrete input delivered by the host loop.
type Event struct {
	Kind EventKind
	Pos  board.Position // Only meaningful for EventSelect
}

// Signal builds an event that carries no position.
func Signal(kind EventKind) Event {
	return Event{Kind: kind}
}

// Select builds a selection event for p.
func Select(p board.Position) Event {
	return Event{Kind: EventSelect, Pos: p}
}
