// Package game wires the floor and duel screens together and runs them in
// the terminal.
package game

import "github.com/samdwyer/thefloor/internal/protocol"

// State represents which screen the session is showing.
type State int

const (
	// StateFloor is the grid screen with the randomizer and challenges.
	StateFloor State = iota
	// StateDuel is the two-clock duel screen.
	StateDuel
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateFloor:
		return "floor"
	case StateDuel:
		return "duel"
	default:
		return "unknown"
	}
}

func stateOf(kind protocol.ScreenKind) State {
	if kind == protocol.ScreenDuel {
		return StateDuel
	}
	return StateFloor
}
