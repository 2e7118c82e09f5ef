// Package protocol defines the records the floor and duel screens exchange
// and the capability set every screen implements.
package protocol

import "time"

// ScreenKind identifies which screen is active or requested.
type ScreenKind int

const (
	// ScreenNone means no transition is requested.
	ScreenNone ScreenKind = iota
	// ScreenFloor is the grid screen.
	ScreenFloor
	// ScreenDuel is the duel screen.
	ScreenDuel
)

// String returns a human-readable screen name.
func (k ScreenKind) String() string {
	switch k {
	case ScreenNone:
		return "none"
	case ScreenFloor:
		return "floor"
	case ScreenDuel:
		return "duel"
	default:
		return "unknown"
	}
}

// ChallengePayload is handed from the floor to a new duel.
type ChallengePayload struct {
	ChallengerName   string
	DefenderName     string
	DefenderCategory string
}

// ResultPayload is handed from a finished duel back to the floor.
type ResultPayload struct {
	WinnerName string
	LoserName  string
}

// Transition is a pending request to swap the active screen.
// Exactly one of Challenge or Result is set, matching To.
type Transition struct {
	To        ScreenKind
	Challenge *ChallengePayload
	Result    *ResultPayload
}

// None reports whether no transition is requested.
func (t Transition) None() bool {
	return t.To == ScreenNone
}

// ToDuel builds a transition carrying a challenge.
func ToDuel(p ChallengePayload) Transition {
	return Transition{To: ScreenDuel, Challenge: &p}
}

// ToFloor builds a transition carrying a duel result.
func ToFloor(r ResultPayload) Transition {
	return Transition{To: ScreenFloor, Result: &r}
}

// Card is one image of a category sequence.
type Card struct {
	Index  int    // Sort key parsed from the file name
	Answer string // Text shown when the answer is revealed
}

// Sequence is an ordered list of cards for one category.
type Sequence []Card

// Screen is the capability set shared by the floor and duel screens.
// Update and HandleEvent are the only mutators and are never called concurrently.
type Screen interface {
	Kind() ScreenKind
	Update(delta time.Duration)
	HandleEvent(ev Event)
	PendingTransition() Transition
}
