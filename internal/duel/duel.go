// Package duel implements the duel screen: two countdown clocks, turn
// alternation and the reveal, pass and pause protocol.
package duel

import (
	"time"

	"github.com/samdwyer/thefloor/internal/protocol"
)

// Phase is the duel screen's state.
type Phase int

const (
	// PhaseNotStarted waits for the start signal.
	PhaseNotStarted Phase = iota
	// PhaseActive runs the active player's clock.
	PhaseActive
	// PhaseRevealPause shows the answer before the turn passes.
	PhaseRevealPause
	// PhasePassPenalty shows the answer after a pass; the turn is kept.
	PhasePassPenalty
	// PhasePaused freezes every countdown.
	PhasePaused
	// PhaseTimeUp means a clock ran out; the duel waits for acknowledgement.
	PhaseTimeUp
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseActive:
		return "active"
	case PhaseRevealPause:
		return "reveal_pause"
	case PhasePassPenalty:
		return "pass_penalty"
	case PhasePaused:
		return "paused"
	case PhaseTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// AnswerTag says how the current answer is being shown.
type AnswerTag int

const (
	// TagHidden means no answer is shown.
	TagHidden AnswerTag = iota
	// TagReveal marks a correct answer being revealed.
	TagReveal
	// TagPenalty marks an answer shown after a pass.
	TagPenalty
)

// Config holds the duel timings.
type Config struct {
	InitialTime time.Duration // Clock per player
	RevealPause time.Duration // Answer display after a reveal
	PassPenalty time.Duration // Time taken from the clock and answer display after a pass
}

// DefaultConfig returns 10s clocks with 3s reveal and pass pauses.
func DefaultConfig() Config {
	return Config{
		InitialTime: 10 * time.Second,
		RevealPause: 3 * time.Second,
		PassPenalty: 3 * time.Second,
	}
}

const (
	challenger = 0
	defender   = 1
)

// Controller runs a single duel. It is built from a challenge payload and an
// already resolved image sequence and never looks at the board.
type Controller struct {
	cfg       Config
	challenge protocol.ChallengePayload
	sequence  protocol.Sequence

	timers     [2]PlayerTimer
	active     int
	cursor     int
	phase      Phase
	pausedFrom Phase
	countdown  time.Duration // Remaining reveal or penalty display

	result  *protocol.ResultPayload
	pending protocol.Transition
}

// New creates a duel in PhaseNotStarted with both clocks full.
func New(challenge protocol.ChallengePayload, sequence protocol.Sequence, cfg Config) *Controller {
	c := &Controller{
		cfg:       cfg,
		challenge: challenge,
		sequence:  sequence,
		phase:     PhaseNotStarted,
	}
	c.timers[challenger] = PlayerTimer{Name: challenge.ChallengerName, Remaining: cfg.InitialTime}
	c.timers[defender] = PlayerTimer{Name: challenge.DefenderName, Remaining: cfg.InitialTime}
	return c
}

// Kind implements protocol.Screen.
func (c *Controller) Kind() protocol.ScreenKind {
	return protocol.ScreenDuel
}

// Update advances clocks and countdowns by delta.
func (c *Controller) Update(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}

	switch c.phase {
	case PhaseActive:
		c.timers[c.active] = Tick(c.timers[c.active], delta)
		if c.timers[c.active].Expired() {
			c.timeUp()
		}
	case PhaseRevealPause:
		if c.drainCountdown(delta) {
			c.advanceCursor()
			c.toggleActive()
			c.phase = PhaseActive
		}
	case PhasePassPenalty:
		if c.drainCountdown(delta) {
			c.advanceCursor()
			if c.timers[c.active].Expired() {
				c.timeUp()
				return
			}
			c.phase = PhaseActive
		}
	}
}

// HandleEvent applies one input. Inputs that do not fit the current phase are ignored.
func (c *Controller) HandleEvent(ev protocol.Event) {
	switch ev.Kind {
	case protocol.EventPause:
		c.togglePause()
	case protocol.EventStart:
		if c.phase == PhaseNotStarted {
			c.start()
		}
	case protocol.EventReveal:
		if c.phase == PhaseActive && !c.timers[c.active].Expired() {
			c.countdown = c.cfg.RevealPause
			c.phase = PhaseRevealPause
		}
	case protocol.EventPass:
		if c.phase == PhaseActive && !c.timers[c.active].Expired() {
			c.timers[c.active] = Penalize(c.timers[c.active], c.cfg.PassPenalty)
			c.countdown = c.cfg.PassPenalty
			c.phase = PhasePassPenalty
		}
	case protocol.EventAcknowledge:
		if c.phase == PhaseTimeUp && c.pending.None() {
			c.pending = protocol.ToFloor(*c.result)
		}
	}
}

// PendingTransition implements protocol.Screen.
func (c *Controller) PendingTransition() protocol.Transition {
	return c.pending
}

func (c *Controller) start() {
	c.timers[challenger].Remaining = c.cfg.InitialTime
	c.timers[defender].Remaining = c.cfg.InitialTime
	c.timers[challenger].Active = true
	c.timers[defender].Active = false
	c.active = challenger
	c.cursor = 0
	c.phase = PhaseActive
}

func (c *Controller) togglePause() {
	switch c.phase {
	case PhasePaused:
		c.phase = c.pausedFrom
	case PhaseTimeUp:
	default:
		c.pausedFrom = c.phase
		c.phase = PhasePaused
	}
}

// drainCountdown consumes delta from the display countdown and reports expiry.
func (c *Controller) drainCountdown(delta time.Duration) bool {
	c.countdown = max(0, c.countdown-delta)
	return c.countdown == 0
}

// advanceCursor moves to the next card, holding on the last one.
func (c *Controller) advanceCursor() {
	if c.cursor < len(c.sequence)-1 {
		c.cursor++
	}
}

func (c *Controller) toggleActive() {
	c.timers[c.active].Active = false
	c.active = 1 - c.active
	c.timers[c.active].Active = true
}

func (c *Controller) timeUp() {
	loser := c.active
	winner := 1 - loser
	c.timers[loser].Active = false
	c.countdown = 0
	c.phase = PhaseTimeUp
	c.result = &protocol.ResultPayload{
		WinnerName: c.timers[winner].Name,
		LoserName:  c.timers[loser].Name,
	}
}

// =============================================================================
// Queries
// =============================================================================

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// PausedFrom returns the phase a pause will restore.
func (c *Controller) PausedFrom() Phase {
	return c.pausedFrom
}

// Challenge returns the payload the duel was built from.
func (c *Controller) Challenge() protocol.ChallengePayload {
	return c.challenge
}

// Timers returns the challenger's and defender's clocks, in that order.
func (c *Controller) Timers() [2]PlayerTimer {
	return c.timers
}

// ActivePlayer returns the index (0 challenger, 1 defender) whose turn it is.
func (c *Controller) ActivePlayer() int {
	return c.active
}

// Countdown returns what is left of the reveal or penalty display.
func (c *Controller) Countdown() time.Duration {
	return c.countdown
}

// Cursor returns the current card position.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Card returns the current card. The second result is false for an empty sequence.
func (c *Controller) Card() (protocol.Card, bool) {
	if len(c.sequence) == 0 {
		return protocol.Card{}, false
	}
	return c.sequence[c.cursor], true
}

// SequenceLen returns the number of cards in the duel.
func (c *Controller) SequenceLen() int {
	return len(c.sequence)
}

// AnswerTag returns how the current answer is shown, looking through a pause.
func (c *Controller) AnswerTag() AnswerTag {
	phase := c.phase
	if phase == PhasePaused {
		phase = c.pausedFrom
	}
	switch phase {
	case PhaseRevealPause:
		return TagReveal
	case PhasePassPenalty:
		return TagPenalty
	default:
		return TagHidden
	}
}

// Result returns the outcome once a clock has run out.
func (c *Controller) Result() (protocol.ResultPayload, bool) {
	if c.result == nil {
		return protocol.ResultPayload{}, false
	}
	return *c.result, true
}
