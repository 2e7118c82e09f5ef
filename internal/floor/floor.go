// Package floor implements the grid screen: the randomizer, challenge
// selection and the post-duel territory merge.
package floor

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/protocol"
)

// Phase is the grid screen's top-level state.
type Phase int

const (
	// PhaseIdle waits for the randomizer to be activated.
	PhaseIdle Phase = iota
	// PhaseRandomizing runs the highlight sweep.
	PhaseRandomizing
	// PhaseAwaitingChallenge waits for the landing tile to pick a neighbour.
	PhaseAwaitingChallenge
	// PhaseAwaitingResultAck shows a duel result until acknowledged.
	PhaseAwaitingResultAck
	// PhasePostDuelIdle lets the winner challenge again or restart the randomizer.
	PhasePostDuelIdle
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRandomizing:
		return "randomizing"
	case PhaseAwaitingChallenge:
		return "awaiting_challenge"
	case PhaseAwaitingResultAck:
		return "awaiting_result_ack"
	case PhasePostDuelIdle:
		return "post_duel_idle"
	default:
		return "unknown"
	}
}

// Controller owns the board and drives the grid screen.
type Controller struct {
	cfg   RandomizerConfig
	board *board.Board
	rng   *rand.Rand

	phase       Phase
	randomizer  *Randomizer
	highlighted int // -1 when nothing is lit
	finalIndex  int // -1 until a sweep lands
	emphasized  []int

	origin, target board.Position
	selected       bool

	result  *protocol.ResultPayload
	winner  string
	pending protocol.Transition
}

// New creates a grid screen in PhaseIdle. The controller takes ownership of b.
func New(b *board.Board, cfg RandomizerConfig, rng *rand.Rand) *Controller {
	return &Controller{
		cfg:         cfg,
		board:       b,
		rng:         rng,
		phase:       PhaseIdle,
		highlighted: -1,
		finalIndex:  -1,
	}
}

// NewPostDuel creates a grid screen that shows result and waits for an
// acknowledge before merging.
func NewPostDuel(b *board.Board, cfg RandomizerConfig, rng *rand.Rand, result protocol.ResultPayload) *Controller {
	c := New(b, cfg, rng)
	c.phase = PhaseAwaitingResultAck
	c.result = &result
	return c
}

// Kind implements protocol.Screen.
func (c *Controller) Kind() protocol.ScreenKind {
	return protocol.ScreenFloor
}

// Update advances the randomizer while it is running.
func (c *Controller) Update(delta time.Duration) {
	if c.phase != PhaseRandomizing {
		return
	}
	done := c.randomizer.Step(delta)
	c.highlighted = c.randomizer.Highlighted()
	if done {
		c.finalIndex = c.highlighted
		c.phase = PhaseAwaitingChallenge
	}
}

// HandleEvent applies one input. Inputs that do not fit the current phase are ignored.
func (c *Controller) HandleEvent(ev protocol.Event) {
	if !c.pending.None() {
		return
	}

	switch c.phase {
	case PhaseIdle:
		if ev.Kind == protocol.EventActivate {
			c.startRandomizer()
		}
	case PhaseAwaitingChallenge:
		switch ev.Kind {
		case protocol.EventSelect:
			c.challengeFromLanding(ev.Pos)
		case protocol.EventActivate:
			if c.Stranded() {
				c.startRandomizer()
			}
		}
	case PhaseAwaitingResultAck:
		if ev.Kind == protocol.EventAcknowledge {
			c.applyMerge()
		}
	case PhasePostDuelIdle:
		switch ev.Kind {
		case protocol.EventActivate:
			c.startRandomizer()
		case protocol.EventSelect:
			c.challengeFromWinner(ev.Pos)
		}
	}
}

// PendingTransition implements protocol.Screen.
func (c *Controller) PendingTransition() protocol.Transition {
	return c.pending
}

// startRandomizer resets the sweep state and begins a new sweep.
func (c *Controller) startRandomizer() {
	start := 0
	if c.rng != nil {
		start = c.rng.Intn(c.board.Len())
	}
	c.randomizer = NewRandomizer(c.cfg, c.board.Len(), start)
	c.phase = PhaseRandomizing
	c.highlighted = start
	c.finalIndex = -1
	c.emphasized = nil
	c.winner = ""
	c.selected = false
}

// challengeFromLanding validates a selection against the tile the sweep landed on.
func (c *Controller) challengeFromLanding(target board.Position) {
	if c.finalIndex < 0 {
		return
	}
	origin := c.board.PositionAt(c.finalIndex)
	if !c.validChallenge(origin, target) {
		return
	}
	from, _ := c.board.Tile(origin)
	c.emitChallenge(from.Owner, origin, target)
}

// challengeFromWinner validates a selection against every tile the last
// winner holds.
func (c *Controller) challengeFromWinner(target board.Position) {
	if c.winner == "" {
		return
	}
	for _, origin := range c.board.OwnedBy(c.winner) {
		if c.validChallenge(origin, target) {
			c.emitChallenge(c.winner, origin, target)
			return
		}
	}
}

func (c *Controller) validChallenge(origin, target board.Position) bool {
	if !c.board.InBounds(target) || !origin.Adjacent(target) {
		return false
	}
	from, _ := c.board.Tile(origin)
	to, _ := c.board.Tile(target)
	return from.Owner != to.Owner
}

func (c *Controller) emitChallenge(challenger string, origin, target board.Position) {
	defender, _ := c.board.Tile(target)
	c.origin, c.target, c.selected = origin, target, true
	c.pending = protocol.ToDuel(protocol.ChallengePayload{
		ChallengerName:   challenger,
		DefenderName:     defender.Owner,
		DefenderCategory: defender.Category,
	})
}

// applyMerge folds the loser's tiles into the winner's territory.
func (c *Controller) applyMerge() {
	c.board.Merge(c.result.WinnerName, c.result.LoserName)
	c.winner = c.result.WinnerName
	c.emphasized = c.emphasized[:0]
	for _, p := range c.board.OwnedBy(c.winner) {
		c.emphasized = append(c.emphasized, c.board.Index(p))
	}
	c.phase = PhasePostDuelIdle
}

// =============================================================================
// Queries
// =============================================================================

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Board returns a copy of the tile table.
func (c *Controller) Board() *board.Board {
	return c.board.Clone()
}

// Tiles returns the tiles in row-major order.
func (c *Controller) Tiles() []board.Tile {
	return c.board.Tiles()
}

// Size returns the grid side length.
func (c *Controller) Size() int {
	return c.board.Size()
}

// Highlighted returns the index lit by the randomizer, if any.
func (c *Controller) Highlighted() (int, bool) {
	return c.highlighted, c.highlighted >= 0
}

// FinalIndex returns the index the last sweep landed on, if any.
func (c *Controller) FinalIndex() (int, bool) {
	return c.finalIndex, c.finalIndex >= 0
}

// Emphasized returns the winner's tile indices after a merge.
func (c *Controller) Emphasized() []int {
	return slices.Clone(c.emphasized)
}

// Selection returns the origin and target of the emitted challenge.
func (c *Controller) Selection() (origin, target board.Position, ok bool) {
	return c.origin, c.target, c.selected
}

// Result returns the duel result this screen was entered with, if any.
func (c *Controller) Result() (protocol.ResultPayload, bool) {
	if c.result == nil {
		return protocol.ResultPayload{}, false
	}
	return *c.result, true
}

// Winner returns the owner allowed to click-to-challenge in PhasePostDuelIdle.
func (c *Controller) Winner() string {
	return c.winner
}

// Randomizer returns the running or finished sweep, or nil before the first one.
func (c *Controller) Randomizer() *Randomizer {
	return c.randomizer
}

// ValidTargets returns the positions a selection would currently accept.
func (c *Controller) ValidTargets() []board.Position {
	switch c.phase {
	case PhaseAwaitingChallenge:
		if c.finalIndex < 0 {
			return nil
		}
		return c.board.ChallengeTargets(c.board.PositionAt(c.finalIndex))
	case PhasePostDuelIdle:
		seen := make(map[board.Position]bool)
		var result []board.Position
		for _, origin := range c.board.OwnedBy(c.winner) {
			for _, q := range c.board.ChallengeTargets(origin) {
				if !seen[q] {
					seen[q] = true
					result = append(result, q)
				}
			}
		}
		return result
	default:
		return nil
	}
}

// Stranded reports whether the landing tile has no neighbour to challenge.
// A stranded sweep can be restarted with EventActivate.
func (c *Controller) Stranded() bool {
	if c.phase != PhaseAwaitingChallenge || c.finalIndex < 0 {
		return false
	}
	return len(c.board.ChallengeTargets(c.board.PositionAt(c.finalIndex))) == 0
}

// Message returns the status line for the current phase.
func (c *Controller) Message() string {
	switch c.phase {
	case PhaseIdle:
		return "Press SPACE to ACTIVATE THE RANDOMIZER"
	case PhaseRandomizing:
		return "Randomizing..."
	case PhaseAwaitingChallenge:
		tile := c.board.TileAt(c.finalIndex)
		if c.Stranded() {
			return fmt.Sprintf("%s has no one to challenge. Press SPACE to spin again!", tile.Owner)
		}
		return fmt.Sprintf("%s, pick an adjacent tile to challenge!", tile.Owner)
	case PhaseAwaitingResultAck:
		return fmt.Sprintf("Duel ended. Winner: %s. Loser: %s. Press SPACE to update the FLOOR!",
			c.result.WinnerName, c.result.LoserName)
	case PhasePostDuelIdle:
		return fmt.Sprintf("%s, pick a tile to challenge or press SPACE for the randomizer", c.winner)
	default:
		return ""
	}
}
