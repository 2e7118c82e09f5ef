package game

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/config"
	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
	"github.com/samdwyer/thefloor/internal/gamedata"
	"github.com/samdwyer/thefloor/internal/protocol"
	"github.com/samdwyer/thefloor/internal/telemetry"
	"github.com/samdwyer/thefloor/internal/ui"
)

// Session owns the active screen and swaps it when the screen asks for a
// transition. Only one screen is live at a time. While a duel runs the
// session holds the board so the next grid screen can be rebuilt from it.
type Session struct {
	id       uuid.UUID
	cfg      config.Config
	registry *gamedata.SequenceRegistry
	rng      *rand.Rand
	tracer   trace.Tracer

	screen protocol.Screen
	floor  *floor.Controller
	duel   *duel.Controller
	board  *board.Board

	cursor      board.Position
	duels       int
	sweepSpan   trace.Span
	transitions int
}

// NewRand returns the generator for randomizer start tiles.
// A seed of 0 means a random seed will be generated.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSession starts on the grid screen with b. The session takes ownership of b.
func NewSession(ctx context.Context, cfg config.Config, b *board.Board, registry *gamedata.SequenceRegistry, rng *rand.Rand) *Session {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		registry: registry,
		rng:      rng,
		tracer:   tracer,
	}
	s.showFloor(floor.New(b, cfg.Randomizer(), rng))

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("board.size", b.Size()),
		attribute.Int("board.tiles", b.Len()),
		attribute.Int64("config.seed", cfg.Seed),
	)
	log.Printf("session %s started on a %dx%d floor", s.id, b.Size(), b.Size())
	return s
}

// Update advances the live screen by delta and applies any transition it raises.
func (s *Session) Update(ctx context.Context, delta time.Duration) {
	sweeping := s.floor != nil && s.floor.Phase() == floor.PhaseRandomizing
	s.screen.Update(delta)
	if sweeping && s.floor.Phase() != floor.PhaseRandomizing {
		s.endSweep()
	}
	s.applyTransition(ctx)
}

// HandleEvent forwards ev to the live screen and applies any transition it raises.
func (s *Session) HandleEvent(ctx context.Context, ev protocol.Event) {
	switch {
	case s.floor != nil:
		before := s.floor.Phase()
		s.floor.HandleEvent(ev)
		s.observeFloor(ctx, before)
	case s.duel != nil:
		before := s.duel.Phase()
		s.duel.HandleEvent(ev)
		if before == duel.PhaseNotStarted && s.duel.Phase() == duel.PhaseActive {
			s.traceDuelStart(ctx)
		}
	}
	s.applyTransition(ctx)
}

// Command applies a frontend command. Movement commands steer the floor
// cursor; the rest are translated into events for the live screen.
// It reports whether the command did anything.
func (s *Session) Command(ctx context.Context, cmd ui.Command) bool {
	if dr, dc, ok := cursorStep(cmd); ok {
		if s.floor == nil {
			return false
		}
		s.moveCursor(dr, dc)
		return true
	}
	ev, ok := translate(s.screen, cmd, s.cursor)
	if !ok {
		return false
	}
	s.HandleEvent(ctx, ev)
	return true
}

// Click selects the tile at p on the grid screen.
func (s *Session) Click(ctx context.Context, p board.Position) {
	if s.floor == nil {
		return
	}
	s.cursor = p
	s.HandleEvent(ctx, protocol.Select(p))
}

func (s *Session) moveCursor(dr, dc int) {
	size := s.floor.Size()
	s.cursor.Row = min(size-1, max(0, s.cursor.Row+dr))
	s.cursor.Col = min(size-1, max(0, s.cursor.Col+dc))
}

// observeFloor traces grid phase changes caused by an event.
func (s *Session) observeFloor(ctx context.Context, before floor.Phase) {
	after := s.floor.Phase()
	switch {
	case after == floor.PhaseRandomizing && before != floor.PhaseRandomizing:
		_, s.sweepSpan = s.tracer.Start(ctx, "floor.randomizer")
		s.sweepSpan.SetAttributes(
			attribute.String("session.id", s.id.String()),
			attribute.Int("randomizer.start_index", s.floor.Randomizer().Highlighted()),
		)
	case before == floor.PhaseAwaitingResultAck && after == floor.PhasePostDuelIdle:
		res, _ := s.floor.Result()
		_, span := s.tracer.Start(ctx, "floor.merge")
		span.SetAttributes(
			attribute.String("session.id", s.id.String()),
			attribute.String("merge.winner", res.WinnerName),
			attribute.String("merge.loser", res.LoserName),
			attribute.Int("merge.winner_tiles", len(s.floor.Emphasized())),
		)
		span.End()
		if held := s.floor.Emphasized(); len(held) > 0 {
			s.cursor = s.floor.Board().PositionAt(held[0])
		}
		log.Printf("floor merged: %s now holds %d tiles", res.WinnerName, len(s.floor.Emphasized()))
	}
}

func (s *Session) endSweep() {
	idx, _ := s.floor.FinalIndex()
	s.cursor = s.floor.Board().PositionAt(idx)
	if s.sweepSpan == nil {
		return
	}
	r := s.floor.Randomizer()
	s.sweepSpan.SetAttributes(
		attribute.Int("randomizer.final_index", idx),
		attribute.Int("randomizer.steps", r.Steps()),
		attribute.Int64("randomizer.elapsed_ms", r.Elapsed().Milliseconds()),
	)
	s.sweepSpan.End()
	s.sweepSpan = nil
}

func (s *Session) traceDuelStart(ctx context.Context) {
	ch := s.duel.Challenge()
	_, span := s.tracer.Start(ctx, "duel.start")
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("duel.challenger", ch.ChallengerName),
		attribute.String("duel.defender", ch.DefenderName),
		attribute.Int("duel.cards", s.duel.SequenceLen()),
	)
	span.End()
}

// applyTransition swaps the live screen if it has raised a transition.
func (s *Session) applyTransition(ctx context.Context) {
	t := s.screen.PendingTransition()
	if t.None() {
		return
	}

	switch {
	case t.To == protocol.ScreenDuel && t.Challenge != nil:
		s.enterDuel(ctx, *t.Challenge)
	case t.To == protocol.ScreenFloor && t.Result != nil:
		s.enterFloor(ctx, *t.Result)
	default:
		log.Printf("ignoring malformed transition to %s", t.To)
		return
	}
	s.transitions++
}

func (s *Session) enterDuel(ctx context.Context, challenge protocol.ChallengePayload) {
	_, span := s.tracer.Start(ctx, "floor.challenge")
	defer span.End()

	origin, target, _ := s.floor.Selection()
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("challenge.challenger", challenge.ChallengerName),
		attribute.String("challenge.defender", challenge.DefenderName),
		attribute.String("challenge.category", challenge.DefenderCategory),
		attribute.String("challenge.origin", origin.String()),
		attribute.String("challenge.target", target.String()),
	)

	seq, err := s.registry.Resolve(challenge.DefenderCategory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "category has no images")
		log.Printf("duel %s vs %s: %v", challenge.ChallengerName, challenge.DefenderName, err)
	}
	span.SetAttributes(
		attribute.Int("challenge.cards", len(seq)),
		attribute.Int("registry.categories_cached", s.registry.Count()),
	)

	s.board = s.floor.Board()
	s.duels++
	s.showDuel(duel.New(challenge, seq, s.cfg.Duel()))
	log.Printf("duel %d: %s challenges %s for %s (%d cards, %d categories loaded)",
		s.duels, challenge.ChallengerName, challenge.DefenderName, challenge.DefenderCategory, len(seq), s.registry.Count())
}

func (s *Session) enterFloor(ctx context.Context, result protocol.ResultPayload) {
	_, span := s.tracer.Start(ctx, "duel.end")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("duel.winner", result.WinnerName),
		attribute.String("duel.loser", result.LoserName),
	)

	b := s.board
	s.board = nil
	s.showFloor(floor.NewPostDuel(b, s.cfg.Randomizer(), s.rng, result))
	log.Printf("duel %d: %s beats %s", s.duels, result.WinnerName, result.LoserName)
}

func (s *Session) showFloor(c *floor.Controller) {
	s.floor, s.duel, s.screen = c, nil, c
}

func (s *Session) showDuel(c *duel.Controller) {
	s.floor, s.duel, s.screen = nil, c, c
}

// =============================================================================
// Queries
// =============================================================================

// ID returns the session id attached to every span.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns which screen is live.
func (s *Session) State() State {
	return stateOf(s.screen.Kind())
}

// Screen returns the live screen.
func (s *Session) Screen() protocol.Screen {
	return s.screen
}

// Floor returns the grid screen, or nil while a duel runs.
func (s *Session) Floor() *floor.Controller {
	return s.floor
}

// Duel returns the duel screen, or nil while the grid is shown.
func (s *Session) Duel() *duel.Controller {
	return s.duel
}

// Cursor returns the keyboard selection on the grid.
func (s *Session) Cursor() board.Position {
	return s.cursor
}

// Transitions returns how many screen swaps have happened.
func (s *Session) Transitions() int {
	return s.transitions
}
