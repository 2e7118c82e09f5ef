package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
	"github.com/samdwyer/thefloor/internal/gamedata"
	"github.com/samdwyer/thefloor/internal/ui"
)

func newTestGame(t *testing.T, s *Session) (*Game, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	sim.SetSize(80, 24)
	return NewWithScreen(s, screen, gamedata.MustLoadTheme()), sim
}

func TestRunQuitsOnKey(t *testing.T) {
	s, _ := newTestSession(t, gamedata.NewSequenceRegistry(nil))
	g, sim := newTestGame(t, s)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, g.Run(ctx))
	require.NoError(t, ctx.Err(), "Run should stop on q, not on the deadline")
	assert.Equal(t, floor.PhaseRandomizing, s.Floor().Phase())
}

func TestRunStopsOnContext(t *testing.T) {
	s, _ := newTestSession(t, gamedata.NewSequenceRegistry(nil))
	g, _ := newTestGame(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.Run(ctx))
	assert.Equal(t, floor.PhaseIdle, s.Floor().Phase())
}

func TestMouseClickChallenges(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, gamedata.NewSequenceRegistry(nil))
	g, _ := newTestGame(t, s)
	t.Cleanup(g.screen.Close)

	sweep(t, s)
	g.render()

	target := s.Floor().ValidTargets()[0]
	// 80x24 lays out 26x6 cells starting at column 1, row 2.
	x, y := 1+target.Col*26+5, 2+target.Row*6+2

	g.handleEvent(ctx, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, StateFloor, s.State(), "motion without a button does nothing")

	g.handleEvent(ctx, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, StateDuel, s.State())
	assert.Equal(t, target, s.Cursor())

	g.render()
	g.handleEvent(ctx, tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, g.running)
	assert.Equal(t, duel.PhaseActive, s.Duel().Phase())
}
