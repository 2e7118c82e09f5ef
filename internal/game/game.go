package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/thefloor/internal/gamedata"
	"github.com/samdwyer/thefloor/internal/ui"
)

// Game runs a session in the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	frame    time.Duration
	running  bool
}

// New creates a game on the real terminal.
func New(session *Session, theme gamedata.Theme) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(session, screen, theme), nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(session *Session, screen *ui.Screen, theme gamedata.Theme) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		session:  session,
		frame:    session.cfg.FrameInterval(),
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is done.
// Terminal events are read on their own goroutine; everything that touches
// the session happens here.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()
	last := time.Now()

	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.session.Update(ctx, now.Sub(last))
			last = now
		}
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	if f := g.session.Floor(); f != nil {
		g.renderer.RenderFloor(f, g.session.Cursor())
		return
	}
	g.renderer.RenderDuel(g.session.Duel())
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := ui.KeyCommand(ev)
		if cmd == ui.CommandQuit {
			g.running = false
			return
		}
		g.session.Command(ctx, cmd)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return
		}
		if p, ok := g.renderer.CellAt(ev.Position()); ok {
			g.session.Click(ctx, p)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}
