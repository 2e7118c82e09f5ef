package game

import (
	"testing"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
	"github.com/samdwyer/thefloor/internal/gamedata"
	"github.com/samdwyer/thefloor/internal/protocol"
	"github.com/samdwyer/thefloor/internal/ui"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	tiles, err := gamedata.DefaultTiles()
	if err != nil {
		t.Fatalf("DefaultTiles() error = %v", err)
	}
	b, err := board.New(board.DefaultSize, tiles)
	if err != nil {
		t.Fatalf("board.New() error = %v", err)
	}
	return b
}

func TestTranslateFloor(t *testing.T) {
	cursor := board.Position{Row: 1, Col: 2}
	idle := floor.New(testBoard(t), floor.DefaultRandomizerConfig(), nil)
	ack := floor.NewPostDuel(testBoard(t), floor.DefaultRandomizerConfig(), nil,
		protocol.ResultPayload{WinnerName: "Ada", LoserName: "Bruno"})

	tests := []struct {
		name   string
		screen protocol.Screen
		cmd    ui.Command
		want   protocol.Event
		ok     bool
	}{
		{"space activates", idle, ui.CommandConfirm, protocol.Signal(protocol.EventActivate), true},
		{"space acknowledges result", ack, ui.CommandConfirm, protocol.Signal(protocol.EventAcknowledge), true},
		{"enter selects cursor", idle, ui.CommandSelect, protocol.Select(cursor), true},
		{"pass ignored", idle, ui.CommandPass, protocol.Event{}, false},
		{"pause ignored", idle, ui.CommandPause, protocol.Event{}, false},
	}

	for _, tt := range tests {
		got, ok := translate(tt.screen, tt.cmd, cursor)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: translate() = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslateDuel(t *testing.T) {
	challenge := protocol.ChallengePayload{ChallengerName: "Ada", DefenderName: "Bruno", DefenderCategory: "Movies"}
	cfg := duel.DefaultConfig()

	notStarted := duel.New(challenge, nil, cfg)

	active := duel.New(challenge, nil, cfg)
	active.HandleEvent(protocol.Signal(protocol.EventStart))

	revealing := duel.New(challenge, nil, cfg)
	revealing.HandleEvent(protocol.Signal(protocol.EventStart))
	revealing.HandleEvent(protocol.Signal(protocol.EventReveal))

	over := duel.New(challenge, nil, cfg)
	over.HandleEvent(protocol.Signal(protocol.EventStart))
	over.Update(cfg.InitialTime)

	tests := []struct {
		name   string
		screen protocol.Screen
		cmd    ui.Command
		want   protocol.Event
		ok     bool
	}{
		{"space starts", notStarted, ui.CommandConfirm, protocol.Signal(protocol.EventStart), true},
		{"space reveals", active, ui.CommandConfirm, protocol.Signal(protocol.EventReveal), true},
		{"space during reveal", revealing, ui.CommandConfirm, protocol.Event{}, false},
		{"space acknowledges", over, ui.CommandConfirm, protocol.Signal(protocol.EventAcknowledge), true},
		{"pass", active, ui.CommandPass, protocol.Signal(protocol.EventPass), true},
		{"pause", revealing, ui.CommandPause, protocol.Signal(protocol.EventPause), true},
		{"enter ignored", active, ui.CommandSelect, protocol.Event{}, false},
	}

	for _, tt := range tests {
		got, ok := translate(tt.screen, tt.cmd, board.Position{})
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: translate() = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCursorStep(t *testing.T) {
	tests := []struct {
		cmd    ui.Command
		dr, dc int
		ok     bool
	}{
		{ui.CommandUp, -1, 0, true},
		{ui.CommandDown, 1, 0, true},
		{ui.CommandLeft, 0, -1, true},
		{ui.CommandRight, 0, 1, true},
		{ui.CommandConfirm, 0, 0, false},
	}

	for _, tt := range tests {
		dr, dc, ok := cursorStep(tt.cmd)
		if dr != tt.dr || dc != tt.dc || ok != tt.ok {
			t.Errorf("cursorStep(%v) = %d, %d, %v; want %d, %d, %v", tt.cmd, dr, dc, ok, tt.dr, tt.dc, tt.ok)
		}
	}
}
