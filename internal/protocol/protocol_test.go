package protocol

import (
	"testing"

	"github.com/samdwyer/thefloor/internal/board"
)

func TestScreenKindString(t *testing.T) {
	tests := []struct {
		kind     ScreenKind
		expected string
	}{
		{ScreenNone, "none"},
		{ScreenFloor, "floor"},
		{ScreenDuel, "duel"},
		{ScreenKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ScreenKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventActivate, "activate"},
		{EventAcknowledge, "acknowledge"},
		{EventSelect, "select"},
		{EventStart, "start"},
		{EventReveal, "reveal"},
		{EventPass, "pass"},
		{EventPause, "pause"},
		{EventKind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestTransitionBuilders(t *testing.T) {
	var zero Transition
	if !zero.None() {
		t.Error("zero Transition should report None()")
	}

	duel := ToDuel(ChallengePayload{ChallengerName: "A", DefenderName: "B", DefenderCategory: "Nature"})
	if duel.To != ScreenDuel || duel.Challenge == nil || duel.Result != nil {
		t.Errorf("ToDuel() = %+v", duel)
	}
	if duel.Challenge.DefenderCategory != "Nature" {
		t.Errorf("ToDuel().Challenge.DefenderCategory = %q, want Nature", duel.Challenge.DefenderCategory)
	}

	floor := ToFloor(ResultPayload{WinnerName: "A", LoserName: "B"})
	if floor.To != ScreenFloor || floor.Result == nil || floor.Challenge != nil {
		t.Errorf("ToFloor() = %+v", floor)
	}
}

func TestSelect(t *testing.T) {
	ev := Select(board.Position{Row: 2, Col: 1})
	if ev.Kind != EventSelect || ev.Pos != (board.Position{Row: 2, Col: 1}) {
		t.Errorf("Select() = %+v", ev)
	}
}
