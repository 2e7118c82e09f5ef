package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want Command
	}{
		{tcell.KeyRune, ' ', CommandConfirm},
		{tcell.KeyRune, 'q', CommandQuit},
		{tcell.KeyRune, 'x', CommandPass},
		{tcell.KeyRune, 'P', CommandPause},
		{tcell.KeyRune, 'z', CommandNone},
		{tcell.KeyEscape, 0, CommandQuit},
		{tcell.KeyCtrlC, 0, CommandQuit},
		{tcell.KeyEnter, 0, CommandSelect},
		{tcell.KeyBackspace2, 0, CommandPass},
		{tcell.KeyUp, 0, CommandUp},
		{tcell.KeyLeft, 0, CommandLeft},
		{tcell.KeyTab, 0, CommandNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
		if got := KeyCommand(ev); got != tt.want {
			t.Errorf("KeyCommand(%v, %q) = %v, want %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CommandConfirm, "confirm"},
		{CommandSelect, "select"},
		{CommandRight, "right"},
		{Command(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}
