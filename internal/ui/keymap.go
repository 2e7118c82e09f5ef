package ui

import "github.com/gdamore/tcell/v2"

// Command is a frontend action decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandConfirm // space: activate, start, correct answer, acknowledge
	CommandPass
	CommandPause
	CommandSelect // enter: challenge the tile under the cursor
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandConfirm:
		return "confirm"
	case CommandPass:
		return "pass"
	case CommandPause:
		return "pause"
	case CommandSelect:
		return "select"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyCommand maps a key press to a command.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyEnter:
		return CommandSelect
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return CommandPass
	case tcell.KeyUp:
		return CommandUp
	case tcell.KeyDown:
		return CommandDown
	case tcell.KeyLeft:
		return CommandLeft
	case tcell.KeyRight:
		return CommandRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return CommandConfirm
		case 'q', 'Q':
			return CommandQuit
		case 'x', 'X':
			return CommandPass
		case 'p', 'P':
			return CommandPause
		}
	}
	return CommandNone
}
