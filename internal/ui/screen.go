// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s, which may be a simulation screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
// It returns nil once the screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fill paints a w x h rectangle with r.
func (s *Screen) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, r, style)
		}
	}
}

// Box draws a single-line frame around a w x h rectangle.
func (s *Screen) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		s.SetContent(col, y, tcell.RuneHLine, style)
		s.SetContent(col, bottom, tcell.RuneHLine, style)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetContent(x, row, tcell.RuneVLine, style)
		s.SetContent(right, row, tcell.RuneVLine, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, style)
	s.SetContent(right, y, tcell.RuneURCorner, style)
	s.SetContent(x, bottom, tcell.RuneLLCorner, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// DrawText writes text starting at (x, y) and returns the column after it.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		s.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// DrawCentered writes text centered within [x, x+width), truncating it to fit.
func (s *Screen) DrawCentered(x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:max(0, width)]
	}
	s.DrawText(x+(width-len(runes))/2, y, string(runes), style)
}
