package ui

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
	"github.com/samdwyer/thefloor/internal/gamedata"
)

const (
	floorTitle = "THE FLOOR!"
	duelHelp   = "SPACE correct   X pass   P pause   ESC quit"
	floorHelp  = "ARROWS move   ENTER challenge   click a tile   ESC quit"

	minCellWidth  = 8
	minCellHeight = 3
)

// gridLayout remembers where the last floor frame put its cells.
type gridLayout struct {
	x, y   int
	cellW  int
	cellH  int
	size   int
	active bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  gamedata.Theme
	layout gridLayout
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

func (r *Renderer) style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

func (r *Renderer) clear() (width, height int) {
	r.screen.Clear()
	width, height = r.screen.Size()
	r.screen.Fill(0, 0, width, height, ' ', r.style(r.theme.Text, r.theme.Background))
	return width, height
}

// RenderFloor draws the grid screen. cursor marks the keyboard selection.
func (r *Renderer) RenderFloor(c *floor.Controller, cursor board.Position) {
	width, height := r.clear()
	base := r.style(r.theme.Text, r.theme.Background)

	r.screen.DrawCentered(0, 0, width, floorTitle, base.Bold(true))

	size := c.Size()
	cellW := max(minCellWidth, (width-2)/size)
	cellH := max(minCellHeight, (height-5)/size)
	r.layout = gridLayout{
		x:      max(0, (width-cellW*size)/2),
		y:      2,
		cellW:  cellW,
		cellH:  cellH,
		size:   size,
		active: true,
	}

	highlighted, lit := c.Highlighted()
	if c.Phase() != floor.PhaseRandomizing {
		highlighted, lit = c.FinalIndex()
	}
	emphasized := c.Emphasized()
	targets := c.ValidTargets()
	selecting := len(targets) > 0

	for i, tile := range c.Tiles() {
		x := r.layout.x + tile.Col*cellW
		y := r.layout.y + tile.Row*cellH

		bg := r.theme.Tile
		switch {
		case lit && i == highlighted:
			bg = r.theme.Highlight
		case slices.Contains(emphasized, i):
			bg = r.theme.Emphasis
		}
		r.screen.Fill(x, y, cellW, cellH, ' ', r.style(r.theme.Text, bg))

		frame := r.style(r.theme.GridLine, bg)
		if selecting && tile.Position == cursor {
			frame = r.style(r.theme.Highlight, bg).Bold(true)
		}
		r.screen.Box(x, y, cellW, cellH, frame)

		name := r.style(r.theme.Text, bg).Bold(true)
		if selecting && slices.Contains(targets, tile.Position) {
			name = name.Underline(true)
		}
		mid := y + cellH/2
		if cellH > minCellHeight {
			r.screen.DrawCentered(x+1, mid-1, cellW-2, tile.Owner, name)
			r.screen.DrawCentered(x+1, mid, cellW-2, tile.Category, r.style(r.theme.Text, bg))
		} else {
			r.screen.DrawCentered(x+1, mid, cellW-2, tile.Owner, name)
		}
	}

	r.screen.DrawCentered(0, height-2, width, c.Message(), base)
	if selecting {
		r.screen.DrawCentered(0, height-1, width, floorHelp, base.Dim(true))
	}
	r.screen.Show()
}

// RenderDuel draws the duel screen.
func (r *Renderer) RenderDuel(d *duel.Controller) {
	width, height := r.clear()
	r.layout.active = false
	base := r.style(r.theme.Text, r.theme.Background)

	ch := d.Challenge()
	r.screen.DrawCentered(0, 0, width, fmt.Sprintf("%s vs %s", ch.ChallengerName, ch.DefenderName), base.Bold(true))
	r.screen.DrawCentered(0, 1, width, "Category: "+ch.DefenderCategory, base)

	half := width / 2
	for i, t := range d.Timers() {
		style := base
		if t.Active && d.Phase() != duel.PhaseTimeUp {
			style = r.style(r.theme.ActiveTimer, r.theme.Background).Bold(true)
		}
		r.screen.DrawCentered(i*half, 3, half, t.Name, style)
		r.screen.DrawCentered(i*half, 4, half, duel.FormatClock(t.Remaining), style)
	}

	cardX, cardY := 2, 6
	cardW, cardH := max(0, width-4), max(0, height-9)
	card := r.style(r.theme.CardText, r.theme.Card)
	r.screen.Fill(cardX, cardY, cardW, cardH, ' ', card)
	r.screen.Box(cardX, cardY, cardW, cardH, r.style(r.theme.GridLine, r.theme.Card))

	mid := cardY + cardH/2
	for i, line := range r.cardLines(d) {
		style := card
		if i == 1 {
			switch d.AnswerTag() {
			case duel.TagReveal:
				style = r.style(r.theme.Reveal, r.theme.Card).Bold(true)
			case duel.TagPenalty:
				style = r.style(r.theme.Penalty, r.theme.Card).Bold(true)
			}
		}
		r.screen.DrawCentered(cardX+1, mid-1+i, cardW-2, line, style)
	}

	if d.Phase() == duel.PhasePaused {
		r.screen.DrawCentered(0, cardY+1, width, " PAUSED - press P to resume ", r.style(r.theme.Background, r.theme.Highlight).Bold(true))
	}

	r.screen.DrawCentered(0, height-2, width, duelHelp, base.Dim(true))
	r.screen.Show()
}

// cardLines returns the text shown in the card area. The second line, when
// present, is the answer.
func (r *Renderer) cardLines(d *duel.Controller) []string {
	phase := d.Phase()
	if phase == duel.PhasePaused {
		phase = d.PausedFrom()
	}

	switch phase {
	case duel.PhaseNotStarted:
		return []string{"Press SPACE to start the duel!"}
	case duel.PhaseTimeUp:
		res, _ := d.Result()
		return []string{res.WinnerName + " wins!", "", "Press SPACE to return to the FLOOR!"}
	}

	c, ok := d.Card()
	if !ok {
		return []string{"No images for " + d.Challenge().DefenderCategory}
	}
	lines := []string{fmt.Sprintf("Image #%d (%d/%d)", c.Index, d.Cursor()+1, d.SequenceLen())}
	if d.AnswerTag() != duel.TagHidden {
		lines = append(lines, c.Answer)
	}
	return lines
}

// CellAt maps a terminal coordinate to the grid position drawn there by the
// last RenderFloor call.
func (r *Renderer) CellAt(x, y int) (board.Position, bool) {
	l := r.layout
	if !l.active || x < l.x || y < l.y {
		return board.Position{}, false
	}
	col := (x - l.x) / l.cellW
	row := (y - l.y) / l.cellH
	if col >= l.size || row >= l.size {
		return board.Position{}, false
	}
	return board.Position{Row: row, Col: col}, true
}
