package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// ThemeDef is the raw structure of theme.json.
type ThemeDef struct {
	Background  string `json:"background"`
	Tile        string `json:"tile"`
	Highlight   string `json:"highlight"`
	GridLine    string `json:"gridLine"`
	Text        string `json:"text"`
	Emphasis    string `json:"emphasis"`
	ActiveTimer string `json:"activeTimer"`
	Reveal      string `json:"reveal"`
	Penalty     string `json:"penalty"`
	Card        string `json:"card"`
	CardText    string `json:"cardText"`
}

// Theme holds the resolved colours used by the renderer.
type Theme struct {
	Background  tcell.Color
	Tile        tcell.Color
	Highlight   tcell.Color
	GridLine    tcell.Color
	Text        tcell.Color
	Emphasis    tcell.Color
	ActiveTimer tcell.Color
	Reveal      tcell.Color
	Penalty     tcell.Color
	Card        tcell.Color
	CardText    tcell.Color
}

// Resolve parses every colour in the definition.
func (d ThemeDef) Resolve() (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", d.Background, &t.Background},
		{"tile", d.Tile, &t.Tile},
		{"highlight", d.Highlight, &t.Highlight},
		{"gridLine", d.GridLine, &t.GridLine},
		{"text", d.Text, &t.Text},
		{"emphasis", d.Emphasis, &t.Emphasis},
		{"activeTimer", d.ActiveTimer, &t.ActiveTimer},
		{"reveal", d.Reveal, &t.Reveal},
		{"penalty", d.Penalty, &t.Penalty},
		{"card", d.Card, &t.Card},
		{"cardText", d.CardText, &t.CardText},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return t, nil
}

// LoadTheme loads and resolves the embedded theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return def.Resolve()
}

// MustLoadTheme loads the embedded theme, panicking on error.
func MustLoadTheme() Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
