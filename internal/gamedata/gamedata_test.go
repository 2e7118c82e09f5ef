package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/thefloor/internal/board"
	"github.com/samdwyer/thefloor/internal/protocol"
)

func TestDefaultTiles(t *testing.T) {
	tiles, err := DefaultTiles()
	if err != nil {
		t.Fatalf("Failed to load default tiles: %v", err)
	}

	if len(tiles) < board.DefaultSize*board.DefaultSize {
		t.Fatalf("Expected at least 9 tiles, got %d", len(tiles))
	}
	for i, tile := range tiles {
		if tile.Name == "" {
			t.Errorf("Tile %d has empty name", i)
		}
		if tile.Category == "" {
			t.Errorf("Tile %d (%s) has empty category", i, tile.Name)
		}
	}

	if _, err := board.New(board.DefaultSize, tiles); err != nil {
		t.Errorf("Default roster does not build a board: %v", err)
	}
}

func TestParseTilesCSV(t *testing.T) {
	input := "name, category\n" +
		"  Ada , Nature\n" +
		",Movies\n" +
		"Bruno,Movies\n" +
		"Chloe\n"

	tiles, err := ParseTilesCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTilesCSV() error = %v", err)
	}

	want := []board.Record{
		{Name: "Ada", Category: "Nature"},
		{Name: "Bruno", Category: "Movies"},
		{Name: "Chloe", Category: ""},
	}
	if len(tiles) != len(want) {
		t.Fatalf("ParseTilesCSV() returned %d rows, want %d: %+v", len(tiles), len(want), tiles)
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, tiles[i], want[i])
		}
	}
}

func TestParseTilesCSVColumnOrder(t *testing.T) {
	tiles, err := ParseTilesCSV(strings.NewReader("\ufeffcategory,name\nFlags,Chloe\n"))
	if err != nil {
		t.Fatalf("ParseTilesCSV() error = %v", err)
	}
	if len(tiles) != 1 || tiles[0] != (board.Record{Name: "Chloe", Category: "Flags"}) {
		t.Errorf("ParseTilesCSV() = %+v", tiles)
	}
}

func TestParseTilesCSVMissingName(t *testing.T) {
	_, err := ParseTilesCSV(strings.NewReader("player,category\nAda,Nature\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ParseTilesCSV() error = %v, want ErrMissingColumn", err)
	}
}

func TestLoadTilesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor_tiles.csv")
	if err := os.WriteFile(path, []byte("name,category\nAda,Nature\n"), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	tiles, err := LoadTilesCSV(path)
	if err != nil {
		t.Fatalf("LoadTilesCSV() error = %v", err)
	}
	if len(tiles) != 1 || tiles[0].Name != "Ada" {
		t.Errorf("LoadTilesCSV() = %+v", tiles)
	}

	if _, err := LoadTilesCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("LoadTilesCSV() on a missing file should fail")
	}
}

func TestParseCardName(t *testing.T) {
	tests := []struct {
		input string
		want  protocol.Card
		ok    bool
	}{
		{"01-Oak.png", protocol.Card{Index: 1, Answer: "Oak"}, true},
		{"12-eiffel_tower.JPG", protocol.Card{Index: 12, Answer: "Eiffel Tower"}, true},
		{"3-McDonald's.gif", protocol.Card{Index: 3, Answer: "McDonald's"}, true},
		{"07-Spider-Man.jpeg", protocol.Card{Index: 7, Answer: "Spider-Man"}, true},
		{"notes.txt", protocol.Card{}, false},
		{"cover.png", protocol.Card{}, false},
		{"ab-Oak.png", protocol.Card{}, false},
		{"04-.png", protocol.Card{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseCardName(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCardName(%q) = %+v, %v; want %+v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSequenceRegistry(t *testing.T) {
	fsys := fstest.MapFS{
		"Nature/10-Birch.png":   {},
		"Nature/02-Maple.png":   {},
		"Nature/01-Oak.png":     {},
		"Nature/readme.md":      {},
		"Nature/extra/05-x.png": {},
		"Movies/01-Jaws.jpg":    {},
		"Empty/.keep":           {},
	}
	registry := NewSequenceRegistry(fsys)

	seq, err := registry.Resolve("Nature")
	if err != nil {
		t.Fatalf("Resolve(Nature) error = %v", err)
	}
	want := []string{"Oak", "Maple", "Birch"}
	if len(seq) != len(want) {
		t.Fatalf("Resolve(Nature) = %+v, want %d cards", seq, len(want))
	}
	for i, answer := range want {
		if seq[i].Answer != answer {
			t.Errorf("card %d = %q, want %q", i, seq[i].Answer, answer)
		}
	}

	empty, err := registry.Resolve("Empty")
	if err != nil || len(empty) != 0 {
		t.Errorf("Resolve(Empty) = %+v, %v; want empty, nil", empty, err)
	}

	if registry.Count() != 2 {
		t.Errorf("Count() = %d, want 2", registry.Count())
	}

	categories, err := registry.Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if strings.Join(categories, ",") != "Empty,Movies,Nature" {
		t.Errorf("Categories() = %v", categories)
	}
}

func TestSequenceRegistryUnknownCategory(t *testing.T) {
	registry := NewSequenceRegistry(fstest.MapFS{})

	for _, category := range []string{"Missing", "", "../etc"} {
		seq, err := registry.Resolve(category)
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownCategory", category, err)
		}
		if seq == nil || len(seq) != 0 {
			t.Errorf("Resolve(%q) = %#v, want empty non-nil sequence", category, seq)
		}
	}

	seq, err := NewSequenceRegistry(nil).Resolve("Nature")
	if !errors.Is(err, ErrUnknownCategory) || len(seq) != 0 {
		t.Errorf("nil registry Resolve() = %v, %v", seq, err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if theme.Reveal == theme.Penalty {
		t.Error("reveal and penalty colours should differ")
	}
	r, g, b := theme.Penalty.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("Penalty RGB = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestThemeDefResolveError(t *testing.T) {
	def := ThemeDef{Background: "#000000", Tile: "nope"}
	if _, err := def.Resolve(); err == nil || !strings.Contains(err.Error(), "theme tile") {
		t.Errorf("Resolve() error = %v, want theme tile error", err)
	}
}

func TestCreateImageFolders(t *testing.T) {
	root := filepath.Join(t.TempDir(), "images")
	records := []board.Record{
		{Name: "Ada", Category: "Movies"},
		{Name: "Bruno", Category: "Nature"},
		{Name: "Cleo", Category: "Movies"},
		{Name: "Dev", Category: ""},
	}

	if err := CreateImageFolders(root, records); err != nil {
		t.Fatalf("CreateImageFolders() error = %v", err)
	}
	// A second run over existing folders is fine.
	if err := CreateImageFolders(root, records); err != nil {
		t.Fatalf("CreateImageFolders() second run error = %v", err)
	}

	got, err := NewSequenceRegistry(os.DirFS(root)).Categories()
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if strings.Join(got, ",") != "Movies,Nature" {
		t.Errorf("Categories() = %v, want [Movies Nature]", got)
	}
}

func TestCreateImageFoldersInvalidCategory(t *testing.T) {
	root := t.TempDir()
	for _, category := range []string{"../escape", "/abs", "."} {
		err := CreateImageFolders(root, []board.Record{{Name: "Ada", Category: category}})
		if err == nil {
			t.Errorf("CreateImageFolders(%q) error = nil, want error", category)
		}
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("root has %d entries, want 0", len(entries))
	}
}

func TestCreateImageFoldersFileInTheWay(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Movies"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := CreateImageFolders(root, []board.Record{{Name: "Ada", Category: "Movies"}})
	if err == nil || !strings.Contains(err.Error(), "Movies") {
		t.Errorf("CreateImageFolders() error = %v, want error naming Movies", err)
	}
}
