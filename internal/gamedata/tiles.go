package gamedata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samdwyer/thefloor/internal/board"
)

// ErrMissingColumn is returned when a roster CSV lacks the name column.
var ErrMissingColumn = errors.New("roster CSV has no name column")

// TilesFile represents the structure of floor_tiles.json.
type TilesFile struct {
	Tiles []board.Record `json:"tiles"`
}

// DefaultTiles returns the embedded roster.
func DefaultTiles() ([]board.Record, error) {
	file, err := Load[TilesFile]("floor_tiles.json")
	if err != nil {
		return nil, err
	}
	return cleanRecords(file.Tiles), nil
}

// LoadTilesCSV reads a roster from a CSV file with a "name,category" header.
func LoadTilesCSV(path string) ([]board.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer f.Close()

	records, err := ParseTilesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return records, nil
}

// ParseTilesCSV reads roster rows from r. Values are trimmed and rows without
// a name are skipped. The category column is optional.
func ParseTilesCSV(r io.Reader) ([]board.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	nameCol, categoryCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "name":
			nameCol = i
		case "category":
			categoryCol = i
		}
	}
	if nameCol < 0 {
		return nil, ErrMissingColumn
	}

	var records []board.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, board.Record{
			Name:     field(row, nameCol),
			Category: field(row, categoryCol),
		})
	}
	return cleanRecords(records), nil
}

func field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func cleanRecords(in []board.Record) []board.Record {
	out := make([]board.Record, 0, len(in))
	for _, rec := range in {
		rec.Name = strings.TrimSpace(rec.Name)
		rec.Category = strings.TrimSpace(rec.Category)
		if rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}
