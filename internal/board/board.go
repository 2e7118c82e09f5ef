package board

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotEnoughTiles is returned when fewer records than grid cells are supplied.
	ErrNotEnoughTiles = errors.New("not enough tile records to fill the grid")
	// ErrEmptyOwner is returned when a consumed record has no name.
	ErrEmptyOwner = errors.New("tile record has an empty name")
	// ErrInvalidSize is returned for grids smaller than 1x1.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Record is one externally supplied (name, category) pair.
type Record struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// TerritoryID identifies a group of positions held by one owner.
// Every position starts in its own territory; merges fold positions into the
// winner's territory.
type TerritoryID string

// Territory is the ownership data shared by every position that maps to it.
type Territory struct {
	ID       TerritoryID
	Owner    string
	Category string
}

// Tile is a read-only view of one grid cell.
type Tile struct {
	Position
	Owner     string
	Category  string
	Territory TerritoryID
}

// Board maps each grid position to a territory.
type Board struct {
	size        int
	cells       []TerritoryID // row-major
	territories map[TerritoryID]Territory
}

// New builds a size x size board from the first size*size records.
// Extra records are ignored.
func New(size int, records []Record) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	needed := size * size
	if len(records) < needed {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrNotEnoughTiles, needed, len(records))
	}

	b := &Board{
		size:        size,
		cells:       make([]TerritoryID, needed),
		territories: make(map[TerritoryID]Territory, needed),
	}
	for i, rec := range records[:needed] {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d", ErrEmptyOwner, i)
		}
		id := TerritoryID(uuid.NewString())
		b.cells[i] = id
		b.territories[id] = Territory{ID: id, Owner: rec.Name, Category: rec.Category}
	}
	return b, nil
}

// Size returns the side length of the grid.
func (b *Board) Size() int {
	return b.size
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// InBounds returns true if the position lies on the grid.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Index returns the row-major index of p, or -1 if p is off the grid.
func (b *Board) Index(p Position) int {
	if !b.InBounds(p) {
		return -1
	}
	return p.Row*b.size + p.Col
}

// PositionAt returns the position for a row-major index.
func (b *Board) PositionAt(index int) Position {
	return Position{Row: index / b.size, Col: index % b.size}
}

// Tile returns the tile at p. The second result is false when p is off the grid.
func (b *Board) Tile(p Position) (Tile, bool) {
	i := b.Index(p)
	if i < 0 {
		return Tile{}, false
	}
	return b.TileAt(i), true
}

// TileAt returns the tile at a row-major index.
func (b *Board) TileAt(index int) Tile {
	t := b.territories[b.cells[index]]
	return Tile{
		Position:  b.PositionAt(index),
		Owner:     t.Owner,
		Category:  t.Category,
		Territory: t.ID,
	}
}

// Tiles returns every tile in row-major order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, len(b.cells))
	for i := range b.cells {
		tiles[i] = b.TileAt(i)
	}
	return tiles
}

// Neighbors returns the in-bounds orthogonal neighbours of p.
func (b *Board) Neighbors(p Position) []Position {
	result := make([]Position, 0, len(orthogonal))
	for _, d := range orthogonal {
		q := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if b.InBounds(q) {
			result = append(result, q)
		}
	}
	return result
}

// ChallengeTargets returns the neighbours of p held by a different owner.
func (b *Board) ChallengeTargets(p Position) []Position {
	origin, ok := b.Tile(p)
	if !ok {
		return nil
	}
	var result []Position
	for _, q := range b.Neighbors(p) {
		if t, _ := b.Tile(q); t.Owner != origin.Owner {
			result = append(result, q)
		}
	}
	return result
}

// OwnedBy returns the positions held by owner in row-major order.
func (b *Board) OwnedBy(owner string) []Position {
	var result []Position
	for i, id := range b.cells {
		if b.territories[id].Owner == owner {
			result = append(result, b.PositionAt(i))
		}
	}
	return result
}

// Merge hands every position held by loser to winner's territory and returns
// the positions that changed hands. If winner holds nothing, loser's
// territories are renamed to winner and keep their category.
func (b *Board) Merge(winner, loser string) []Position {
	if winner == "" || winner == loser {
		return nil
	}

	var target TerritoryID
	if held := b.OwnedBy(winner); len(held) > 0 {
		target = b.cells[b.Index(held[0])]
	}

	var changed []Position
	orphaned := make(map[TerritoryID]bool)
	for i, id := range b.cells {
		t := b.territories[id]
		if t.Owner != loser {
			continue
		}
		changed = append(changed, b.PositionAt(i))
		if target == "" {
			t.Owner = winner
			b.territories[id] = t
			continue
		}
		b.cells[i] = target
		orphaned[id] = true
	}
	for id := range orphaned {
		delete(b.territories, id)
	}
	return changed
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		size:        b.size,
		cells:       make([]TerritoryID, len(b.cells)),
		territories: make(map[TerritoryID]Territory, len(b.territories)),
	}
	copy(c.cells, b.cells)
	for id, t := range b.territories {
		c.territories[id] = t
	}
	return c
}
