// Package board provides the floor's tile-ownership table.
package board

import "fmt"

// DefaultSize is the side length of the standard floor.
const DefaultSize = 3

// Position is a grid coordinate, 0-based.
type Position struct {
	Row, Col int
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent returns true if q is exactly one step up, down, left or right of p.
func (p Position) Adjacent(q Position) bool {
	return abs(p.Row-q.Row)+abs(p.Col-q.Col) == 1
}

// orthogonal steps in up, left, right, down order so neighbour lists come out row-major.
var orthogonal = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
