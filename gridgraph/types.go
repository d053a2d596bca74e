// Package gridgraph defines the cell, coordinate and grid types together
// with the sentinel errors of the grid loader.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrSourceUnavailable indicates the maze source could not be opened or read.
	ErrSourceUnavailable = errors.New("gridgraph: maze source unavailable")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Input glyphs. Any other byte in the source is ignored.
const (
	OpenGlyph = '0'
	WallGlyph = '1'
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Open marks a walkable cell.
	Open Cell = iota
	// Wall marks a blocked cell.
	Wall
)

// String returns the input glyph for c.
func (c Cell) String() string {
	if c == Wall {
		return string(WallGlyph)
	}

	return string(OpenGlyph)
}

// Coordinate identifies a cell by row and column.
type Coordinate struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Grid is an ordered sequence of cell rows. It is immutable once built:
// cells are unexported and every accessor hands out copies.
// width is the length of row 0 and, together with len(cells), defines the
// bounding rectangle used by all coordinate checks.
type Grid struct {
	cells [][]Cell
	width int
}
