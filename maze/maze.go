package maze

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

// moves lists neighbor offsets in search order: down, up, right, left.
// Changing the order changes which path is found.
var moves = [4]gridgraph.Coordinate{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Maze owns an immutable grid and answers the predicates the search needs.
// All methods are read-only; a Maze may be searched any number of times.
type Maze struct {
	grid *gridgraph.Grid
	rows int
	cols int
}

// New wraps g. A nil grid is treated as empty. Rows of differing lengths are
// rejected with an error wrapping both ErrMalformedGrid and
// gridgraph.ErrNonRectangular; use (*gridgraph.Grid).PadWithWalls to accept
// such input instead.
func New(g *gridgraph.Grid) (*Maze, error) {
	if g == nil {
		g = gridgraph.NewGrid(nil)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, err)
	}

	return &Maze{grid: g, rows: g.Height(), cols: g.Width()}, nil
}

// Grid returns the underlying grid.
func (m *Maze) Grid() *gridgraph.Grid {
	return m.grid
}

// IsEmpty reports whether the maze has no rows or row 0 has no columns.
func (m *Maze) IsEmpty() bool {
	return m.rows == 0 || m.cols == 0
}

// IsOpen reports whether (row,col) is inside the maze and not a wall.
// A zero Maze has no cells, so every position is closed.
func (m *Maze) IsOpen(row, col int) bool {
	if m.grid == nil {
		return false
	}
	c, ok := m.grid.At(row, col)
	return ok && c == gridgraph.Open
}

// IsBoundary reports whether (row,col) is on the first or last row or
// column. Openness is not checked.
func (m *Maze) IsBoundary(row, col int) bool {
	if m.IsEmpty() {
		return false
	}

	return row == 0 || row == m.rows-1 || col == 0 || col == m.cols-1
}

// FindStart returns the entrance: the first open boundary cell in scan
// order. ok is false for an empty maze or one without boundary openings.
func (m *Maze) FindStart() (start gridgraph.Coordinate, ok bool) {
	found := false
	m.scanBoundary(func(c gridgraph.Coordinate) bool {
		start, found = c, true
		return false
	})

	return start, found
}

// Openings returns every open boundary cell in FindStart's scan order.
// Each cell appears once even when the maze is a single row or column.
func (m *Maze) Openings() []gridgraph.Coordinate {
	var out []gridgraph.Coordinate
	m.scanBoundary(func(c gridgraph.Coordinate) bool {
		out = append(out, c)
		return true
	})

	return out
}

// scanBoundary feeds open boundary cells to yield in scan order until it
// returns false: columns left→right testing the top then the bottom row,
// then rows 1..rows-2 testing the left then the right column.
func (m *Maze) scanBoundary(yield func(gridgraph.Coordinate) bool) {
	if m.IsEmpty() {
		return
	}
	last := m.rows - 1
	for col := 0; col < m.cols; col++ {
		if m.IsOpen(0, col) && !yield(gridgraph.Coordinate{Row: 0, Col: col}) {
			return
		}
		if last > 0 && m.IsOpen(last, col) && !yield(gridgraph.Coordinate{Row: last, Col: col}) {
			return
		}
	}
	right := m.cols - 1
	for row := 1; row < last; row++ {
		if m.IsOpen(row, 0) && !yield(gridgraph.Coordinate{Row: row, Col: 0}) {
			return
		}
		if right > 0 && m.IsOpen(row, right) && !yield(gridgraph.Coordinate{Row: row, Col: right}) {
			return
		}
	}
}
