// Package gridgraph provides the immutable Grid behind a maze together with
// bounds checks and row-major indexing helpers.
//
// Cells are either Open or Wall. Every predicate is answered against the
// bounding rectangle Height()×Width(), where Width is the length of row 0.
package gridgraph

// NewGrid constructs a Grid from rows of cells.
// It deep-copies the input to ensure immutability. Empty rows are kept as
// given; use ParseLines or Load to get the loader's row-skipping behavior.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]Cell) *Grid {
	cells := make([][]Cell, len(rows))
	for y := range rows {
		cells[y] = make([]Cell, len(rows[y]))
		copy(cells[y], rows[y])
	}
	g := &Grid{cells: cells}
	if len(cells) > 0 {
		g.width = len(cells[0])
	}

	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// Width returns the length of row 0, or 0 for a grid without rows.
func (g *Grid) Width() int {
	return g.width
}

// Empty reports whether the grid has no rows or row 0 has no columns.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0 || g.width == 0
}

// Rectangular reports whether every row has the same length as row 0.
// An empty grid is rectangular.
// Complexity: O(H).
func (g *Grid) Rectangular() bool {
	for _, row := range g.cells {
		if len(row) != g.width {
			return false
		}
	}

	return true
}

// Validate returns ErrNonRectangular if rows differ in length.
func (g *Grid) Validate() error {
	if !g.Rectangular() {
		return ErrNonRectangular
	}

	return nil
}

// InBounds reports whether (row,col) lies within the bounding rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.width
}

// At returns the cell at (row,col). ok is false when the position lies
// outside the bounding rectangle or past the end of a short row.
// Complexity: O(1).
func (g *Grid) At(row, col int) (c Cell, ok bool) {
	if !g.InBounds(row, col) || col >= len(g.cells[row]) {
		return Wall, false
	}

	return g.cells[row][col], true
}

// RowLen returns the length of row y as stored, or 0 if y is out of range.
func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.cells) {
		return 0
	}

	return len(g.cells[y])
}

// Rows returns a deep copy of the grid's cells.
// Complexity: O(W×H) time and memory.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}

	return out
}

// PadWithWalls returns a rectangular copy of g whose rows are all as long
// as the widest row, short rows being filled with Wall cells.
// The receiver is left untouched.
// Complexity: O(W×H) time and memory.
func (g *Grid) PadWithWalls() *Grid {
	w := 0
	for _, row := range g.cells {
		if len(row) > w {
			w = len(row)
		}
	}
	cells := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		cells[y] = make([]Cell, w)
		n := copy(cells[y], row)
		for x := n; x < w; x++ {
			cells[y][x] = Wall
		}
	}

	return &Grid{cells: cells, width: w}
}

// Index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to a Coordinate.
// The grid must not be empty.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.width, Col: idx % g.width}
}
