package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input line; bufio.Scanner's default of 64KiB
// is too small for wide mazes.
const maxLineSize = 16 << 20

// ParseLines builds a Grid from text lines. Only OpenGlyph and WallGlyph
// are kept; every other byte, whitespace and '\r' included, is dropped.
// A line that is empty after filtering contributes no row.
// Jagged input is accepted as is.
// Complexity: O(total bytes).
func ParseLines(lines []string) *Grid {
	g := &Grid{}
	for _, line := range lines {
		g.appendLine(line)
	}

	return g
}

// Load reads r line by line into a Grid following the ParseLines rules.
// On a read failure it returns an empty Grid and an error wrapping
// ErrSourceUnavailable; rows read before the failure are discarded.
func Load(r io.Reader) (*Grid, error) {
	g := &Grid{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		g.appendLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return &Grid{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return g, nil
}

// LoadFile opens path and loads it with Load.
// If the file cannot be opened the returned Grid is empty (never nil) and
// the error wraps ErrSourceUnavailable.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Grid{}, fmt.Errorf("%w: open %q: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return g, fmt.Errorf("read %q: %w", path, err)
	}

	return g, nil
}

// appendLine filters line and appends the resulting row, if any.
func (g *Grid) appendLine(line string) {
	var row []Cell
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case OpenGlyph:
			row = append(row, Open)
		case WallGlyph:
			row = append(row, Wall)
		}
	}
	if len(row) == 0 {
		return
	}
	if len(g.cells) == 0 {
		g.width = len(row)
	}
	g.cells = append(g.cells, row)
}
