package render

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/maze"
)

// ErrEmptyGlyph indicates a Glyphs field is empty.
var ErrEmptyGlyph = errors.New("render: glyphs must not be empty")

// Glyphs selects the text printed for each kind of cell.
type Glyphs struct {
	Wall string
	Open string
	Path string
}

// DefaultGlyphs mirrors the input format and marks the path with a blank.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall: string(gridgraph.WallGlyph),
		Open: string(gridgraph.OpenGlyph),
		Path: " ",
	}
}

// Validate returns ErrEmptyGlyph if any glyph is empty.
func (gl Glyphs) Validate() error {
	if gl.Wall == "" || gl.Open == "" || gl.Path == "" {
		return ErrEmptyGlyph
	}

	return nil
}

// Render writes g to w, marking the cells of path. Each row is printed with
// its own stored length. A nil or empty path renders the bare grid.
func Render(w io.Writer, g *gridgraph.Grid, path maze.Path, gl Glyphs) error {
	onPath := make(map[gridgraph.Coordinate]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	for y, row := range g.Rows() {
		for x, c := range row {
			switch {
			case c == gridgraph.Wall:
				bw.WriteString(gl.Wall)
			case hasCell(onPath, y, x):
				bw.WriteString(gl.Path)
			default:
				bw.WriteString(gl.Open)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String renders g with path into a string.
func String(g *gridgraph.Grid, path maze.Path, gl Glyphs) string {
	var sb strings.Builder
	_ = Render(&sb, g, path, gl)

	return sb.String()
}

// FormatPath renders path as space-separated "(row,col)" tuples.
func FormatPath(path maze.Path) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

func hasCell(set map[gridgraph.Coordinate]struct{}, row, col int) bool {
	_, ok := set[gridgraph.Coordinate{Row: row, Col: col}]
	return ok
}
