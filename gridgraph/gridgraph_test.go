package gridgraph_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

//----------------------------------------------------------------------------//
// Loader Tests
//----------------------------------------------------------------------------//

// TestParseLines_FiltersGlyphs verifies that only '0'/'1' survive and that
// lines left empty after filtering are skipped.
func TestParseLines_FiltersGlyphs(t *testing.T) {
	g := gridgraph.ParseLines([]string{
		"1 0 1\r",
		"",
		"   \t",
		"x1y0z0",
		"# comment",
	})

	require.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, [][]gridgraph.Cell{
		{gridgraph.Wall, gridgraph.Open, gridgraph.Wall},
		{gridgraph.Wall, gridgraph.Open, gridgraph.Open},
	}, g.Rows())
}

// TestParseLines_RowShape checks that row count equals the number of
// non-empty filtered lines and each row length equals its glyph count.
func TestParseLines_RowShape(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		rowLens []int
	}{
		{"Empty", nil, nil},
		{"OnlyNoise", []string{"abc", "  "}, nil},
		{"Square", []string{"111", "101", "111"}, []int{3, 3, 3}},
		{"Jagged", []string{"1111", "10", "111"}, []int{4, 2, 3}},
		{"SingleCell", []string{"0"}, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gridgraph.ParseLines(tc.lines)
			require.Equal(t, len(tc.rowLens), g.Height())
			for y, want := range tc.rowLens {
				assert.Equal(t, want, g.RowLen(y), "row %d", y)
			}
		})
	}
}

// TestParseLines_JaggedIsAccepted makes sure the loader never rejects
// jagged input; detection belongs to the caller.
func TestParseLines_JaggedIsAccepted(t *testing.T) {
	g := gridgraph.ParseLines([]string{"111", "1"})
	assert.False(t, g.Rectangular())
	assert.ErrorIs(t, g.Validate(), gridgraph.ErrNonRectangular)
	assert.Equal(t, 3, g.Width(), "width follows row 0")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestLoad_ReadFailure verifies that a read error yields an empty grid and
// ErrSourceUnavailable.
func TestLoad_ReadFailure(t *testing.T) {
	g, err := gridgraph.Load(failingReader{})
	require.ErrorIs(t, err, gridgraph.ErrSourceUnavailable)
	require.NotNil(t, g)
	assert.True(t, g.Empty())
	assert.Equal(t, 0, g.Height())
}

func TestLoad_Reader(t *testing.T) {
	g, err := gridgraph.Load(strings.NewReader("1011\r\n1001\r\n\r\n1011\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Width())
	assert.True(t, g.Rectangular())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("111\n101\n111\n"), 0o600))

	g, err := gridgraph.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.Width())
}

func TestLoadFile_Missing(t *testing.T) {
	g, err := gridgraph.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, gridgraph.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "nope.txt")
	require.NotNil(t, g)
	assert.True(t, g.Empty())
}

//----------------------------------------------------------------------------//
// Grid Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := gridgraph.ParseLines([]string{"010", "101"})

	valid := []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c.Row, c.Col), "InBounds%v", c)
	}
	invalid := []gridgraph.Coordinate{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c.Row, c.Col), "InBounds%v", c)
	}
}

// TestAt_ShortRow ensures that a short row is never read past its end.
func TestAt_ShortRow(t *testing.T) {
	g := gridgraph.ParseLines([]string{"000", "0"})

	c, ok := g.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, gridgraph.Open, c)

	_, ok = g.At(1, 2)
	assert.False(t, ok)
	_, ok = g.At(5, 5)
	assert.False(t, ok)
}

// TestNewGrid_DeepCopy verifies that neither the constructor input nor the
// Rows result alias the grid's storage.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]gridgraph.Cell{{gridgraph.Open, gridgraph.Wall}}
	g := gridgraph.NewGrid(in)
	in[0][0] = gridgraph.Wall

	out := g.Rows()
	out[0][1] = gridgraph.Open

	c, _ := g.At(0, 0)
	assert.Equal(t, gridgraph.Open, c)
	c, _ = g.At(0, 1)
	assert.Equal(t, gridgraph.Wall, c)
}

func TestEmpty(t *testing.T) {
	assert.True(t, gridgraph.NewGrid(nil).Empty())
	assert.True(t, gridgraph.NewGrid([][]gridgraph.Cell{{}}).Empty())
	assert.False(t, gridgraph.ParseLines([]string{"1"}).Empty())
}

func TestPadWithWalls(t *testing.T) {
	g := gridgraph.ParseLines([]string{"10", "0000", "0"})
	p := g.PadWithWalls()

	require.True(t, p.Rectangular())
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, [][]gridgraph.Cell{
		{gridgraph.Wall, gridgraph.Open, gridgraph.Wall, gridgraph.Wall},
		{gridgraph.Open, gridgraph.Open, gridgraph.Open, gridgraph.Open},
		{gridgraph.Open, gridgraph.Wall, gridgraph.Wall, gridgraph.Wall},
	}, p.Rows())
	assert.False(t, g.Rectangular(), "receiver must stay untouched")
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g := gridgraph.ParseLines([]string{"0000", "0000", "0000"})
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			idx := g.Index(row, col)
			assert.Equal(t, gridgraph.Coordinate{Row: row, Col: col}, g.Coordinate(idx))
		}
	}
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "(2,7)", gridgraph.Coordinate{Row: 2, Col: 7}.String())
	assert.Equal(t, "1", gridgraph.Wall.String())
	assert.Equal(t, "0", gridgraph.Open.String())
}
