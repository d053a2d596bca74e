package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

// TestRegions_Separate verifies that walls split open cells into regions
// listed in row-major order of their first cell.
func TestRegions_Separate(t *testing.T) {
	g := gridgraph.ParseLines([]string{
		"0110",
		"0110",
		"1100",
	})

	regions := g.Regions()
	assert.Len(t, regions, 2)
	assert.ElementsMatch(t, []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, regions[0])
	assert.ElementsMatch(t, []gridgraph.Coordinate{
		{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 2, Col: 2},
	}, regions[1])
}

// TestRegions_NoDiagonal ensures diagonal neighbors do not join regions.
func TestRegions_NoDiagonal(t *testing.T) {
	g := gridgraph.ParseLines([]string{"01", "10"})
	assert.Len(t, g.Regions(), 2)
}

func TestRegions_AllWalls(t *testing.T) {
	g := gridgraph.ParseLines([]string{"11", "11"})
	assert.Empty(t, g.Regions())
}

func TestRegions_Jagged(t *testing.T) {
	g := gridgraph.ParseLines([]string{"000", "0"})
	assert.Nil(t, g.Regions())
}
