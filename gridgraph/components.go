package gridgraph

// neighborOffsets lists the four orthogonal moves as (row,col) deltas.
var neighborOffsets = [4]Coordinate{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// Regions finds all 4-connected regions of open cells. Regions are listed
// in the row-major order of their first cell; cells within a region are in
// BFS discovery order.
//
// A grid that is not rectangular yields nil.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions() [][]Coordinate {
	if g.Empty() || !g.Rectangular() {
		return nil
	}
	seen := make([]bool, g.Height()*g.width)
	var regions [][]Coordinate

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != Open {
				continue
			}
			i0 := g.Index(y, x)
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []Coordinate

			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				region = append(region, u)
				for _, d := range neighborOffsets {
					v := u.Add(d)
					if !g.InBounds(v.Row, v.Col) || g.cells[v.Row][v.Col] != Open {
						continue
					}
					vi := g.Index(v.Row, v.Col)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}
