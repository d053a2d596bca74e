package maze

import "github.com/katalvlaran/mazewalk/gridgraph"

// walker holds per-search state. Nothing here outlives a single Search call.
type walker struct {
	m        *Maze
	opts     Options
	res      *Result
	explored []bool                 // row-major, Height×Width
	stack    []gridgraph.Coordinate // bottom is the entrance
}

// FindPath returns a path from the entrance to another boundary cell, or an
// empty Path if there is no entrance or no such cell is reachable.
// A maze whose only opening is the entrance yields an empty Path.
func (m *Maze) FindPath(opts ...Option) Path {
	return m.Search(opts...).Path
}

// Search runs the depth-first walk and returns the path together with
// walk counters.
//
// Steps:
//  1. Locate the entrance with FindStart; none → empty result.
//  2. Mark the entrance explored and push it.
//  3. While the stack is non-empty, peek the top:
//     a. a boundary cell other than the entrance ends the walk; the stack,
//     bottom to top, is the path;
//     b. otherwise push the first open, unexplored neighbor in the order
//     down, up, right, left;
//     c. with no such neighbor, pop.
//  4. An exhausted stack means no path.
func (m *Maze) Search(opts ...Option) *Result {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	start, ok := m.FindStart()
	if !ok {
		return res
	}
	res.Start, res.HasStart = start, true

	w := &walker{
		m:        m,
		opts:     o,
		res:      res,
		explored: make([]bool, m.rows*m.cols),
		stack:    make([]gridgraph.Coordinate, 0, 16),
	}
	w.push(start)
	w.run(start)

	return res
}

// run drives the main loop until the stack empties, an exit is reached, or
// the step limit is hit.
func (w *walker) run(start gridgraph.Coordinate) {
	for len(w.stack) > 0 {
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			w.res.Truncated = true
			return
		}
		w.res.Steps++

		top := w.stack[len(w.stack)-1]
		if top != start && w.m.IsBoundary(top.Row, top.Col) {
			w.res.Path = make(Path, len(w.stack))
			copy(w.res.Path, w.stack)
			return
		}
		if next, ok := w.nextNeighbor(top); ok {
			w.push(next)
			continue
		}
		w.pop()
	}
}

// nextNeighbor returns the first open, unexplored neighbor of c.
func (w *walker) nextNeighbor(c gridgraph.Coordinate) (gridgraph.Coordinate, bool) {
	for _, d := range moves {
		n := c.Add(d)
		if w.m.IsOpen(n.Row, n.Col) && !w.explored[w.m.grid.Index(n.Row, n.Col)] {
			return n, true
		}
	}

	return gridgraph.Coordinate{}, false
}

func (w *walker) push(c gridgraph.Coordinate) {
	w.explored[w.m.grid.Index(c.Row, c.Col)] = true
	w.stack = append(w.stack, c)
	w.res.Pushes++
	if w.opts.OnPush != nil {
		w.opts.OnPush(c)
	}
}

func (w *walker) pop() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.res.Backtracks++
	if w.opts.OnBacktrack != nil {
		w.opts.OnBacktrack(top)
	}
}
