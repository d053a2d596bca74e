// Package maze finds a way through a walled grid with an iterative
// depth-first search that never revisits a cell.
//
// What:
//
//   - Maze wraps a rectangular *gridgraph.Grid and answers IsEmpty, IsOpen
//     and IsBoundary against its bounding rectangle.
//   - FindStart picks the entrance: the first open boundary cell scanning
//     columns left→right (top row, then bottom row), then rows 1..H-2 top→bottom
//     (left column, then right column).
//   - FindPath walks from the entrance with an explicit stack, trying
//     neighbors in the fixed order down, up, right, left, and stops at the
//     first boundary cell other than the entrance. The result is the stack
//     itself, start first.
//   - Search runs the same walk and also reports push/backtrack counters.
//
// Why:
//
//   - The scan and neighbor orders are tie-breaks: symmetric mazes always
//     resolve to the same entrance and the same path.
//   - The walk keeps its stack on the heap, so depth is bounded by the grid
//     size rather than by the goroutine stack.
//
// Complexity:
//
//   - FindStart:        O(W+H), Memory O(1).
//   - FindPath/Search:  O(W×H), Memory O(W×H) for explored flags and stack.
//
// Options:
//
//   - WithOnPush(fn)       observer called for every cell pushed, start included.
//   - WithOnBacktrack(fn)  observer called for every cell popped.
//   - WithMaxSteps(n)      stop after n loop iterations (n ≤ 0: no limit).
//
// Errors:
//
//   - ErrMalformedGrid: New was given rows of differing lengths.
//
// A path that is not found is not an error: FindPath returns an empty Path.
package maze
