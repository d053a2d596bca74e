// Package gridgraph loads and holds the 2D cell grid a maze is built from.
//
// What:
//
//   - Grid wraps an immutable [][]Cell where every cell is Open or Wall.
//   - ParseLines, Load and LoadFile turn text into a Grid: only the glyphs
//     '0' (open) and '1' (wall) are kept, every other byte on a line is
//     dropped, and lines left empty after filtering produce no row.
//   - Regions groups open cells into 4-connected regions for reachability
//     diagnostics.
//   - PadWithWalls squares off jagged input by filling short rows with walls.
//
// Bounding rectangle:
//
//	Height() rows × Width() columns, where Width is the length of row 0.
//	Rectangular reports whether every row matches that width; callers that
//	index by the rectangle must check it first (see maze.New).
//
// Complexity:
//
//   - ParseLines / Load: O(total input bytes), Memory: O(W×H).
//   - Regions:           O(W×H×4),            Memory: O(W×H).
//   - PadWithWalls:      O(W×H),              Memory: O(W×H).
//
// Errors:
//
//   - ErrSourceUnavailable: the input could not be opened or read; the
//     accompanying Grid is empty, never nil.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
