// Package mazewalk finds a way through text mazes.
//
// A maze is a text file with one row per line: '0' is an open cell, '1' is
// a wall, everything else is ignored. mazewalk picks an entrance on the
// outer boundary and walks a depth-first search, never revisiting a cell,
// until it reaches a different boundary cell.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ — Grid, Cell and Coordinate types plus the text loader
//	maze/      — boundary predicates, entrance detection and the DFS walk
//	render/    — grid-with-path and coordinate-list text output
//	config/    — HCL config file, .env and environment settings
//
// Quick ASCII example, input on the left, default output on the right
// (path cells are printed blank; render.Glyphs changes the markers):
//
//	1011        1 11
//	1000   →    1
//	1111        1111
//	            (0,1) (1,1) (1,2) (1,3)
//
// enters at (0,1) and leaves at (1,3).
//
//	go install github.com/katalvlaran/mazewalk/cmd/mazewalk@latest
package mazewalk
