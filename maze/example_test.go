package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/maze"
)

// ExampleMaze_FindPath walks a small maze. Grid:
//
//	1 0 1 1 1
//	1 0 0 0 1
//	1 0 1 0 1
//	1 1 1 0 1
//
// The entrance is (0,1). Going down first reaches the dead end (2,1), so the
// walk backs up and leaves through the bottom at (3,3).
func ExampleMaze_FindPath() {
	g := gridgraph.ParseLines([]string{
		"10111",
		"10001",
		"10101",
		"11101",
	})
	m, err := maze.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.FindPath())

	// Output:
	// [(0,1) (1,1) (1,2) (1,3) (2,3) (3,3)]
}

// ExampleMaze_FindStart shows the not-found case.
func ExampleMaze_FindStart() {
	m, _ := maze.New(gridgraph.ParseLines([]string{"111", "101", "111"}))
	if _, ok := m.FindStart(); !ok {
		fmt.Println("no entrance")
	}

	// Output:
	// no entrance
}
