// Package app wires the mazewalk pipeline: load the grid, build the maze,
// search it, and print the result. It owns the run-scoped slog logger.
package app
