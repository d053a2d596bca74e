// Package maze defines the path type, search options and result collector
// used by the depth-first maze walk.
package maze

import (
	"errors"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

// ErrMalformedGrid is returned by New when the grid rows differ in length.
var ErrMalformedGrid = errors.New("maze: malformed grid")

// Path is an ordered sequence of coordinates from the entrance to an exit.
// Consecutive entries are orthogonal neighbors and no entry repeats.
type Path []gridgraph.Coordinate

// Contains reports whether c is on the path.
func (p Path) Contains(c gridgraph.Coordinate) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}

	return false
}

// Option configures optional behavior of Search and FindPath.
type Option func(*Options)

// Options holds observers and limits for a single search.
type Options struct {
	// OnPush, if non-nil, is called each time a cell is pushed onto the
	// stack, the entrance included.
	OnPush func(c gridgraph.Coordinate)

	// OnBacktrack, if non-nil, is called each time a dead-end cell is popped.
	OnBacktrack func(c gridgraph.Coordinate)

	// MaxSteps, if positive, caps the number of loop iterations.
	// Default is 0 (no limit).
	MaxSteps int
}

// DefaultOptions returns Options with no observers and no step limit.
func DefaultOptions() Options {
	return Options{
		OnPush:      nil,
		OnBacktrack: nil,
		MaxSteps:    0,
	}
}

// WithOnPush returns an Option that installs fn as the push observer.
func WithOnPush(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the backtrack observer.
func WithOnBacktrack(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithMaxSteps returns an Option that stops the walk after n iterations.
// A value ≤ 0 disables the limit.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// Result captures the outcome of one search.
type Result struct {
	// Start is the entrance; meaningful only when HasStart is true.
	Start    gridgraph.Coordinate
	HasStart bool

	// Path is the route from Start to an exit, empty when none was found.
	Path Path

	// Pushes counts cells pushed onto the stack, the entrance included.
	// It equals the number of distinct cells explored.
	Pushes int

	// Backtracks counts dead-end pops.
	Backtracks int

	// Steps counts loop iterations.
	Steps int

	// Truncated is set when MaxSteps ended the walk early.
	Truncated bool
}

// Found reports whether the search produced a path.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}
