package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/render"
)

// ErrEmptyMaze is returned by Run when the loaded grid has no cells.
var ErrEmptyMaze = errors.New("there is no maze")

// App runs a single load-search-print cycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	cfg    *Config
	logger *slog.Logger
}

// NewApp builds an App writing results to outW and diagnostics to errW.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		errW:   errW,
		cfg:    cfg,
		logger: newLogger(cfg.Settings.LogLevel, cfg.Settings.LogFormat, errW),
	}
}

// Run loads the maze, searches it and prints the grid followed by either
// the path tuples or "No path found". A missing path is not an error.
// An unreadable source is reported on errW and then handled as an empty maze.
func (a *App) Run() error {
	path := a.cfg.MazePath
	logger := a.logger.With("maze", path)

	g, err := gridgraph.LoadFile(path)
	if err != nil {
		logger.Debug("Failed to load maze.", "error", err)
		fmt.Fprintf(a.errW, "Failed to open file %s\n", path)
	} else {
		logger.Info("Maze loaded.", "rows", g.Height(), "cols", g.Width())
	}

	if a.cfg.Settings.PadJagged && !g.Rectangular() {
		logger.Warn("Rows differ in length; padding short rows with walls.")
		g = g.PadWithWalls()
	}

	m, err := maze.New(g)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if m.IsEmpty() {
		return ErrEmptyMaze
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("Maze analysed.", "openings", len(m.Openings()), "regions", len(g.Regions()))
	}

	res := m.Search(a.searchOptions(logger)...)
	logger.Info("Search finished.",
		"found", res.Found(),
		"length", len(res.Path),
		"pushes", res.Pushes,
		"backtracks", res.Backtracks,
		"steps", res.Steps,
	)
	if res.Truncated {
		logger.Warn("Search stopped at the step limit.", "max_steps", a.cfg.Settings.MaxSteps)
	}

	if err := render.Render(a.outW, g, res.Path, a.cfg.Settings.Glyphs); err != nil {
		return fmt.Errorf("render maze: %w", err)
	}
	if !res.Found() {
		fmt.Fprintln(a.outW, "No path found")
		return nil
	}
	fmt.Fprintln(a.outW, render.FormatPath(res.Path))

	return nil
}

// searchOptions installs trace hooks only when debug logging is on.
func (a *App) searchOptions(logger *slog.Logger) []maze.Option {
	opts := []maze.Option{maze.WithMaxSteps(a.cfg.Settings.MaxSteps)}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return opts
	}

	return append(opts,
		maze.WithOnPush(func(c gridgraph.Coordinate) {
			logger.Debug("Advance.", "cell", c.String())
		}),
		maze.WithOnBacktrack(func(c gridgraph.Coordinate) {
			logger.Debug("Backtrack.", "cell", c.String())
		}),
	)
}
