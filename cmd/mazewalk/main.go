package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/internal/app"
	"github.com/katalvlaran/mazewalk/internal/cli"
)

// NoMazeMessage is printed on the output when the loaded maze has no cells.
const NoMazeMessage = "There is no maze!"

// main is the entrypoint for the mazewalk application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := config.LoadDotenv(); err != nil {
		slog.Warn("Ignoring .env file.", "error", err)
	}

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, in, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	err = app.NewApp(outW, errW, appConfig).Run()
	if errors.Is(err, app.ErrEmptyMaze) {
		// reported as regular output; the exit code alone signals failure
		fmt.Fprintln(outW, NoMazeMessage)
		return &cli.ExitError{Code: 1}
	}

	return err
}
