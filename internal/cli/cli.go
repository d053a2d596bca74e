package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/mazewalk/config"
	"github.com/katalvlaran/mazewalk/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Prompt is printed when no maze file is given on the command line.
const Prompt = "Enter a maze file name: "

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings are layered as defaults, config file, environment, then flags.
func Parse(args []string, in io.Reader, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mazewalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mazewalk - find a way through a text maze.

Usage:
  mazewalk [options] [MAZE_FILE]

Arguments:
  MAZE_FILE
    Text file with one maze row per line: '0' is open, '1' is a wall.
    Prompted for when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file (default $"+config.EnvConfig+").")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	padFlag := flagSet.Bool("pad", false, "Pad short rows with walls instead of rejecting jagged mazes.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Stop the search after this many steps. 0 is unlimited.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	settings, err := loadSettings(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Only flags given explicitly override file and environment values.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-format":
			settings.LogFormat = strings.ToLower(*logFormatFlag)
		case "log-level":
			settings.LogLevel = strings.ToLower(*logLevelFlag)
		case "pad":
			settings.PadJagged = *padFlag
		case "max-steps":
			settings.MaxSteps = *maxStepsFlag
		}
	})
	slog.Debug("CLI parameter validation complete.")

	path := flagSet.Arg(0)
	if path == "" {
		path, err = prompt(in, output)
		if err != nil {
			return nil, false, err
		}
	}
	slog.Debug("Maze path determined.", "path", path)

	cfg, err := app.NewConfig(app.Config{MazePath: path, Settings: *settings})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// loadSettings layers the config file (flag, else $MAZEWALK_CONFIG) and the
// environment on top of the defaults.
func loadSettings(path string) (*config.Config, error) {
	base := config.Default()
	if path == "" {
		path = config.PathFromEnv()
	}
	if path != "" {
		fromFile, err := config.LoadFile(path, base)
		if err != nil {
			return nil, err
		}
		base = *fromFile
		slog.Debug("Config file loaded.", "path", path)
	}

	return config.FromEnv(base)
}

// prompt asks for a maze file name and reads one whitespace-delimited token.
func prompt(in io.Reader, output io.Writer) (string, error) {
	fmt.Fprint(output, Prompt)
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", &ExitError{Code: 2, Message: fmt.Sprintf("reading maze file name: %v", err)}
		}
		return "", &ExitError{Code: 2, Message: "no maze file name given"}
	}

	return sc.Text(), nil
}
