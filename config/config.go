package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazewalk/render"
)

// ErrInvalidConfig wraps every configuration problem.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything a mazewalk run needs besides the maze path.
type Config struct {
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	PadJagged bool   // pad short rows with walls instead of rejecting them
	MaxSteps  int    // search step limit, 0 for none
	Glyphs    render.Glyphs
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		PadJagged: false,
		MaxSteps:  0,
		Glyphs:    render.DefaultGlyphs(),
	}
}

// Validate checks enumerations, limits and glyphs.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps must not be negative, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if err := c.Glyphs.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
