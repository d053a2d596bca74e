package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfig    = "MAZEWALK_CONFIG"
	EnvLogLevel  = "MAZEWALK_LOG_LEVEL"
	EnvLogFormat = "MAZEWALK_LOG_FORMAT"
	EnvPadJagged = "MAZEWALK_PAD_JAGGED"
	EnvMaxSteps  = "MAZEWALK_MAX_STEPS"
)

// LoadDotenv loads variables from the given .env files (".env" if none)
// without overriding ones already set. Missing files are not an error.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: load %s: %w", ErrInvalidConfig, f, err)
		}
	}

	return nil
}

// PathFromEnv returns the config file named by MAZEWALK_CONFIG, if any.
func PathFromEnv() string {
	return os.Getenv(EnvConfig)
}

// FromEnv applies MAZEWALK_* overrides on top of base.
func FromEnv(base Config) (*Config, error) {
	cfg := base
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvPadJagged); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a boolean: %w", ErrInvalidConfig, EnvPadJagged, err)
		}
		cfg.PadJagged = b
	}
	if v, ok := os.LookupEnv(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, EnvMaxSteps, err)
		}
		cfg.MaxSteps = n
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
