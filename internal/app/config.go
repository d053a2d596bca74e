package app

import (
	"errors"

	"github.com/katalvlaran/mazewalk/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MazePath string
	Settings config.Config
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MazePath == "" {
		return nil, errors.New("MazePath is a required configuration field and cannot be empty")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
