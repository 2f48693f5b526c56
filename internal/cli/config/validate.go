package config

import (
	"fmt"

	"github.com/leapstack-labs/leaplogic/internal/render"
)

// Validate checks the configuration and reports the first problem
// found. Invalid configuration aborts before any output is produced.
func Validate(cfg *Config) error {
	if _, err := render.ParseMode(cfg.Format); err != nil {
		return err
	}
	if _, _, err := render.ParseBoolPair(cfg.Bool); err != nil {
		return err
	}
	if cfg.MaxVariables < 1 {
		return fmt.Errorf("max_variables must be at least 1, got %d", cfg.MaxVariables)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}
