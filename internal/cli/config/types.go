package config

import (
	"github.com/leapstack-labs/leaplogic/internal/render"
	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

// Default configuration values.
const (
	DefaultFormat       = "human"
	DefaultBool         = "F,T"
	DefaultMaxVariables = truthtable.DefaultMaxVariables
	DefaultWorkers      = 1
)

// Config holds the resolved CLI configuration.
type Config struct {
	// Format is the output mode (human|latex|markdown|csv|json).
	Format string `koanf:"format"`

	// Bool is the "<false>,<true>" display pair for boolean cells.
	Bool string `koanf:"bool"`

	// MaxVariables bounds the number of distinct variables per table;
	// the row count grows as 2^n.
	MaxVariables int `koanf:"max_variables"`

	// Workers sets the number of goroutines evaluating table rows.
	Workers int `koanf:"workers"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// RenderOptions converts the configuration into renderer options.
// The configuration must have passed Validate.
func (c *Config) RenderOptions() (render.Options, error) {
	mode, err := render.ParseMode(c.Format)
	if err != nil {
		return render.Options{}, err
	}
	falseStr, trueStr, err := render.ParseBoolPair(c.Bool)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{Mode: mode, FalseStr: falseStr, TrueStr: trueStr}, nil
}

// TableOptions converts the configuration into table-builder options.
func (c *Config) TableOptions() truthtable.Options {
	return truthtable.Options{
		MaxVariables: c.MaxVariables,
		Workers:      c.Workers,
	}
}
