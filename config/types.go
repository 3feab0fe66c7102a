package config

import (
	"errors"

	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/growth"
	"github.com/katalvlaran/cco/hemo"
)

var (
	// ErrUnknownFormat is returned for a file extension or Format that is
	// neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrUnknownKey is returned when the document holds keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Format is a configuration encoding.
type Format int

const (
	// YAML is decoded with gopkg.in/yaml.v3.
	YAML Format = iota
	// TOML is decoded with github.com/BurntSushi/toml.
	TOML
)

// Config is the full session configuration.
type Config struct {
	Params hemo.Params `yaml:"params" toml:"params"`
	Growth Growth      `yaml:"growth" toml:"growth"`
	Log    Log         `yaml:"log" toml:"log"`
}

// Growth holds the driver tunables.
type Growth struct {
	MaxIterations   int     `yaml:"max_iterations" toml:"max_iterations"`
	Tolerance       float64 `yaml:"tolerance" toml:"tolerance"`
	Penalty         float64 `yaml:"penalty" toml:"penalty"`
	Method          string  `yaml:"method" toml:"method"`
	Verify          bool    `yaml:"verify" toml:"verify"`
	VerifyTolerance float64 `yaml:"verify_tolerance" toml:"verify_tolerance"`
}

// Log selects the zap logger.
type Log struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Params: hemo.DefaultParams(),
		Growth: Growth{
			MaxIterations:   bifurcation.DefaultMaxIterations,
			Tolerance:       bifurcation.DefaultTolerance,
			Penalty:         bifurcation.DefaultPenalty,
			Method:          bifurcation.NelderMead.String(),
			VerifyTolerance: growth.DefaultVerifyTolerance,
		},
		Log: Log{Level: "info"},
	}
}
