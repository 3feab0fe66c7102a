package hemo

import "errors"

var (
	// ErrNonPositiveRadius indicates a radius ≤ 0.
	ErrNonPositiveRadius = errors.New("hemo: radius must be positive")

	// ErrNonPositiveDrop indicates a pressure drop ≤ 0; pressure must strictly
	// decrease along a vessel.
	ErrNonPositiveDrop = errors.New("hemo: pressure drop must be positive")

	// ErrNonPositiveFlow indicates a flow ≤ 0 where a strictly positive flow is required.
	ErrNonPositiveFlow = errors.New("hemo: flow must be positive")

	// ErrNonFinite indicates a NaN or ±Inf input.
	ErrNonFinite = errors.New("hemo: non-finite value")

	// ErrInvalidParams indicates physically inconsistent Params.
	ErrInvalidParams = errors.New("hemo: invalid parameters")
)

// Params is the fixed set of physical constants of a growth session.
//
// Units are the caller's choice but must be coherent; the defaults use
// millimetres, seconds and pascals.
type Params struct {
	// Viscosity is the dynamic blood viscosity μ.
	Viscosity float64 `yaml:"viscosity" toml:"viscosity"`

	// Gamma is the bifurcation-law exponent γ.
	Gamma float64 `yaml:"gamma" toml:"gamma"`

	// MinRadius is the radius assigned to every terminal vessel.
	MinRadius float64 `yaml:"min_radius" toml:"min_radius"`

	// TerminalPressure is the outlet pressure of every terminal vessel.
	TerminalPressure float64 `yaml:"terminal_pressure" toml:"terminal_pressure"`

	// EntryPressure is the root inlet pressure enforced by global rescaling.
	EntryPressure float64 `yaml:"entry_pressure" toml:"entry_pressure"`

	// TerminalFlow is the flow quantum delivered by each terminal.
	TerminalFlow float64 `yaml:"terminal_flow" toml:"terminal_flow"`
}

// DefaultParams returns the reference constants:
//   - Viscosity:        0.005 Pa·s
//   - Gamma:            6
//   - MinRadius:        0.1 mm
//   - TerminalPressure: 11102 Pa
//   - EntryPressure:    11202 Pa
//   - TerminalFlow:     200 mm³/s
func DefaultParams() Params {
	return Params{
		Viscosity:        0.005,
		Gamma:            6,
		MinRadius:        0.1,
		TerminalPressure: 11102,
		EntryPressure:    11202,
		TerminalFlow:     0.2e3,
	}
}
