package hemo

import (
	"fmt"
	"math"
)

// Validate checks that every constant is finite and positive and that the
// entry pressure lies strictly above the terminal pressure.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"viscosity", p.Viscosity},
		{"gamma", p.Gamma},
		{"min_radius", p.MinRadius},
		{"terminal_pressure", p.TerminalPressure},
		{"entry_pressure", p.EntryPressure},
		{"terminal_flow", p.TerminalFlow},
	}
	for _, f := range fields {
		if !finite(f.v) || f.v <= 0 {
			return fmt.Errorf("%w: %s = %g", ErrInvalidParams, f.name, f.v)
		}
	}
	if p.EntryPressure <= p.TerminalPressure {
		return fmt.Errorf("%w: entry_pressure %g must exceed terminal_pressure %g",
			ErrInvalidParams, p.EntryPressure, p.TerminalPressure)
	}

	return nil
}

// Budget returns the pressure available across the whole tree,
// EntryPressure - TerminalPressure.
func (p Params) Budget() float64 {
	return p.EntryPressure - p.TerminalPressure
}

// PressureDrop returns the Poiseuille pressure loss 8·Q·μ·L / (π·r⁴) along a
// cylindrical segment.
//
// Errors: ErrNonPositiveRadius if radius ≤ 0, ErrNonFinite on NaN/Inf input.
func (p Params) PressureDrop(flow, length, radius float64) (float64, error) {
	if !finite(flow) || !finite(length) || !finite(radius) {
		return 0, ErrNonFinite
	}
	if radius <= 0 {
		return 0, fmt.Errorf("%w: r = %g", ErrNonPositiveRadius, radius)
	}
	r2 := radius * radius

	return 8 * flow * p.Viscosity * length / (math.Pi * r2 * r2), nil
}

// RadiusFromPressureDrop inverts PressureDrop: (8·Q·μ·L / (π·Δp))^(1/4).
//
// A drop ≤ 0 means pressure failed to decrease upstream of this call and is
// reported as ErrNonPositiveDrop rather than returning NaN.
func (p Params) RadiusFromPressureDrop(flow, length, drop float64) (float64, error) {
	if !finite(flow) || !finite(length) || !finite(drop) {
		return 0, ErrNonFinite
	}
	if drop <= 0 {
		return 0, fmt.Errorf("%w: Δp = %g", ErrNonPositiveDrop, drop)
	}

	return math.Pow(8*flow*p.Viscosity*length/(math.Pi*drop), 0.25), nil
}

// BifurcationRadius returns the parent radius r0 solving
//
//	(f0/f1)·r1^γ + (f0/f2)·r2^γ = r0^γ
//
// for a parent carrying f0 that splits into children (f1, r1) and (f2, r2).
//
// Errors: ErrNonPositiveFlow if f1 or f2 ≤ 0, ErrNonPositiveRadius if a child
// radius is ≤ 0.
func (p Params) BifurcationRadius(f0, f1, r1, f2, r2 float64) (float64, error) {
	if !finite(f0) || !finite(f1) || !finite(r1) || !finite(f2) || !finite(r2) {
		return 0, ErrNonFinite
	}
	if f1 <= 0 || f2 <= 0 {
		return 0, fmt.Errorf("%w: f1 = %g, f2 = %g", ErrNonPositiveFlow, f1, f2)
	}
	if r1 <= 0 || r2 <= 0 {
		return 0, fmt.Errorf("%w: r1 = %g, r2 = %g", ErrNonPositiveRadius, r1, r2)
	}
	g := p.Gamma
	sum := f0/f1*math.Pow(r1, g) + f0/f2*math.Pow(r2, g)

	return math.Pow(sum, 1/g), nil
}

// Volume returns the volume π·r²·L of a cylinder.
func Volume(radius, length float64) float64 {
	return math.Pi * radius * radius * length
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
