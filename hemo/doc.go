// Package hemo holds the physical parameters of a perfusion model and the
// pure hemodynamic laws relating flow, length, radius and pressure.
//
// What:
//
//   - Poiseuille resistance:  Δp = 8·Q·μ·L / (π·r⁴)
//   - Its inverse:            r  = (8·Q·μ·L / (π·Δp))^(1/4)
//   - Bifurcation law:        r0 = ((Q0/Q1)·r1^γ + (Q0/Q2)·r2^γ)^(1/γ)
//     (generalised Murray law, γ = 6 by default)
//   - Cylinder volume:        V  = π·r²·L
//
// All laws are methods on Params so the viscosity and exponent travel with
// the rest of the configuration. They are O(1), allocation free and never
// panic; non-physical inputs are reported with sentinel errors instead of
// producing NaN or complex radii.
//
// Errors:
//
//   - ErrNonPositiveRadius  radius ≤ 0 passed to PressureDrop or BifurcationRadius
//   - ErrNonPositiveDrop    pressure drop ≤ 0 passed to RadiusFromPressureDrop
//   - ErrNonPositiveFlow    child flow ≤ 0 in BifurcationRadius
//   - ErrNonFinite          NaN or ±Inf input
//   - ErrInvalidParams      Params.Validate failure
package hemo
