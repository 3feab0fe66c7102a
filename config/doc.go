// Package config loads the constants and tunables of a growth session from
// YAML or TOML.
//
// Layout (YAML shown, TOML uses the same keys in tables):
//
//	params:
//	  viscosity: 0.005
//	  gamma: 6
//	  min_radius: 0.1
//	  terminal_pressure: 11102
//	  entry_pressure: 11202
//	  terminal_flow: 200
//	growth:
//	  max_iterations: 200
//	  tolerance: 1e-9
//	  penalty: 1000
//	  method: nelder-mead   # or centroid
//	  verify: false
//	  verify_tolerance: 1e-9
//	log:
//	  level: info
//	  development: false
//
// Missing keys keep their defaults; unknown keys are rejected.
package config
