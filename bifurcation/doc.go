// Package bifurcation builds and locally optimises the three-vessel junction
// that attaches a new terminal to an existing vessel.
//
// New replaces the attachment vessel v with a candidate triple:
//
//	parent:   v.Inlet  → J          flow f0 = f1 + f2
//	son:      J        → v.Outlet   flow f1 = v.Flow, radius v.Radius
//	daughter: J        → terminal   flow f2 = terminal quantum
//
// The initial junction J is (f0·v.Inlet + f1·v.Outlet + f2·terminal) / (2·f0),
// coordinate by coordinate. The junction pressure follows from the son's
// Poiseuille drop, the daughter radius from its drop to the terminal
// pressure, and the parent radius from the bifurcation law.
//
// Optimize moves J to minimise π·Σ rᵢ²·lᵢ subject to lᵢ ≥ 2·rᵢ and
// rᵢ ≥ MinRadius for all three segments. Two methods are available:
//
//   - NelderMead (default): gonum/optimize Nelder–Mead on the volume plus an
//     exact penalty for the constraints.
//   - Centroid: the fixed-point iteration J ← Σ wᵢ·pᵢ / Σ wᵢ with wᵢ = rᵢ²/lᵢ
//     over the three far endpoints.
//
// Every evaluated junction is checked for strict feasibility and the best
// feasible one is committed. When none is feasible the initial junction is
// kept and Result.Degraded is set; this is not an error.
//
// Complexity: O(MaxIterations) evaluations of O(1) each.
package bifurcation
