// Package balance restores the hemodynamic invariants of a vessel tree after
// its topology changed.
//
// OptimizeSubtree is the bottom-up pass: leaves get the minimum radius and
// the terminal outlet pressure, and at every junction the two branches are
// brought to a common pressure: the branch needing the higher inlet pressure
// sets it and the other branch is narrowed to match. Parent radii follow the
// bifurcation law and parent inlet pressures their own Poiseuille drop.
//
// Rescale then multiplies every radius by the global factor
//
//	s = ((p_root − p_t) / (p_entry − p_t))^(1/4)
//
// which, since Δp ∝ r⁻⁴ at fixed flow and length, moves the root inlet
// pressure onto the entry pressure. A factor that would push a radius under
// the minimum is refused with ErrRadiusBelowMinimum and leaves the tree
// untouched.
//
// Verify audits a tree against every invariant and returns the violations
// joined with errors.Join; each unwraps to one of the sentinel errors.
//
// All passes run on dfs.Walk; recursion depth equals tree depth, which is
// O(N) in the worst case.
package balance
