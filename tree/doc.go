// Package tree defines the vessel network grown by constrained constructive
// optimisation: an arena of cylindrical vessels addressed by ID, linked into a
// strictly binary tree by parent/son/daughter indices.
//
// What:
//
//   - Vessel: one segment with hemodynamic state (flow, inlet/outlet pressure,
//     radius) and tree links. Length is derived from the endpoints on demand.
//   - Network: the arena, the root ID and the flat insertion-ordered
//     collection used by the nearest-vessel search.
//   - Splice: replaces one vessel with a parent/son/daughter bifurcation,
//     reusing the replaced vessel's slot for the new parent so every existing
//     ID stays valid.
//
// Invariants maintained by this package:
//
//   - Every vessel has either zero or two children (IsParent).
//   - Parent links mirror child links; the root is the only vessel with Parent == None.
//   - After Splice, Flow of every internal vessel equals the sum of its children.
//
// Radii and pressures are not re-derived here; see packages bifurcation and
// balance.
//
// Complexity:
//
//   - At, Lookup, Root:         O(1)
//   - Nearest, Leaves, IDs:     O(V)
//   - Splice:                   O(V) (order maintenance and flow accumulation)
//   - AccumulateFlow:           O(V), recursion depth bounded by tree height
//
// Errors:
//
//   - ErrUnknownVessel   ID outside the arena
//   - ErrInvalidBifurcation malformed replacement vessels passed to Splice
//   - geom.ErrDegenerateSegment, geom.ErrNonFinitePoint from geometry checks
package tree
