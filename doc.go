// Package cco grows binary vascular trees by Constrained Constructive
// Optimization: terminals are inserted one at a time, each attaching to the
// nearest vessel through a locally optimised bifurcation, after which the
// whole tree is rebalanced onto fixed entry and terminal pressures.
//
// What is inside?
//
//   - Geometry: 3D segments over gonum's r3.Vec, nearest-segment search
//   - Hemodynamics: Poiseuille pressure drop and the generalised Murray law
//   - Vessel arena: index-addressed tree with splicing and flow accumulation
//   - Traversals: DFS (post-order passes) and BFS (generations, paths)
//   - Bifurcations: flow-weighted initial junction, volume minimisation
//   - Balancing: subtree radius/pressure pass, global rescale, invariant audit
//   - Growth driver: transactional insertions with zap logging
//
// Packages, leaves first:
//
//	geom/        — Segment, Distance, Nearest
//	hemo/        — Params, PressureDrop, RadiusFromPressureDrop, BifurcationRadius
//	tree/        — Vessel, Network, Splice, AccumulateFlow
//	dfs/, bfs/   — hook-driven walks over a Network
//	bifurcation/ — New, Optimize (Nelder–Mead or weighted centroid)
//	balance/     — OptimizeSubtree, ScaleSubtree, Rescale, Verify
//	growth/      — Grower: Seed, Insert, Grow, Build
//	config/      — YAML/TOML session configuration and logger
//	terminals/   — terminal samplers and CSV codec
//	cmd/ccogrow  — command-line grower writing a vessel table
//
// Quick example:
//
//	g, err := growth.Build(ctx, r3.Vec{}, terminals.FibonacciSphere(10, 50), hemo.DefaultParams())
//	// g.Network() now holds 99 vessels: 50 terminals, 49 bifurcations.
//
// Insertions are sequential; the order of terminals shapes the final tree.
package cco
