// Package bfs walks a vessel tree breadth-first, i.e. generation by
// generation, returning the visit order, the generation (depth) of every
// vessel, parent links and the per-generation layering.
//
// What
//
//   - Explore vessels in non-decreasing generation from a start vessel.
//   - Returns a Result containing:
//   - Order:  visit sequence (son before daughter within a parent)
//   - Depth:  vessel → generation relative to the start
//   - Parent: vessel → its upstream vessel inside the walk
//   - Levels: vessels grouped by generation
//   - OnVisit hook per vessel (may abort); WithMaxDepth caps generations;
//     WithContext allows cancellation.
//
// Why
//
//   - Generation numbers and level layering for reports and exports.
//   - Vessel paths from the root to any terminal (Result.PathTo).
//
// Determinism
//
//	Children are enqueued son first, then daughter, so the visit sequence is
//	fully reproducible for a given network.
//
// Complexity (V = vessels in the walked subtree)
//
//   - Time:   O(V)
//   - Memory: O(V)
//
// Errors
//
//   - ErrNetworkNil           if the network pointer is nil.
//   - ErrStartVesselNotFound  if the start ID addresses no vessel.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               if the context is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
