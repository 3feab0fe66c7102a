// Package dfs implements depth-first traversal of a vessel tree.
//
// What:
//
//   - Walk(n, start, opts...): explores the subtree rooted at start, son
//     before daughter, as far as possible along each branch before
//     backtracking, with pre-order (OnVisit) and post-order (OnExit) hooks.
//
// Why:
//   - Post-order is the natural order of every bottom-up pass over the tree:
//     junction pressure selection, radius propagation, subtree scaling.
//   - Pre-order hooks drive top-down passes such as invariant audits.
//
// Key Types:
//
//   - Option: functional options for Walk behavior
//   - Options: holds the OnVisit and OnExit hooks
//   - Result: collects post-order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - Time:   O(V) plus hook cost (V = vessels in the subtree)
//   - Memory: O(V) for the recursion stack and metadata maps
//
// Errors:
//
//   - ErrNetworkNil        if n is nil.
//   - ErrStartNotFound     if start addresses no vessel.
//   - any error returned by OnVisit or OnExit, wrapped with the vessel ID.
package dfs
