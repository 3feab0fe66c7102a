// Package growth drives Constrained Constructive Optimization: it grows a
// binary vessel tree by inserting terminals one at a time.
//
// One insertion cycle (Grower.Insert):
//
//  1. nearest-vessel search over the flat vessel collection (first minimum
//     in insertion order wins ties);
//  2. bifurcation construction toward the terminal and local optimisation
//     of the junction;
//  3. splicing the parent/son/daughter triple in place of the attachment
//     vessel and re-accumulating flow;
//  4. bottom-up radius/pressure pass over the whole tree and global
//     rescaling onto the entry pressure;
//  5. optionally, an audit of every invariant.
//
// Insertions are transactional: if any step fails the network is restored
// to its state before the call. A degraded bifurcation (no feasible junction
// found) is logged and is not an error.
//
// Insertions are strictly sequential and a Grower is not safe for
// concurrent use. Grow checks its context between insertions only; a single
// insertion is bounded by the optimiser's iteration cap.
package growth
