// Package geom provides the 3D line-segment primitives used by vessel trees:
// segment length, midpoint, point-to-segment distance, and a nearest-segment
// linear scan.
//
// What:
//
//   - Segment: a pair of r3.Vec endpoints (Start upstream, End downstream).
//   - Length / Midpoint: Euclidean length and true midpoint of the segment.
//   - Distance: shortest distance from a point to the closed segment
//     (perpendicular foot when the projection falls inside, otherwise the
//     nearer endpoint).
//   - Nearest: index of the first segment achieving the minimum distance.
//
// Complexity:
//
//   - Length, Midpoint, Distance: O(1)
//   - Nearest:                    O(n) over the candidate slice
//
// Errors:
//
//   - ErrDegenerateSegment  segment endpoints coincide (length below DegenerateTol)
//   - ErrNoSegments         Nearest called with an empty candidate slice
//   - ErrNonFinitePoint     point has a NaN or ±Inf coordinate
package geom
