package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewSegment returns the segment from start to end.
func NewSegment(start, end r3.Vec) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the Euclidean distance between the endpoints.
// It is recomputed on every call, so moving an endpoint never leaves it stale.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.End, s.Start))
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() r3.Vec {
	return r3.Scale(0.5, r3.Add(s.Start, s.End))
}

// Degenerate reports whether the segment length is below DegenerateTol.
func (s Segment) Degenerate() bool {
	return s.Length() < DegenerateTol
}

// Distance returns the shortest distance from p to the closed segment.
//
// Implementation:
//   - Stage 1: reject non-finite p and degenerate segments.
//   - Stage 2: project p onto the supporting line, t = (p-a)·(b-a) / |b-a|².
//   - Stage 3: clamp t to [0,1] and measure to the foot point.
//
// Complexity: O(1).
func (s Segment) Distance(p r3.Vec) (float64, error) {
	if !Finite(p) {
		return 0, ErrNonFinitePoint
	}
	dir := r3.Sub(s.End, s.Start)
	den := r3.Norm2(dir)
	if math.Sqrt(den) < DegenerateTol {
		return 0, ErrDegenerateSegment
	}

	t := r3.Dot(r3.Sub(p, s.Start), dir) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	foot := r3.Add(s.Start, r3.Scale(t, dir))

	return r3.Norm(r3.Sub(p, foot)), nil
}

// Nearest returns the index of the segment closest to p and that distance.
// Ties resolve to the first segment reaching the minimum, so the result is
// stable with respect to the order of segs.
//
// Complexity: O(len(segs)).
func Nearest(p r3.Vec, segs []Segment) (int, float64, error) {
	if len(segs) == 0 {
		return -1, 0, ErrNoSegments
	}

	best := -1
	minDist := math.Inf(1)
	var (
		d   float64
		err error
	)
	for i := range segs {
		if d, err = segs[i].Distance(p); err != nil {
			return -1, 0, fmt.Errorf("geom: segment %d: %w", i, err)
		}
		// strict comparison keeps the first minimum
		if d < minDist {
			minDist = d
			best = i
		}
	}

	return best, minDist, nil
}

// Coincident reports whether a and b are closer than DegenerateTol.
func Coincident(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < DegenerateTol
}

// Finite reports whether every coordinate of p is a finite number.
func Finite(p r3.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}
