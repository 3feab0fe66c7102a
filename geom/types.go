package geom

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// DegenerateTol is the length below which a segment is treated as degenerate.
const DegenerateTol = 1e-12

var (
	// ErrDegenerateSegment indicates coincident endpoints (zero-length segment).
	ErrDegenerateSegment = errors.New("geom: degenerate segment")

	// ErrNoSegments indicates that Nearest received no candidates.
	ErrNoSegments = errors.New("geom: no segments to search")

	// ErrNonFinitePoint indicates a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("geom: non-finite point")
)

// Segment is a straight line segment from Start to End.
type Segment struct {
	Start r3.Vec
	End   r3.Vec
}
