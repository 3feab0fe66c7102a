package bifurcation

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bifurcation: invalid option supplied")

// Method selects the local junction optimiser.
type Method int

const (
	// NelderMead runs the gonum Nelder–Mead simplex on the penalised volume.
	NelderMead Method = iota
	// Centroid runs the radius-weighted centroid fixed-point iteration.
	Centroid
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case NelderMead:
		return "nelder-mead"
	case Centroid:
		return "centroid"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Default optimiser budget.
const (
	DefaultMaxIterations = 200
	DefaultTolerance     = 1e-9
	DefaultPenalty       = 1e3
)

// Option configures Optimize.
type Option func(*Options)

// Options holds the optimiser budget.
type Options struct {
	// MaxIterations caps major iterations (> 0).
	MaxIterations int

	// Tolerance is the relative volume change regarded as converged (> 0).
	Tolerance float64

	// Penalty weighs constraint violation against volume (≥ 0). The weight
	// applied per unit of violated length is Penalty·π·r², with r the
	// attachment vessel radius.
	Penalty float64

	// Method selects the optimiser.
	Method Method

	err error
}

// DefaultOptions returns Nelder–Mead with 200 iterations, tolerance 1e-9
// and penalty 1e3.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Penalty:       DefaultPenalty,
		Method:        NelderMead,
	}
}

// WithMaxIterations sets the iteration cap; n ≤ 0 is an ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the relative convergence tolerance; tol ≤ 0 is an ErrOptionViolation.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithPenalty sets the constraint penalty weight; w < 0 is an ErrOptionViolation.
func WithPenalty(w float64) Option {
	return func(o *Options) {
		if !(w >= 0) {
			o.err = fmt.Errorf("%w: Penalty must be non-negative (%g)", ErrOptionViolation, w)
			return
		}
		o.Penalty = w
	}
}

// WithMethod selects the optimiser.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != NelderMead && m != Centroid {
			o.err = fmt.Errorf("%w: unknown method %v", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// Bifurcation is a candidate junction replacing vessel At.
//
// Parent, Son and Daughter are unlinked vessels ready for tree.Network.Splice.
type Bifurcation struct {
	At       tree.ID
	Terminal r3.Vec

	Parent   tree.Vessel
	Son      tree.Vessel
	Daughter tree.Vessel

	// Baseline is the volume of the attachment vessel alone.
	Baseline float64

	params  hemo.Params
	initial candidate
}

// Result reports the outcome of Optimize.
type Result struct {
	// Junction is the committed junction point.
	Junction r3.Vec

	// Volume is the committed bifurcation volume, Baseline the volume of
	// the attachment vessel it replaces.
	Volume   float64
	Baseline float64

	Iterations  int
	Evaluations int
	Status      optimize.Status
	Method      Method

	// Degraded is set when no strictly feasible junction was found and the
	// initial junction was kept.
	Degraded bool
}

// candidate is one evaluated junction position.
type candidate struct {
	x         r3.Vec
	length    [3]float64
	radius    [3]float64
	pressure  float64
	volume    float64
	violation float64
}

func (c candidate) feasible() bool { return c.violation == 0 }
