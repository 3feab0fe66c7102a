package growth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/tree"
)

var (
	// ErrNetworkNil is returned when New receives a nil network.
	ErrNetworkNil = errors.New("growth: network is nil")

	// ErrNoTerminals is returned when Build receives no terminals.
	ErrNoTerminals = errors.New("growth: no terminals")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("growth: invalid option supplied")
)

// DefaultVerifyTolerance is the relative tolerance of the per-insertion audit.
const DefaultVerifyTolerance = 1e-9

// Option configures a Grower.
type Option func(*Options)

// Options holds the driver settings.
type Options struct {
	// Logger receives per-insertion diagnostics. Defaults to zap.NewNop().
	Logger *zap.Logger

	// MaxIterations, Tolerance, Penalty and Method configure the local
	// bifurcation optimiser.
	MaxIterations int
	Tolerance     float64
	Penalty       float64
	Method        bifurcation.Method

	// Verify audits every invariant after each insertion and rolls the
	// insertion back on a violation.
	Verify          bool
	VerifyTolerance float64

	err error
}

// DefaultOptions returns a silent grower with the default optimiser budget
// and auditing disabled.
func DefaultOptions() Options {
	return Options{
		Logger:          zap.NewNop(),
		MaxIterations:   bifurcation.DefaultMaxIterations,
		Tolerance:       bifurcation.DefaultTolerance,
		Penalty:         bifurcation.DefaultPenalty,
		Method:          bifurcation.NelderMead,
		VerifyTolerance: DefaultVerifyTolerance,
	}
}

// ApplyOptions applies opts over DefaultOptions and reports an invalid one,
// if any.
func ApplyOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxIterations caps the optimiser's major iterations (n > 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the optimiser's relative convergence tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithPenalty sets the optimiser's constraint penalty weight (≥ 0).
func WithPenalty(w float64) Option {
	return func(o *Options) {
		if !(w >= 0) {
			o.err = fmt.Errorf("%w: Penalty must be non-negative (%g)", ErrOptionViolation, w)
			return
		}
		o.Penalty = w
	}
}

// WithMethod selects the local optimiser.
func WithMethod(m bifurcation.Method) Option {
	return func(o *Options) {
		if m != bifurcation.NelderMead && m != bifurcation.Centroid {
			o.err = fmt.Errorf("%w: unknown method %v", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithVerify enables the per-insertion audit with relative tolerance tol;
// tol ≤ 0 keeps DefaultVerifyTolerance.
func WithVerify(tol float64) Option {
	return func(o *Options) {
		o.Verify = true
		if tol > 0 {
			o.VerifyTolerance = tol
		}
	}
}

// Report describes one successful insertion.
type Report struct {
	// Terminal is the inserted point.
	Terminal r3.Vec

	// Attached is the vessel the terminal was attached to, and Distance the
	// terminal's distance to it.
	Attached tree.ID
	Distance float64

	// Junction names the spliced parent, son and daughter.
	Junction tree.Junction

	// Path lists the vessels from the root down to the new terminal vessel.
	Path []tree.ID

	// Bifurcation is the local optimiser outcome.
	Bifurcation bifurcation.Result

	// ScaleFactor is the applied global rescaling factor.
	ScaleFactor float64

	// Vessels is the tree size after the insertion.
	Vessels int
}

// Stats summarises a grown tree.
type Stats struct {
	Vessels     int
	Terminals   int
	Generations int
	Volume      float64
	RootRadius  float64
	RootFlow    float64
}
