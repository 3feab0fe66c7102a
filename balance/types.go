package balance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cco/tree"
)

var (
	// ErrRadiusBelowMinimum indicates a radius under hemo.Params.MinRadius.
	ErrRadiusBelowMinimum = errors.New("balance: radius below minimum")

	// ErrNonMonotonicPressure indicates a vessel whose pressure does not
	// strictly decrease from inlet to outlet.
	ErrNonMonotonicPressure = errors.New("balance: pressure not strictly decreasing")

	// ErrPressureMismatch indicates a junction whose three pressures differ,
	// or a vessel whose drop disagrees with its Poiseuille drop.
	ErrPressureMismatch = errors.New("balance: pressure mismatch")

	// ErrFlowImbalance indicates a violation of flow conservation.
	ErrFlowImbalance = errors.New("balance: flow not conserved")

	// ErrBifurcationLaw indicates a parent radius off the bifurcation law.
	ErrBifurcationLaw = errors.New("balance: bifurcation law violated")

	// ErrBoundaryCondition indicates a root inlet off the entry pressure or a
	// leaf outlet off the terminal pressure.
	ErrBoundaryCondition = errors.New("balance: boundary condition violated")

	// ErrInvalidFactor indicates a non-positive or non-finite scale factor.
	ErrInvalidFactor = errors.New("balance: invalid scale factor")
)

// SnapTolerance is the relative agreement required between the rescaled
// root inlet pressure and the entry pressure before it is snapped exactly.
const SnapTolerance = 1e-9

// Violation is one failed invariant found by Verify.
type Violation struct {
	Vessel tree.ID
	Err    error
	Got    float64
	Want   float64
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("vessel %d: %v (got %g, want %g)", v.Vessel, v.Err, v.Got, v.Want)
}

// Unwrap returns the sentinel error.
func (v *Violation) Unwrap() error { return v.Err }
