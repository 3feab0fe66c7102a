package balance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// GlobalFactor returns s = ((p_root − p_t) / (p_entry − p_t))^(1/4), the
// uniform radius factor that moves the root inlet pressure onto the entry
// pressure. s > 1 widens the tree, s < 1 narrows it.
func GlobalFactor(n *tree.Network, p hemo.Params) (float64, error) {
	root := n.At(n.Root())
	excess := root.PressureIn - p.TerminalPressure
	if !(excess > 0) {
		return 0, &Violation{Vessel: n.Root(), Err: ErrNonMonotonicPressure, Got: root.PressureIn, Want: p.TerminalPressure}
	}

	return math.Pow(excess/p.Budget(), 0.25), nil
}

// Rescale applies GlobalFactor to the whole tree, recomputes every pressure
// and snaps the root inlet to the entry pressure. It returns the applied
// factor.
//
// Errors (the tree is left untouched):
//   - ErrRadiusBelowMinimum  if the factor would shrink some radius below
//     MinRadius; the pressure budget is larger than a minimum-radius tree
//     can dissipate.
//   - ErrNonMonotonicPressure if the root inlet is not above the terminal
//     pressure.
//
// ErrBoundaryCondition is returned, with the tree already scaled, if the
// recomputed root inlet misses the entry pressure by more than SnapTolerance.
func Rescale(n *tree.Network, p hemo.Params) (float64, error) {
	// 1) Factor
	s, err := GlobalFactor(n, p)
	if err != nil {
		return 0, err
	}

	// 2) Refuse to narrow any vessel under the minimum
	thinnest := math.Inf(1)
	for _, id := range n.IDs() {
		thinnest = math.Min(thinnest, n.At(id).Radius)
	}
	if thinnest*s < p.MinRadius*(1-SnapTolerance) {
		return s, &Violation{Vessel: n.Root(), Err: ErrRadiusBelowMinimum, Got: thinnest * s, Want: p.MinRadius}
	}

	// 3) Scale and recompute
	if err = ScaleSubtree(n, n.Root(), s, p); err != nil {
		return s, err
	}

	// 4) Boundary condition
	root := n.At(n.Root())
	if math.Abs(root.PressureIn-p.EntryPressure) > SnapTolerance*p.EntryPressure {
		return s, fmt.Errorf("balance: rescale by %g: %w", s,
			&Violation{Vessel: n.Root(), Err: ErrBoundaryCondition, Got: root.PressureIn, Want: p.EntryPressure})
	}
	root.PressureIn = p.EntryPressure

	return s, nil
}
