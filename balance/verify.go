package balance

import (
	"errors"
	"math"

	"github.com/katalvlaran/cco/dfs"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// Verify checks every invariant of a balanced tree and returns all
// violations joined, or nil. Relative quantities are compared with tol;
// pressures are compared relative to the entry pressure.
//
// Checked per vessel:
//   - flow: leaves carry TerminalFlow, parents the sum of their children
//   - pressure: inlet > outlet, drop equal to the Poiseuille drop, junction
//     pressures equal
//   - radius: ≥ MinRadius, parents on the bifurcation law
//   - boundary: root inlet at EntryPressure, leaf outlets at TerminalPressure
func Verify(n *tree.Network, p hemo.Params, tol float64) error {
	var found []error
	report := func(id tree.ID, sentinel error, got, want float64) {
		found = append(found, &Violation{Vessel: id, Err: sentinel, Got: got, Want: want})
	}
	pressureTol := tol * p.EntryPressure

	root := n.At(n.Root())
	if math.Abs(root.PressureIn-p.EntryPressure) > pressureTol {
		report(n.Root(), ErrBoundaryCondition, root.PressureIn, p.EntryPressure)
	}

	_, err := dfs.Walk(n, n.Root(), dfs.WithOnVisit(func(id tree.ID) error {
		v := n.At(id)

		// 1) Radius and pressure along the vessel
		if v.Radius < p.MinRadius*(1-tol) {
			report(id, ErrRadiusBelowMinimum, v.Radius, p.MinRadius)
		}
		if !(v.PressureIn > v.PressureOut) {
			report(id, ErrNonMonotonicPressure, v.PressureIn, v.PressureOut)
		}
		if drop, err := p.PressureDrop(v.Flow, v.Length(), v.Radius); err == nil {
			if math.Abs(v.Drop()-drop) > pressureTol {
				report(id, ErrPressureMismatch, v.Drop(), drop)
			}
		} else {
			report(id, ErrRadiusBelowMinimum, v.Radius, p.MinRadius)
		}

		// 2) Leaf boundary
		if !v.IsParent() {
			if v.Flow != p.TerminalFlow {
				report(id, ErrFlowImbalance, v.Flow, p.TerminalFlow)
			}
			if v.PressureOut != p.TerminalPressure {
				report(id, ErrBoundaryCondition, v.PressureOut, p.TerminalPressure)
			}

			return nil
		}

		// 3) Junction
		son, daughter := n.At(v.Son), n.At(v.Daughter)
		if sum := son.Flow + daughter.Flow; !near(v.Flow, sum, tol) {
			report(id, ErrFlowImbalance, v.Flow, sum)
		}
		if son.PressureIn != v.PressureOut {
			report(v.Son, ErrPressureMismatch, son.PressureIn, v.PressureOut)
		}
		if daughter.PressureIn != v.PressureOut {
			report(v.Daughter, ErrPressureMismatch, daughter.PressureIn, v.PressureOut)
		}
		if r, err := p.BifurcationRadius(v.Flow, son.Flow, son.Radius, daughter.Flow, daughter.Radius); err != nil || !near(v.Radius, r, tol) {
			report(id, ErrBifurcationLaw, v.Radius, r)
		}

		return nil
	}))
	if err != nil {
		found = append(found, err)
	}

	return errors.Join(found...)
}

// near reports |a − b| ≤ tol·max(|a|, |b|).
func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}
