package balance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cco/dfs"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// OptimizeSubtree recomputes radii and pressures of the subtree rooted at
// top, children before parents.
//
// Per vessel, on exit from the depth-first walk:
//   - Leaf: radius = MinRadius, outlet = TerminalPressure, inlet from the drop.
//   - Internal: the junction pressure is the higher of the children's inlet
//     pressures; the other branch is narrowed to match it, both children are
//     given exactly that inlet pressure, the radius follows the bifurcation
//     law and the inlet pressure the vessel's own drop.
//
// Narrowed branches may drop below MinRadius here; Rescale widens the whole
// tree afterwards and refuses a result that stays below it.
//
// Flows are not touched; call tree.Network.AccumulateFlow first when the
// topology changed. When top is not the root, the junction above it is left
// for the caller to reconcile.
func OptimizeSubtree(n *tree.Network, top tree.ID, p hemo.Params) error {
	if _, ok := n.Lookup(top); !ok {
		return fmt.Errorf("balance: %w: %d", tree.ErrUnknownVessel, top)
	}
	_, err := dfs.Walk(n, top, dfs.WithOnExit(func(id tree.ID) error {
		v := n.At(id)
		if !v.IsParent() {
			v.Radius = p.MinRadius
			v.PressureOut = p.TerminalPressure

			return settleInlet(v, p)
		}

		// 1) Junction pressure: the child needing more drop dictates
		son, daughter := n.At(v.Son), n.At(v.Daughter)
		target := math.Max(son.PressureIn, daughter.PressureIn)

		// 2) Narrow the other branch up to the target
		for _, c := range [2]tree.ID{v.Son, v.Daughter} {
			if err := narrow(n, c, target, p); err != nil {
				return err
			}
		}
		son.PressureIn, daughter.PressureIn = target, target

		// 3) Parent radius and pressures
		return settleParent(n, v, p)
	}))

	return err
}

// narrow scales the branch rooted at id by ((p_in − p_t)/(target − p_t))^(1/4)
// so its inlet pressure rises to target. A leaf is resolved directly from its
// drop.
func narrow(n *tree.Network, id tree.ID, target float64, p hemo.Params) error {
	v := n.At(id)
	if v.PressureIn >= target {
		return nil
	}
	if !v.IsParent() {
		r, err := p.RadiusFromPressureDrop(v.Flow, v.Length(), target-v.PressureOut)
		if err != nil {
			return err
		}
		v.Radius, v.PressureIn = r, target

		return nil
	}
	factor := math.Pow((v.PressureIn-p.TerminalPressure)/(target-p.TerminalPressure), 0.25)

	return ScaleSubtree(n, id, factor, p)
}

// ScaleSubtree multiplies every radius of the subtree rooted at top by factor
// and recomputes its pressures bottom-up from the terminal pressure.
// At each junction the daughter inlet is aligned exactly to the son inlet.
func ScaleSubtree(n *tree.Network, top tree.ID, factor float64, p hemo.Params) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidFactor, factor)
	}
	if _, ok := n.Lookup(top); !ok {
		return fmt.Errorf("balance: %w: %d", tree.ErrUnknownVessel, top)
	}
	_, err := dfs.Walk(n, top, dfs.WithOnExit(func(id tree.ID) error {
		v := n.At(id)
		v.Radius *= factor
		if !v.IsParent() {
			v.PressureOut = p.TerminalPressure

			return settleInlet(v, p)
		}
		pj := n.At(v.Son).PressureIn
		n.At(v.Daughter).PressureIn = pj
		v.PressureOut = pj

		return settleInlet(v, p)
	}))

	return err
}

// settleParent sets the bifurcation-law radius of v, its outlet to the
// common junction pressure and its inlet from its drop.
func settleParent(n *tree.Network, v *tree.Vessel, p hemo.Params) error {
	son, daughter := n.At(v.Son), n.At(v.Daughter)
	r, err := p.BifurcationRadius(v.Flow, son.Flow, son.Radius, daughter.Flow, daughter.Radius)
	if err != nil {
		return err
	}
	v.Radius = r
	v.PressureOut = son.PressureIn

	return settleInlet(v, p)
}

// settleInlet sets PressureIn = PressureOut + Poiseuille drop.
func settleInlet(v *tree.Vessel, p hemo.Params) error {
	drop, err := p.PressureDrop(v.Flow, v.Length(), v.Radius)
	if err != nil {
		return err
	}
	if !(drop > 0) {
		return fmt.Errorf("%w: drop %g", ErrNonMonotonicPressure, drop)
	}
	v.PressureIn = v.PressureOut + drop

	return nil
}
