package tree

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cco/geom"
)

// Splice replaces vessel at with the bifurcation parent → {son, daughter}.
//
// Implementation:
//   - Stage 1: validate at and the three replacement vessels.
//   - Stage 2: parent takes at's slot, and with it at's place under at's own
//     parent (or the root position); son and daughter are appended.
//   - Stage 3: if at was internal, its children are re-parented under son;
//     daughter is always a fresh leaf.
//   - Stage 4: at leaves the flat collection, parent, son and daughter join it.
//   - Stage 5: flows are re-accumulated from the root.
//
// The link fields of parent, son and daughter are overwritten.
//
// Complexity: O(V).
func (n *Network) Splice(at ID, parent, son, daughter Vessel) (Junction, error) {
	// 1) Validate
	old, ok := n.Lookup(at)
	if !ok {
		return Junction{}, fmt.Errorf("%w: %d", ErrUnknownVessel, at)
	}
	for _, v := range []*Vessel{&parent, &son, &daughter} {
		if v.Segment().Degenerate() {
			return Junction{}, fmt.Errorf("tree: splice at %d: %w", at, geom.ErrDegenerateSegment)
		}
	}
	if son.Flow <= 0 || daughter.Flow <= 0 {
		return Junction{}, fmt.Errorf("%w: child flows %g, %g", ErrInvalidBifurcation, son.Flow, daughter.Flow)
	}

	// 2) Link the new triple
	j := Junction{Parent: at, Son: ID(len(n.vessels)), Daughter: ID(len(n.vessels) + 1)}
	replaced := *old

	parent.Parent = replaced.Parent
	parent.Son, parent.Daughter = j.Son, j.Daughter
	son.Parent, daughter.Parent = j.Parent, j.Parent
	son.Son, son.Daughter = None, None
	daughter.Son, daughter.Daughter = None, None

	// 3) Son inherits the replaced vessel's subtree
	if replaced.IsParent() {
		son.Son, son.Daughter = replaced.Son, replaced.Daughter
		n.vessels[replaced.Son].Parent = j.Son
		n.vessels[replaced.Daughter].Parent = j.Son
	}

	n.vessels[at] = parent
	n.vessels = append(n.vessels, son, daughter)
	if !replaced.HasParent() {
		n.root = at
	}

	// 4) Flat collection: drop at, append the triple
	if i := slices.Index(n.order, at); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
	n.order = append(n.order, j.Parent, j.Son, j.Daughter)

	// 5) Conservation of flow
	n.AccumulateFlow()

	return j, nil
}

// AccumulateFlow recomputes the flow of every internal vessel as the sum of
// its children, bottom-up from the root. Leaf flows are left as they are.
func (n *Network) AccumulateFlow() {
	n.accumulate(n.root)
}

func (n *Network) accumulate(id ID) float64 {
	v := &n.vessels[id]
	if !v.IsParent() {
		return v.Flow
	}
	f := n.accumulate(v.Son) + n.accumulate(v.Daughter)
	v.Flow = f

	return f
}
