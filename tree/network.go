package tree

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/geom"
	"github.com/katalvlaran/cco/hemo"
)

// NewNetwork creates a network holding a single root vessel from inlet to
// outlet that carries one terminal flow quantum from the entry pressure down
// to the terminal pressure. The root radius follows from that pressure drop.
//
// Errors:
//   - hemo.ErrInvalidParams       if p fails Validate.
//   - geom.ErrNonFinitePoint      if an endpoint is NaN/Inf.
//   - geom.ErrDegenerateSegment   if inlet and outlet coincide.
func NewNetwork(inlet, outlet r3.Vec, p hemo.Params) (*Network, error) {
	// 1) Validate constants and geometry
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !geom.Finite(inlet) || !geom.Finite(outlet) {
		return nil, geom.ErrNonFinitePoint
	}
	if geom.Coincident(inlet, outlet) {
		return nil, fmt.Errorf("tree: root vessel: %w", geom.ErrDegenerateSegment)
	}

	// 2) Build the root vessel
	root := NewVessel(inlet, outlet, p.TerminalFlow, p.EntryPressure, p.TerminalPressure)
	r, err := p.RadiusFromPressureDrop(root.Flow, root.Length(), root.Drop())
	if err != nil {
		return nil, fmt.Errorf("tree: root radius: %w", err)
	}
	root.Radius = r

	return &Network{
		vessels: []Vessel{root},
		order:   []ID{0},
		root:    0,
	}, nil
}

// Root returns the ID of the root vessel.
func (n *Network) Root() ID { return n.root }

// Len returns the number of vessels currently in the tree.
func (n *Network) Len() int { return len(n.order) }

// At returns the vessel with the given ID for in-place mutation.
// It panics on an unknown ID, like a slice index; use Lookup to check first.
func (n *Network) At(id ID) *Vessel {
	return &n.vessels[id]
}

// Lookup returns the vessel with the given ID, or false if none exists.
func (n *Network) Lookup(id ID) (*Vessel, bool) {
	if id < 0 || int(id) >= len(n.vessels) {
		return nil, false
	}

	return &n.vessels[id], true
}

// IDs returns a copy of the vessel IDs in insertion order.
func (n *Network) IDs() []ID {
	return slices.Clone(n.order)
}

// Leaves returns the IDs of terminal vessels in insertion order.
func (n *Network) Leaves() []ID {
	out := make([]ID, 0, (len(n.order)+1)/2)
	for _, id := range n.order {
		if !n.vessels[id].IsParent() {
			out = append(out, id)
		}
	}

	return out
}

// Nearest returns the vessel whose axis is closest to p, scanning in
// insertion order so that ties resolve to the earliest inserted vessel.
//
// Complexity: O(V).
func (n *Network) Nearest(p r3.Vec) (ID, float64, error) {
	segs := make([]geom.Segment, len(n.order))
	for i, id := range n.order {
		segs[i] = n.vessels[id].Segment()
	}
	idx, d, err := geom.Nearest(p, segs)
	if err != nil {
		return None, 0, fmt.Errorf("tree: nearest vessel: %w", err)
	}

	return n.order[idx], d, nil
}

// TotalVolume returns the summed volume of every vessel.
func (n *Network) TotalVolume() float64 {
	vols := make([]float64, len(n.order))
	for i, id := range n.order {
		vols[i] = n.vessels[id].Volume()
	}

	return floats.Sum(vols)
}

// Clone returns an independent copy of the network.
func (n *Network) Clone() *Network {
	return &Network{
		vessels: slices.Clone(n.vessels),
		order:   slices.Clone(n.order),
		root:    n.root,
	}
}

// Restore overwrites n with the state of from, leaving from untouched.
// Callers holding *Network keep a valid pointer across the restore.
func (n *Network) Restore(from *Network) {
	n.vessels = slices.Clone(from.vessels)
	n.order = slices.Clone(from.order)
	n.root = from.root
}
