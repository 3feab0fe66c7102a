package bifurcation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/geom"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// New constructs the candidate bifurcation attaching terminal to vessel at.
//
// Errors:
//   - tree.ErrUnknownVessel      if at addresses no vessel.
//   - hemo.ErrInvalidParams      if p fails Validate.
//   - geom.ErrNonFinitePoint     if terminal is NaN/Inf.
//   - geom.ErrDegenerateSegment  if terminal coincides with an endpoint of
//     the vessel or the initial junction collapses onto an endpoint.
func New(n *tree.Network, at tree.ID, terminal r3.Vec, p hemo.Params) (*Bifurcation, error) {
	// 1) Validate
	v, ok := n.Lookup(at)
	if !ok {
		return nil, fmt.Errorf("bifurcation: %w: %d", tree.ErrUnknownVessel, at)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !geom.Finite(terminal) {
		return nil, geom.ErrNonFinitePoint
	}
	if geom.Coincident(terminal, v.Inlet) || geom.Coincident(terminal, v.Outlet) {
		return nil, fmt.Errorf("bifurcation: terminal on endpoint of vessel %d: %w", at, geom.ErrDegenerateSegment)
	}

	// 2) Flow-weighted initial junction
	f1 := v.Flow
	f2 := p.TerminalFlow
	f0 := f1 + f2
	x0 := r3.Scale(1/(2*f0), r3.Add(r3.Add(r3.Scale(f0, v.Inlet), r3.Scale(f1, v.Outlet)), r3.Scale(f2, terminal)))

	// 3) Unlinked triple; parent inlet pressure comes from the junction above v
	pin := v.PressureIn
	if v.HasParent() {
		pin = n.At(v.Parent).PressureOut
	}
	b := &Bifurcation{
		At:       at,
		Terminal: terminal,
		Parent:   tree.NewVessel(v.Inlet, x0, f0, pin, v.PressureOut),
		Son:      tree.NewVessel(x0, v.Outlet, f1, v.PressureIn, v.PressureOut),
		Daughter: tree.NewVessel(x0, terminal, f2, v.PressureIn, p.TerminalPressure),
		Baseline: v.Volume(),
		params:   p,
	}
	b.Son.Radius = v.Radius

	// 4) Junction pressure and radii at the initial point
	c, err := b.evaluate(x0)
	if err != nil {
		return nil, fmt.Errorf("bifurcation: initial junction for vessel %d: %w", at, err)
	}
	b.initial = c
	b.commit(c)

	return b, nil
}

// Volume returns the current volume of the three vessels.
func (b *Bifurcation) Volume() float64 {
	return floats.Sum([]float64{b.Parent.Volume(), b.Son.Volume(), b.Daughter.Volume()})
}

// Junction returns the current junction point.
func (b *Bifurcation) Junction() r3.Vec {
	return b.Parent.Outlet
}

// evaluate derives lengths, junction pressure, radii, volume and constraint
// violation for junction x. The son radius stays fixed. The violation sums
// the slack of lᵢ ≥ 2·rᵢ and rᵢ ≥ MinRadius over the three segments.
func (b *Bifurcation) evaluate(x r3.Vec) (candidate, error) {
	p := b.params
	c := candidate{x: x}
	ends := [3]r3.Vec{b.Parent.Inlet, b.Son.Outlet, b.Daughter.Outlet}
	for i, e := range ends {
		c.length[i] = r3.Norm(r3.Sub(e, x))
		if !(c.length[i] > geom.DegenerateTol) {
			return c, geom.ErrDegenerateSegment
		}
	}

	f0, f1, f2 := b.Parent.Flow, b.Son.Flow, b.Daughter.Flow
	r1 := b.Son.Radius
	drop, err := p.PressureDrop(f1, c.length[1], r1)
	if err != nil {
		return c, err
	}
	c.pressure = b.Son.PressureOut + drop

	r2, err := p.RadiusFromPressureDrop(f2, c.length[2], c.pressure-b.Daughter.PressureOut)
	if err != nil {
		return c, err
	}
	r0, err := p.BifurcationRadius(f0, f1, r1, f2, r2)
	if err != nil {
		return c, err
	}
	c.radius = [3]float64{r0, r1, r2}

	vols := make([]float64, 3)
	slack := make([]float64, 3)
	for i := range vols {
		vols[i] = hemo.Volume(c.radius[i], c.length[i])
		slack[i] = max(0, 2*c.radius[i]-c.length[i]) + max(0, p.MinRadius-c.radius[i])
	}
	c.volume = floats.Sum(vols)
	c.violation = floats.Sum(slack)

	return c, nil
}

// commit moves the junction to c and updates pressures and radii.
func (b *Bifurcation) commit(c candidate) {
	b.Parent.Outlet = c.x
	b.Son.Inlet = c.x
	b.Daughter.Inlet = c.x

	b.Parent.PressureOut = c.pressure
	b.Son.PressureIn = c.pressure
	b.Daughter.PressureIn = c.pressure

	b.Parent.Radius = c.radius[0]
	b.Daughter.Radius = c.radius[2]
}
