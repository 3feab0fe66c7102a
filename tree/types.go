package tree

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/geom"
	"github.com/katalvlaran/cco/hemo"
)

var (
	// ErrUnknownVessel indicates an ID that does not address a vessel.
	ErrUnknownVessel = errors.New("tree: unknown vessel")

	// ErrInvalidBifurcation indicates Splice received vessels whose flows are not
	// positive or that cannot form a bifurcation.
	ErrInvalidBifurcation = errors.New("tree: invalid bifurcation vessels")
)

// ID addresses a vessel inside a Network arena.
type ID int

// None marks an absent link.
const None ID = -1

// Vessel is a single cylindrical segment of the network.
//
// Inlet is upstream, Outlet downstream. PressureIn > PressureOut for every
// vessel of a consistent tree. Son continues toward the vessel's original
// downstream subtree; Daughter leads to the most recently attached terminal.
type Vessel struct {
	Inlet  r3.Vec
	Outlet r3.Vec

	Flow        float64
	PressureIn  float64
	PressureOut float64
	Radius      float64

	Parent   ID
	Son      ID
	Daughter ID
}

// NewVessel returns an unlinked vessel with the given geometry, flow and
// pressures. Radius is left zero for the caller to derive.
func NewVessel(inlet, outlet r3.Vec, flow, pressureIn, pressureOut float64) Vessel {
	return Vessel{
		Inlet:       inlet,
		Outlet:      outlet,
		Flow:        flow,
		PressureIn:  pressureIn,
		PressureOut: pressureOut,
		Parent:      None,
		Son:         None,
		Daughter:    None,
	}
}

// Segment returns the vessel axis as a geom.Segment.
func (v *Vessel) Segment() geom.Segment {
	return geom.NewSegment(v.Inlet, v.Outlet)
}

// Length returns the current inlet-outlet distance.
func (v *Vessel) Length() float64 {
	return v.Segment().Length()
}

// Volume returns π·r²·L.
func (v *Vessel) Volume() float64 {
	return hemo.Volume(v.Radius, v.Length())
}

// Drop returns PressureIn - PressureOut.
func (v *Vessel) Drop() float64 {
	return v.PressureIn - v.PressureOut
}

// IsParent reports whether the vessel bifurcates (has both children).
func (v *Vessel) IsParent() bool {
	return v.Son != None && v.Daughter != None
}

// HasParent reports whether the vessel is not the root.
func (v *Vessel) HasParent() bool {
	return v.Parent != None
}

// Junction names the three vessels produced by one Splice.
type Junction struct {
	Parent   ID
	Son      ID
	Daughter ID
}

// Network is the mutable vessel tree of a growth session.
//
// vessels is the arena; every slot is live because Splice reuses the slot of
// the vessel it replaces. order is the flat collection in insertion order.
type Network struct {
	vessels []Vessel
	order   []ID
	root    ID
}
