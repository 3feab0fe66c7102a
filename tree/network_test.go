package tree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/geom"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// newRoot creates the (0,0,0)→(0,0,10) single-vessel network used throughout.
func newRoot(t *testing.T) (*tree.Network, hemo.Params) {
	t.Helper()
	p := hemo.DefaultParams()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	require.NoError(t, err)

	return n, p
}

// triple builds an unlinked bifurcation replacing v with junction j and terminal term.
func triple(v *tree.Vessel, j, term r3.Vec, p hemo.Params) (tree.Vessel, tree.Vessel, tree.Vessel) {
	parent := tree.NewVessel(v.Inlet, j, v.Flow+p.TerminalFlow, v.PressureIn, v.PressureOut+1)
	son := tree.NewVessel(j, v.Outlet, v.Flow, v.PressureOut+1, v.PressureOut)
	daughter := tree.NewVessel(j, term, p.TerminalFlow, v.PressureOut+1, p.TerminalPressure)
	parent.Radius, son.Radius, daughter.Radius = 1, 1, 1

	return parent, son, daughter
}

func TestNewNetwork_Root(t *testing.T) {
	n, p := newRoot(t)
	require.Equal(t, 1, n.Len())
	root := n.At(n.Root())

	assert.False(t, root.HasParent())
	assert.False(t, root.IsParent())
	assert.Equal(t, p.TerminalFlow, root.Flow)
	assert.Equal(t, p.EntryPressure, root.PressureIn)
	assert.Equal(t, p.TerminalPressure, root.PressureOut)
	assert.InDelta(t, 10.0, root.Length(), 1e-12)

	want, err := p.RadiusFromPressureDrop(p.TerminalFlow, 10, p.Budget())
	require.NoError(t, err)
	assert.InEpsilon(t, want, root.Radius, 1e-12)
}

func TestNewNetwork_Errors(t *testing.T) {
	p := hemo.DefaultParams()
	_, err := tree.NewNetwork(r3.Vec{X: 1}, r3.Vec{X: 1}, p)
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)

	_, err = tree.NewNetwork(r3.Vec{X: math.NaN()}, r3.Vec{X: 1}, p)
	assert.ErrorIs(t, err, geom.ErrNonFinitePoint)

	bad := p
	bad.EntryPressure = bad.TerminalPressure
	_, err = tree.NewNetwork(r3.Vec{}, r3.Vec{X: 1}, bad)
	assert.ErrorIs(t, err, hemo.ErrInvalidParams)
}

func TestSplice_RootLeaf(t *testing.T) {
	n, p := newRoot(t)
	pa, so, da := triple(n.At(0), r3.Vec{X: 1, Z: 4}, r3.Vec{X: 5, Z: 5}, p)

	j, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)
	assert.Equal(t, tree.Junction{Parent: 0, Son: 1, Daughter: 2}, j)
	assert.Equal(t, 3, n.Len())
	assert.Equal(t, tree.ID(0), n.Root())
	assert.Equal(t, []tree.ID{0, 1, 2}, n.IDs())
	assert.Equal(t, []tree.ID{1, 2}, n.Leaves())

	root := n.At(n.Root())
	assert.True(t, root.IsParent())
	assert.False(t, root.HasParent())
	assert.Equal(t, j.Son, root.Son)
	assert.Equal(t, j.Daughter, root.Daughter)
	assert.Equal(t, j.Parent, n.At(j.Son).Parent)
	assert.Equal(t, j.Parent, n.At(j.Daughter).Parent)
	assert.False(t, n.At(j.Son).IsParent())
	assert.InDelta(t, 2*p.TerminalFlow, root.Flow, 1e-12)
}

func TestSplice_InternalVesselSonInheritsSubtree(t *testing.T) {
	n, p := newRoot(t)
	pa, so, da := triple(n.At(0), r3.Vec{X: 1, Z: 4}, r3.Vec{X: 5, Z: 5}, p)
	_, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)

	// bifurcate the internal root again
	pa, so, da = triple(n.At(0), r3.Vec{X: -0.5, Z: 2}, r3.Vec{X: -6, Z: 1}, p)
	j, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)

	assert.Equal(t, 5, n.Len())
	assert.Equal(t, []tree.ID{1, 2, 0, 3, 4}, n.IDs(), "replaced vessel leaves the order, the triple is appended")

	son := n.At(j.Son)
	require.True(t, son.IsParent())
	assert.Equal(t, tree.ID(1), son.Son)
	assert.Equal(t, tree.ID(2), son.Daughter)
	assert.Equal(t, j.Son, n.At(1).Parent)
	assert.Equal(t, j.Son, n.At(2).Parent)
	assert.False(t, n.At(j.Daughter).IsParent())

	// flow conservation everywhere
	assert.InDelta(t, 3*p.TerminalFlow, n.At(n.Root()).Flow, 1e-12)
	assert.InDelta(t, 2*p.TerminalFlow, son.Flow, 1e-12)
	assert.ElementsMatch(t, []tree.ID{1, 2, 4}, n.Leaves())
}

func TestSplice_NonRootKeepsParentSlot(t *testing.T) {
	n, p := newRoot(t)
	pa, so, da := triple(n.At(0), r3.Vec{X: 1, Z: 4}, r3.Vec{X: 5, Z: 5}, p)
	_, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)

	// split the daughter leaf (ID 2)
	pa, so, da = triple(n.At(2), r3.Vec{X: 3, Z: 4.5}, r3.Vec{X: 4, Z: 8}, p)
	j, err := n.Splice(2, pa, so, da)
	require.NoError(t, err)

	assert.Equal(t, tree.ID(2), j.Parent)
	assert.Equal(t, tree.ID(0), n.At(2).Parent)
	assert.Equal(t, tree.ID(2), n.At(0).Daughter, "grandparent link is untouched by slot reuse")
	assert.InDelta(t, 2*p.TerminalFlow, n.At(2).Flow, 1e-12)
	assert.InDelta(t, 3*p.TerminalFlow, n.At(0).Flow, 1e-12)
}

func TestSplice_Errors(t *testing.T) {
	n, p := newRoot(t)
	pa, so, da := triple(n.At(0), r3.Vec{X: 1, Z: 4}, r3.Vec{X: 5, Z: 5}, p)

	_, err := n.Splice(7, pa, so, da)
	assert.ErrorIs(t, err, tree.ErrUnknownVessel)

	bad := da
	bad.Outlet = bad.Inlet
	_, err = n.Splice(0, pa, so, bad)
	assert.ErrorIs(t, err, geom.ErrDegenerateSegment)

	bad = so
	bad.Flow = 0
	_, err = n.Splice(0, pa, bad, da)
	assert.ErrorIs(t, err, tree.ErrInvalidBifurcation)
	assert.Equal(t, 1, n.Len(), "failed splice leaves the network untouched")
}

func TestNetwork_NearestUsesInsertionOrder(t *testing.T) {
	n, p := newRoot(t)
	// junction on the axis at z=5, daughter along +x
	pa, so, da := triple(n.At(0), r3.Vec{Z: 5}, r3.Vec{X: 5, Z: 5}, p)
	_, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)

	id, d, err := n.Nearest(r3.Vec{X: 5, Z: 6})
	require.NoError(t, err)
	assert.Equal(t, tree.ID(2), id)
	assert.InDelta(t, 1.0, d, 1e-12)

	// (0,0,5) lies on both parent (z∈[0,5]) and son (z∈[5,10]) at distance 0 → first in order
	id, d, err = n.Nearest(r3.Vec{Z: 5})
	require.NoError(t, err)
	assert.Equal(t, n.IDs()[0], id)
	assert.Zero(t, d)
}

func TestNetwork_CloneRestore(t *testing.T) {
	n, p := newRoot(t)
	snap := n.Clone()

	pa, so, da := triple(n.At(0), r3.Vec{X: 1, Z: 4}, r3.Vec{X: 5, Z: 5}, p)
	_, err := n.Splice(0, pa, so, da)
	require.NoError(t, err)
	require.Equal(t, 3, n.Len())
	assert.Equal(t, 1, snap.Len(), "clone is independent of later mutation")

	n.Restore(snap)
	assert.Equal(t, 1, n.Len())
	assert.False(t, n.At(0).IsParent())

	n.At(0).Radius = 42
	assert.NotEqual(t, 42.0, snap.At(0).Radius, "restore copies, it does not alias")
}

func TestNetwork_LookupAndVolume(t *testing.T) {
	n, _ := newRoot(t)
	_, ok := n.Lookup(-1)
	assert.False(t, ok)
	_, ok = n.Lookup(1)
	assert.False(t, ok)

	v, ok := n.Lookup(0)
	require.True(t, ok)
	assert.InEpsilon(t, math.Pi*v.Radius*v.Radius*10, n.TotalVolume(), 1e-12)
}
