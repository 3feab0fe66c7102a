package balance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/balance"
	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

const tol = 1e-9

// attach splices a bifurcation toward term at the nearest vessel, without
// rebalancing.
func attach(t *testing.T, n *tree.Network, p hemo.Params, term r3.Vec) {
	t.Helper()
	at, _, err := n.Nearest(term)
	require.NoError(t, err)
	b, err := bifurcation.New(n, at, term, p)
	require.NoError(t, err)
	_, err = b.Optimize()
	require.NoError(t, err)
	_, err = n.Splice(b.At, b.Parent, b.Son, b.Daughter)
	require.NoError(t, err)
}

// grown returns a balanced, rescaled tree with the given terminals.
func grown(t *testing.T, terms ...r3.Vec) (*tree.Network, hemo.Params) {
	t.Helper()
	p := hemo.DefaultParams()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	require.NoError(t, err)
	for _, term := range terms {
		attach(t, n, p, term)
		require.NoError(t, balance.OptimizeSubtree(n, n.Root(), p))
		_, err = balance.Rescale(n, p)
		require.NoError(t, err)
	}

	return n, p
}

var sample = []r3.Vec{
	{X: 5, Z: 5},
	{X: -6, Y: 2, Z: 7},
	{Y: 8, Z: 3},
	{X: 3, Y: -4, Z: 9},
	{X: -2, Y: -7, Z: 1},
}

func radii(n *tree.Network) map[tree.ID]float64 {
	out := make(map[tree.ID]float64, n.Len())
	for _, id := range n.IDs() {
		out[id] = n.At(id).Radius
	}

	return out
}

func TestOptimizeSubtree_SingleLeaf(t *testing.T) {
	p := hemo.DefaultParams()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	require.NoError(t, err)

	require.NoError(t, balance.OptimizeSubtree(n, n.Root(), p))
	root := n.At(n.Root())
	assert.Equal(t, p.MinRadius, root.Radius)
	assert.Equal(t, p.TerminalPressure, root.PressureOut)
	drop, err := p.PressureDrop(root.Flow, 10, p.MinRadius)
	require.NoError(t, err)
	assert.InEpsilon(t, p.TerminalPressure+drop, root.PressureIn, 1e-12)
}

func TestOptimizeSubtree_Junction(t *testing.T) {
	p := hemo.DefaultParams()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	require.NoError(t, err)
	attach(t, n, p, r3.Vec{X: 5, Z: 5})

	require.NoError(t, balance.OptimizeSubtree(n, n.Root(), p))
	root := n.At(n.Root())
	son, daughter := n.At(root.Son), n.At(root.Daughter)

	// the junction takes the higher of the two leaf requirements
	need := func(v *tree.Vessel) float64 {
		drop, err := p.PressureDrop(v.Flow, v.Length(), p.MinRadius)
		require.NoError(t, err)
		return p.TerminalPressure + drop
	}
	want := math.Max(need(son), need(daughter))
	assert.InEpsilon(t, want, root.PressureOut, 1e-12)
	assert.Equal(t, root.PressureOut, son.PressureIn)
	assert.Equal(t, root.PressureOut, daughter.PressureIn)

	// the dictating leaf keeps the minimum radius, the other was narrowed
	assert.Equal(t, p.MinRadius, math.Max(son.Radius, daughter.Radius))
	assert.LessOrEqual(t, math.Min(son.Radius, daughter.Radius), p.MinRadius)

	r0, err := p.BifurcationRadius(root.Flow, son.Flow, son.Radius, daughter.Flow, daughter.Radius)
	require.NoError(t, err)
	assert.InEpsilon(t, r0, root.Radius, 1e-12)
}

func TestOptimizeSubtree_InternalChild(t *testing.T) {
	n, p := grown(t, sample[:2]...)
	root := n.At(n.Root())
	require.True(t, n.At(root.Son).IsParent() || n.At(root.Daughter).IsParent())

	// requirements of each branch balanced on its own
	alone := n.Clone()
	r := alone.At(alone.Root())
	require.NoError(t, balance.OptimizeSubtree(alone, r.Son, p))
	require.NoError(t, balance.OptimizeSubtree(alone, r.Daughter, p))
	pSon, pDaughter := alone.At(r.Son).PressureIn, alone.At(r.Daughter).PressureIn
	require.NotEqual(t, pSon, pDaughter)
	low := r.Son
	if pSon > pDaughter {
		low = r.Daughter
	}
	before := radii(alone)

	require.NoError(t, balance.OptimizeSubtree(n, n.Root(), p))
	root = n.At(n.Root())
	assert.InEpsilon(t, math.Max(pSon, pDaughter), root.PressureOut, 1e-12)
	assert.Equal(t, root.PressureOut, n.At(root.Son).PressureIn)
	assert.Equal(t, root.PressureOut, n.At(root.Daughter).PressureIn)
	assert.Less(t, n.At(low).Radius, before[low])
}

func TestOptimizeSubtree_UnknownVessel(t *testing.T) {
	n, p := grown(t)
	assert.ErrorIs(t, balance.OptimizeSubtree(n, 99, p), tree.ErrUnknownVessel)
}

func TestRescale_Invariants(t *testing.T) {
	n, p := grown(t, sample...)
	require.Equal(t, 2*len(sample)+1, n.Len())

	assert.NoError(t, balance.Verify(n, p, tol))
	root := n.At(n.Root())
	assert.Equal(t, p.EntryPressure, root.PressureIn)
	assert.Equal(t, float64(len(sample)+1)*p.TerminalFlow, root.Flow)
	for _, id := range n.Leaves() {
		assert.Equal(t, p.TerminalPressure, n.At(id).PressureOut)
	}
}

func TestRescale_Idempotent(t *testing.T) {
	n, p := grown(t, sample...)
	before := radii(n)

	s, err := balance.Rescale(n, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, tol)
	for id, r := range radii(n) {
		assert.InEpsilon(t, before[id], r, tol, "vessel %d", id)
	}
	assert.NoError(t, balance.Verify(n, p, tol))
}

func TestRescale_BudgetTooLarge(t *testing.T) {
	p := hemo.DefaultParams()
	p.EntryPressure = p.TerminalPressure + 1e9
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, p)
	require.NoError(t, err)
	attach(t, n, p, r3.Vec{X: 5, Z: 5})
	require.NoError(t, balance.OptimizeSubtree(n, n.Root(), p))
	snapshot := n.Clone()

	s, err := balance.Rescale(n, p)
	require.ErrorIs(t, err, balance.ErrRadiusBelowMinimum)
	assert.Less(t, s, 1.0)
	assert.Equal(t, snapshot, n)
}

func TestGlobalFactor(t *testing.T) {
	n, p := grown(t)
	n.At(n.Root()).PressureIn = p.TerminalPressure + 16*p.Budget()

	s, err := balance.GlobalFactor(n, p)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.0, s, 1e-12)

	n.At(n.Root()).PressureIn = p.TerminalPressure
	_, err = balance.GlobalFactor(n, p)
	assert.ErrorIs(t, err, balance.ErrNonMonotonicPressure)
}

func TestScaleSubtree_PressureScaling(t *testing.T) {
	n, p := grown(t, sample[:3]...)
	excess := n.At(n.Root()).PressureIn - p.TerminalPressure

	require.NoError(t, balance.ScaleSubtree(n, n.Root(), 2, p))
	assert.InEpsilon(t, excess/16, n.At(n.Root()).PressureIn-p.TerminalPressure, 1e-9)
}

func TestScaleSubtree_Errors(t *testing.T) {
	n, p := grown(t)
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, balance.ScaleSubtree(n, n.Root(), f, p), balance.ErrInvalidFactor, "factor %g", f)
	}
	assert.ErrorIs(t, balance.ScaleSubtree(n, 5, 1, p), tree.ErrUnknownVessel)
}

func TestVerify_ReportsViolations(t *testing.T) {
	n, p := grown(t, sample[:2]...)
	root := n.Root()
	leaf := n.Leaves()[0]
	n.At(root).Radius *= 1.5
	n.At(leaf).PressureOut += 1

	err := balance.Verify(n, p, tol)
	require.Error(t, err)
	assert.ErrorIs(t, err, balance.ErrBifurcationLaw)
	assert.ErrorIs(t, err, balance.ErrBoundaryCondition)

	var v *balance.Violation
	require.True(t, errors.As(err, &v))
	assert.Contains(t, []tree.ID{root, leaf}, v.Vessel)
}
