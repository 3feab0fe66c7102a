package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/dfs"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// split replaces vessel at with a midpoint bifurcation whose daughter ends at term.
func split(t testing.TB, n *tree.Network, at tree.ID, term r3.Vec) tree.Junction {
	t.Helper()
	p := hemo.DefaultParams()
	v := n.At(at)
	j := v.Segment().Midpoint()
	mid := (v.PressureIn + v.PressureOut) / 2

	parent := tree.NewVessel(v.Inlet, j, v.Flow+p.TerminalFlow, v.PressureIn, mid)
	son := tree.NewVessel(j, v.Outlet, v.Flow, mid, v.PressureOut)
	daughter := tree.NewVessel(j, term, p.TerminalFlow, mid, p.TerminalPressure)
	parent.Radius, son.Radius, daughter.Radius = 2, 1, 1

	jn, err := n.Splice(at, parent, son, daughter)
	require.NoError(t, err)

	return jn
}

// sample builds 0→{1,2}, 1→{3,4}, 2→{5,6}.
func sample(t testing.TB) *tree.Network {
	t.Helper()
	n, err := tree.NewNetwork(r3.Vec{}, r3.Vec{Z: 10}, hemo.DefaultParams())
	require.NoError(t, err)
	split(t, n, 0, r3.Vec{X: 8, Z: 4})
	split(t, n, 1, r3.Vec{X: -6, Z: 9})
	split(t, n, 2, r3.Vec{X: 9, Y: 3, Z: 6})

	return n
}

func TestWalk_Errors(t *testing.T) {
	_, err := dfs.Walk(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrNetworkNil)

	_, err = dfs.Walk(sample(t), -3)
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestWalk_PostOrder(t *testing.T) {
	n := sample(t)
	var pre []tree.ID

	res, err := dfs.Walk(n, n.Root(), dfs.WithOnVisit(func(id tree.ID) error {
		pre = append(pre, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []tree.ID{0, 1, 3, 4, 2, 5, 6}, pre)
	assert.Equal(t, []tree.ID{3, 4, 1, 5, 6, 2, 0}, res.Order)
	assert.Equal(t, 2, res.Depth[4])
	assert.Equal(t, tree.ID(1), res.Parent[3])
	assert.Len(t, res.Visited, 7)
}

func TestWalk_ChildrenFinishBeforeParent(t *testing.T) {
	n := sample(t)
	done := map[tree.ID]bool{}

	_, err := dfs.Walk(n, n.Root(), dfs.WithOnExit(func(id tree.ID) error {
		v := n.At(id)
		if v.IsParent() && !(done[v.Son] && done[v.Daughter]) {
			return errors.New("parent before children")
		}
		done[id] = true
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, done, n.Len())
}

func TestWalk_Subtree(t *testing.T) {
	n := sample(t)

	res, err := dfs.Walk(n, 2)
	require.NoError(t, err)
	assert.Equal(t, []tree.ID{5, 6, 2}, res.Order)
	assert.Equal(t, 1, res.Depth[5])
	assert.False(t, res.Visited[1])
}

func TestWalk_HookErrors(t *testing.T) {
	n := sample(t)
	boom := errors.New("boom")

	res, err := dfs.Walk(n, 0, dfs.WithOnExit(func(id tree.ID) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "vessel 1")
	assert.Empty(t, res.Order)

	_, err = dfs.Walk(n, 0, dfs.WithOnVisit(func(tree.ID) error { return boom }))
	assert.ErrorIs(t, err, boom)
}
