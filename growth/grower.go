package growth

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cco/balance"
	"github.com/katalvlaran/cco/bfs"
	"github.com/katalvlaran/cco/bifurcation"
	"github.com/katalvlaran/cco/geom"
	"github.com/katalvlaran/cco/hemo"
	"github.com/katalvlaran/cco/tree"
)

// Grower owns a network for the duration of a growth session.
type Grower struct {
	net    *tree.Network
	params hemo.Params
	opts   Options
	log    *zap.Logger
}

// New wraps an existing network. The network is used as is; call Rebalance
// if it was not produced by a Grower.
func New(n *tree.Network, p hemo.Params, opts ...Option) (*Grower, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Grower{net: n, params: p, opts: o, log: o.Logger}, nil
}

// Seed starts a session from a single root vessel inlet → outlet. Its radius
// is fixed by the entry and terminal pressures alone, so it is kept as built;
// the minimum radius is enforced from the first insertion on.
func Seed(inlet, outlet r3.Vec, p hemo.Params, opts ...Option) (*Grower, error) {
	n, err := tree.NewNetwork(inlet, outlet, p)
	if err != nil {
		return nil, err
	}

	return New(n, p, opts...)
}

// Build seeds a root from inlet to the first terminal and inserts the rest
// in order. N terminals yield 2N−1 vessels.
func Build(ctx context.Context, inlet r3.Vec, terminals []r3.Vec, p hemo.Params, opts ...Option) (*Grower, error) {
	if len(terminals) == 0 {
		return nil, ErrNoTerminals
	}
	g, err := Seed(inlet, terminals[0], p, opts...)
	if err != nil {
		return nil, err
	}
	if err = g.Grow(ctx, terminals[1:]); err != nil {
		return g, err
	}

	return g, nil
}

// Network returns the grown network. Callers must not mutate it while the
// Grower is in use.
func (g *Grower) Network() *tree.Network { return g.net }

// Params returns the session constants.
func (g *Grower) Params() hemo.Params { return g.params }

// Grow inserts terminals in order, stopping at the first error or when ctx
// is done. Insertions completed before the error are kept.
func (g *Grower) Grow(ctx context.Context, terminals []r3.Vec) error {
	for i, t := range terminals {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("growth: after %d of %d terminals: %w", i, len(terminals), err)
		}
		if _, err := g.Insert(t); err != nil {
			return fmt.Errorf("growth: terminal %d: %w", i, err)
		}
	}
	g.log.Info("growth finished",
		zap.Int("terminals", len(terminals)),
		zap.Int("vessels", g.net.Len()),
		zap.Float64("volume", g.net.TotalVolume()),
	)

	return nil
}

// Insert attaches one terminal and rebalances the tree.
//
// Errors (the network is restored on every error):
//   - geom.ErrNonFinitePoint     if terminal is NaN/Inf.
//   - geom.ErrDegenerateSegment  if terminal coincides with a vessel endpoint.
//   - balance.ErrRadiusBelowMinimum if the pressure budget cannot be met
//     without narrowing a vessel below the minimum radius.
//   - any balance sentinel when auditing is enabled and fails.
func (g *Grower) Insert(terminal r3.Vec) (Report, error) {
	if !geom.Finite(terminal) {
		return Report{}, fmt.Errorf("growth: insert: %w", geom.ErrNonFinitePoint)
	}
	snapshot := g.net.Clone()
	rep, err := g.insert(terminal)
	if err != nil {
		g.net.Restore(snapshot)
		g.log.Debug("insertion rolled back", zap.Error(err))

		return Report{}, fmt.Errorf("growth: insert (%g, %g, %g): %w", terminal.X, terminal.Y, terminal.Z, err)
	}

	return rep, nil
}

func (g *Grower) insert(terminal r3.Vec) (Report, error) {
	rep := Report{Terminal: terminal}

	// 1) Nearest vessel
	at, d, err := g.net.Nearest(terminal)
	if err != nil {
		return rep, err
	}
	rep.Attached, rep.Distance = at, d
	g.log.Debug("nearest vessel", zap.Int("vessel", int(at)), zap.Float64("distance", d))

	// 2) Bifurcation and local optimisation
	b, err := bifurcation.New(g.net, at, terminal, g.params)
	if err != nil {
		return rep, err
	}
	rep.Bifurcation, err = b.Optimize(
		bifurcation.WithMaxIterations(g.opts.MaxIterations),
		bifurcation.WithTolerance(g.opts.Tolerance),
		bifurcation.WithPenalty(g.opts.Penalty),
		bifurcation.WithMethod(g.opts.Method),
	)
	if err != nil {
		return rep, err
	}
	if rep.Bifurcation.Degraded {
		g.log.Warn("no feasible junction, keeping initial estimate",
			zap.Int("vessel", int(at)),
			zap.Stringer("method", rep.Bifurcation.Method),
			zap.Int("evaluations", rep.Bifurcation.Evaluations),
		)
	}

	// 3) Splice
	if rep.Junction, err = g.net.Splice(at, b.Parent, b.Son, b.Daughter); err != nil {
		return rep, err
	}

	// 4) Root-to-terminal path
	if rep.Path, err = g.pathTo(rep.Junction.Daughter); err != nil {
		return rep, err
	}

	// 5) Whole-tree radii, pressures and global scale
	if rep.ScaleFactor, err = g.Rebalance(); err != nil {
		return rep, err
	}

	// 6) Audit
	if g.opts.Verify {
		if err = balance.Verify(g.net, g.params, g.opts.VerifyTolerance); err != nil {
			return rep, err
		}
	}
	rep.Vessels = g.net.Len()

	g.log.Info("terminal inserted",
		zap.Int("vessels", rep.Vessels),
		zap.Int("attached", int(at)),
		zap.Int("generation", len(rep.Path)-1),
		zap.Float64("junction_volume", rep.Bifurcation.Volume),
		zap.Float64("scale", rep.ScaleFactor),
		zap.Bool("degraded", rep.Bifurcation.Degraded),
	)

	return rep, nil
}

// pathTo returns the vessels from the root to id.
func (g *Grower) pathTo(id tree.ID) ([]tree.ID, error) {
	res, err := bfs.Walk(g.net, g.net.Root())
	if err != nil {
		return nil, err
	}

	return res.PathTo(id)
}

// Rebalance runs the bottom-up radius/pressure pass over the whole tree and
// rescales it onto the entry pressure, returning the applied factor.
// It mutates the network even when the rescale fails; Insert restores it.
func (g *Grower) Rebalance() (float64, error) {
	if err := balance.OptimizeSubtree(g.net, g.net.Root(), g.params); err != nil {
		return 0, err
	}
	s, err := balance.Rescale(g.net, g.params)
	if err != nil {
		return s, err
	}
	g.log.Debug("global rescale", zap.Float64("factor", s))

	return s, nil
}

// Stats summarises the current tree; Generations is the depth of the
// deepest vessel plus one.
func (g *Grower) Stats() (Stats, error) {
	res, err := bfs.Walk(g.net, g.net.Root())
	if err != nil {
		return Stats{}, err
	}
	root := g.net.At(g.net.Root())

	return Stats{
		Vessels:     g.net.Len(),
		Terminals:   len(g.net.Leaves()),
		Generations: res.Height(),
		Volume:      g.net.TotalVolume(),
		RootRadius:  root.Radius,
		RootFlow:    root.Flow,
	}, nil
}
