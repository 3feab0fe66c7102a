package bifurcation

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r3"
)

// infeasible is the objective value of a junction that cannot be evaluated.
const infeasible = math.MaxFloat64

// tracker keeps the best strictly feasible candidate seen by an optimiser.
type tracker struct {
	b     *Bifurcation
	best  candidate
	found bool
	evals int
}

func newTracker(b *Bifurcation) *tracker {
	t := &tracker{b: b}
	t.observe(b.initial, nil)

	return t
}

// eval evaluates x, records it and returns the candidate.
func (t *tracker) eval(x r3.Vec) (candidate, error) {
	t.evals++
	c, err := t.b.evaluate(x)
	t.observe(c, err)

	return c, err
}

func (t *tracker) observe(c candidate, err error) {
	if err != nil || !c.feasible() {
		return
	}
	if !t.found || c.volume < t.best.volume {
		t.best, t.found = c, true
	}
}

// Optimize minimises the bifurcation volume over the junction position and
// commits the best strictly feasible junction found, or keeps the initial
// junction with Result.Degraded set when none was feasible.
//
// Only ErrOptionViolation is returned as an error: solver failures and
// non-convergence are absorbed by the fallback.
func (b *Bifurcation) Optimize(opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	t := newTracker(b)
	res := Result{Baseline: b.Baseline, Method: o.Method}

	switch o.Method {
	case Centroid:
		res.Iterations, res.Status = b.centroid(t, o)
	default:
		res.Iterations, res.Status = b.nelderMead(t, o)
	}
	res.Evaluations = t.evals

	// Commit best feasible, else the initial estimate
	if t.found {
		b.commit(t.best)
	} else {
		b.commit(b.initial)
		res.Degraded = true
	}
	res.Junction = b.Junction()
	res.Volume = b.Volume()

	return res, nil
}

// nelderMead runs gonum's simplex on volume + ρ·violation with
// ρ = Penalty·π·r², r the attachment vessel radius.
func (b *Bifurcation) nelderMead(t *tracker, o Options) (int, optimize.Status) {
	rho := o.Penalty * math.Pi * b.Son.Radius * b.Son.Radius
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			c, err := t.eval(r3.Vec{X: x[0], Y: x[1], Z: x[2]})
			if err != nil {
				return infeasible
			}

			return c.volume + rho*c.violation
		},
	}

	// Initial simplex spans a tenth of the shortest initial segment.
	size := 0.1 * floats.Min(b.initial.length[:])
	x0 := b.initial.x
	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Relative:   o.Tolerance,
			Iterations: 10,
		},
	}
	method := &optimize.NelderMead{SimplexSize: size}

	result, err := optimize.Minimize(problem, []float64{x0.X, x0.Y, x0.Z}, settings, method)
	if result == nil {
		if err != nil {
			return 0, optimize.Failure
		}

		return 0, optimize.NotTerminated
	}

	return result.MajorIterations, result.Status
}

// centroid iterates J ← Σ wᵢ·pᵢ / Σ wᵢ with wᵢ = rᵢ²/lᵢ until the relative
// volume change drops under Tolerance.
func (b *Bifurcation) centroid(t *tracker, o Options) (int, optimize.Status) {
	ends := [3]r3.Vec{b.Parent.Inlet, b.Son.Outlet, b.Daughter.Outlet}
	cur := b.initial
	for it := 1; it <= o.MaxIterations; it++ {
		// 1) Weighted centroid of the far endpoints
		var sum r3.Vec
		var wsum float64
		for i, e := range ends {
			w := cur.radius[i] * cur.radius[i] / cur.length[i]
			sum = r3.Add(sum, r3.Scale(w, e))
			wsum += w
		}

		// 2) Re-derive the bifurcation at the new junction
		next, err := t.eval(r3.Scale(1/wsum, sum))
		if err != nil {
			return it, optimize.Failure
		}

		// 3) Convergence on relative volume change
		if math.Abs(next.volume-cur.volume) <= o.Tolerance*cur.volume {
			return it, optimize.FunctionConvergence
		}
		cur = next
	}

	return o.MaxIterations, optimize.IterationLimit
}
