package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cco/tree"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVesselNotFound is returned when the start ID is absent.
	ErrStartVesselNotFound = errors.New("bfs: start vessel not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vessel. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(id tree.ID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this generation.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op visit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(tree.ID, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(id tree.ID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given generation.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a walk.
type Result struct {
	Order  []tree.ID
	Depth  map[tree.ID]int
	Parent map[tree.ID]tree.ID
	Levels [][]tree.ID
}

// Height returns the number of generations reached (0 for an empty result).
func (r *Result) Height() int {
	return len(r.Levels)
}

// PathTo reconstructs the vessel chain from the start vessel to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest tree.ID) ([]tree.ID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to vessel %d", dest)
	}
	// build reversed path
	path := []tree.ID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
