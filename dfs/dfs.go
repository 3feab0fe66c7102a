package dfs

import (
	"fmt"

	"github.com/katalvlaran/cco/tree"
)

// walker encapsulates state during a depth-first walk.
type walker struct {
	net  *tree.Network
	opts Options
	res  *Result
}

// Walk performs a depth-first walk of the subtree of n rooted at start.
// Returns the Result, or an error if aborted by a hook; on abort the partial
// Result is returned alongside the error.
func Walk(n *tree.Network, start tree.ID, opts ...Option) (*Result, error) {
	// 1. Validate input
	if n == nil {
		return nil, ErrNetworkNil
	}
	if _, ok := n.Lookup(start); !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result with capacity hint
	size := n.Len()
	res := &Result{
		Order:   make([]tree.ID, 0, size),
		Depth:   make(map[tree.ID]int, size),
		Parent:  make(map[tree.ID]tree.ID, size),
		Visited: make(map[tree.ID]bool, size),
	}
	w := &walker{net: n, opts: o, res: res}

	// 4. Traverse
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vessel id at the given depth, recursing son then daughter.
func (w *walker) traverse(id tree.ID, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for vessel %d: %w", id, err)
		}
	}

	// 3. Explore children
	v := w.net.At(id)
	if v.IsParent() {
		for _, child := range [2]tree.ID{v.Son, v.Daughter} {
			w.res.Parent[child] = id
			if err := w.traverse(child, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for vessel %d: %w", id, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
