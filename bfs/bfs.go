package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cco/tree"
)

// queueItem pairs a vessel ID with its generation.
type queueItem struct {
	id    tree.ID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net   *tree.Network
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Walk runs a breadth-first walk of the subtree rooted at start.
// Returns ErrNetworkNil or ErrStartVesselNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Walk(n *tree.Network, start tree.ID, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := n.Lookup(start); !ok {
		return nil, ErrStartVesselNotFound
	}

	size := n.Len()
	w := &walker{
		net:   n,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, size),
		res: &Result{
			Order:  make([]tree.ID, 0, size),
			Depth:  make(map[tree.ID]int, size),
			Parent: make(map[tree.ID]tree.ID, size),
		},
	}

	w.enqueue(start, 0, tree.None)

	return w.res, w.loop()
}

// enqueue records depth and parent of id and queues it.
func (w *walker) enqueue(id tree.ID, d int, parent tree.ID) {
	w.res.Depth[id] = d
	if parent != tree.None {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vessel in Order and Levels and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if item.depth == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[item.depth] = append(w.res.Levels[item.depth], item.id)

	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at vessel %d: %w", item.id, err)
	}

	return nil
}

// enqueueChildren queues son then daughter, honoring MaxDepth.
// A tree has no cross edges, so no visited set is needed.
func (w *walker) enqueueChildren(item queueItem) {
	v := w.net.At(item.id)
	if !v.IsParent() {
		return
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, child := range [2]tree.ID{v.Son, v.Daughter} {
		w.enqueue(child, next, item.id)
	}
}
