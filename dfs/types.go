package dfs

import (
	"errors"

	"github.com/katalvlaran/cco/tree"
)

var (
	// ErrNetworkNil is returned when a nil *tree.Network is passed to Walk.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrStartNotFound indicates that the start ID does not address a vessel.
	ErrStartNotFound = errors.New("dfs: start vessel not found")
)

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds the hooks of a depth-first walk.
// Complexity remains O(V) when hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vessel is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(id tree.ID) error

	// OnExit, if non-nil, is invoked after both children of a vessel have
	// been explored (post-order), before the vessel is appended to Order.
	// Returning an error aborts the walk and leaves Order empty.
	OnExit func(id tree.ID) error
}

// DefaultOptions returns Options with no pre-/post-order hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id tree.ID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id tree.ID) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// Result captures the outcome of a depth-first walk.
type Result struct {
	// Order records vessels in the sequence they finished (post-order).
	Order []tree.ID

	// Depth maps each vessel to its generation relative to the start.
	Depth map[tree.ID]int

	// Parent maps each vessel to the vessel it was reached from.
	// The start vessel does not appear in this map.
	Parent map[tree.ID]tree.ID

	// Visited flags which vessels were reached.
	Visited map[tree.ID]bool
}
