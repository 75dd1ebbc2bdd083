// File: types.go
// Role: sentinel errors, traversal options and the materialized BFSResult.
// Options are shared by BFS and Reachable; the plain Walk uses none.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes one traversal. A meaningless value is not a panic: it is
// remembered and reported as ErrOptionViolation when the traversal starts.
type Option func(*options)

// options is the resolved traversal configuration.
type options struct {
	// maxDepth 0 means unlimited
	maxDepth int
	follow   func(curr, next core.NodeID) bool
	onVisit  func(id core.NodeID, depth int) error
	err      error
}

// resolve applies opts over the defaults: no depth limit, every edge
// followed, no visit hook.
func resolve(opts []Option) (options, error) {
	o := options{
		follow:  func(_, _ core.NodeID) bool { return true },
		onVisit: func(core.NodeID, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithMaxDepth stops expanding nodes at hop distance d. Zero means no
// limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor follows the edge curr→next only when fn returns true.
// A nil fn keeps every edge.
func WithFilterNeighbor(fn func(curr, next core.NodeID) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.follow = fn
		}
	}
}

// WithOnVisit calls fn for each node as BFS dequeues it; an error aborts
// the search and is returned wrapped. Reachable ignores this hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// BFSResult is a finished traversal. Order is the visit sequence, Depth the
// hop distance of each visited node and Parent its predecessor in the BFS
// tree (the start has none).
type BFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// PathTo returns the fewest-hop path from the start to dest, both included.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	depth, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]core.NodeID, depth+1)
	for i, cur := depth, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
