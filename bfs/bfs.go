// File: bfs.go
// Role: breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and neighbor filtering.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// Validate start node
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &BFSResult{
		Order:  make([]core.NodeID, 0, n),
		Depth:  make(map[core.NodeID]int, n),
		Parent: make(map[core.NodeID]core.NodeID, n),
	}

	w := newWalker(g, start, o)
	for item, ok := w.step(); ok; item, ok = w.step() {
		res.Order = append(res.Order, item.id)
		res.Depth[item.id] = item.depth
		if item.hasParent {
			res.Parent[item.id] = item.parent
		}
		if err = o.onVisit(item.id, item.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
	}

	return res, nil
}
