// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors from literal adjacency plus read-only getters.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a graph from a literal node → edges mapping.
//
// The node count N is the largest id appearing as a key or as an edge target,
// so nodes missing from adj still exist with an empty edge list. Edges are
// inserted in ascending source order and validated exactly like AddEdge.
//
// Errors:
//   - ErrNodeNotFound for keys or targets below 1.
//   - Any AddEdge error (ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
//
// Complexity: O(V + E log E).
func FromAdjacency(adj map[NodeID][]Edge, opts ...GraphOption) (*Graph, error) {
	n := 0
	sources := make([]NodeID, 0, len(adj))
	for from, edges := range adj {
		if from < 1 {
			return nil, fmt.Errorf("FromAdjacency: source %d: %w", from, ErrNodeNotFound)
		}
		sources = append(sources, from)
		n = max(n, int(from))
		for _, e := range edges {
			if e.To < 1 {
				return nil, fmt.Errorf("FromAdjacency: edge %d→%d: %w", from, e.To, ErrNodeNotFound)
			}
			n = max(n, int(e.To))
		}
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, from := range sources {
		for _, e := range adj[from] {
			if err = g.AddEdge(from, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("FromAdjacency: %w", err)
			}
		}
	}

	return g, nil
}

// Order reports the number of nodes N.
// Complexity: O(1).
func (g *Graph) Order() int {
	return g.order
}

// Size reports the total number of edges across all nodes.
// Complexity: O(1); takes the read lock.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// HasNode reports whether v lies in [1, N].
// Complexity: O(1).
func (g *Graph) HasNode(v NodeID) bool {
	return v >= 1 && int(v) <= g.order
}

// Nodes returns every node id in ascending order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	nodes := make([]NodeID, g.order)
	for i := range nodes {
		nodes[i] = NodeID(i + 1)
	}

	return nodes
}
