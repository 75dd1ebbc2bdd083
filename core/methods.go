// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge lifecycle & queries: AddEdge, HasEdge, Weight, Neighbors, Edges.
// Determinism:
//   - Neighbors() returns edges sorted by Edge.To asc.
//   - Edges() visits sources asc, then targets asc.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// EdgeRecord is a flattened (from, to, weight) triple returned by Edges.
type EdgeRecord struct {
	From   NodeID
	To     NodeID
	Weight int64
}

// AddEdge inserts the directed edge from→to with the given weight, keeping
// the source's edge list sorted by target.
//
// Steps:
//  1. Validate endpoints, weight and loop policy.
//  2. Lock mu, binary-search the insert position in from's list.
//  3. Reject an existing (from,to) pair, otherwise splice the edge in.
//
// Complexity: O(deg(from)) for the splice, O(log deg(from)) for the search.
func (g *Graph) AddEdge(from, to NodeID, weight int64) error {
	if !g.HasNode(from) {
		return fmt.Errorf("AddEdge(%d→%d): source: %w", from, to, ErrNodeNotFound)
	}
	if !g.HasNode(to) {
		return fmt.Errorf("AddEdge(%d→%d): target: %w", from, to, ErrNodeNotFound)
	}
	if weight <= 0 {
		return fmt.Errorf("AddEdge(%d→%d, w=%d): %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	list := g.adjacency[from-1]
	i := sort.Search(len(list), func(k int) bool { return list[k].To >= to })
	if i < len(list) && list[i].To == to {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	list = append(list, Edge{})
	copy(list[i+1:], list[i:])
	list[i] = Edge{To: to, Weight: weight}
	g.adjacency[from-1] = list
	g.size++

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(log deg(from)).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Weight returns the weight of from→to and whether that edge exists.
// Complexity: O(log deg(from)).
func (g *Graph) Weight(from, to NodeID) (int64, bool) {
	if !g.HasNode(from) {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adjacency[from-1]
	i := sort.Search(len(list), func(k int) bool { return list[k].To >= to })
	if i < len(list) && list[i].To == to {
		return list[i].Weight, true
	}

	return 0, false
}

// Neighbors returns a copy of v's outgoing edges, sorted by target.
// Returns ErrNodeNotFound if v is outside [1, N].
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v NodeID) ([]Edge, error) {
	if !g.HasNode(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrNodeNotFound)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[v-1]))
	copy(out, g.adjacency[v-1])

	return out, nil
}

// OutDegree returns the number of outgoing edges of v (0 for unknown nodes).
func (g *Graph) OutDegree(v NodeID) int {
	if !g.HasNode(v) {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v-1])
}

// Edges returns every edge as a flat record, sources ascending, then targets ascending.
// Complexity: O(V + E).
func (g *Graph) Edges() []EdgeRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeRecord, 0, g.size)
	for i, list := range g.adjacency {
		for _, e := range list {
			out = append(out, EdgeRecord{From: NodeID(i + 1), To: e.To, Weight: e.Weight})
		}
	}

	return out
}
