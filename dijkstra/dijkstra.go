// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: implements Dijkstra's shortest-path algorithm on a
// core.Graph with positive integer weights.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V extractions from the heap.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - Weights are guaranteed positive by core.Graph, so no pre-scan is needed.
//   - Stale heap entries are skipped on pop instead of being decreased in place.
//   - Heap ties are broken by node id ascending, so Prev is deterministic.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// Dijkstra computes shortest distances from start to every node of g.
//
// Every node begins Unreachable except start, which is Finite(0). The node
// with the smallest tentative distance is finalized and its outgoing edges
// relaxed: candidate = dist[u] + w replaces dist[v] when strictly smaller.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrVertexNotFound).
//
// An edge whose sum overflows int64 never improves a distance and is skipped.
// Only a node reachable solely through such sums fails the run with
// ErrDistanceOverflow, since no int64 can hold its distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start core.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}

	n := g.Order()
	r := &runner{
		g:       g,
		source:  start,
		dist:    make(map[core.NodeID]Distance, n),
		prev:    make(map[core.NodeID]core.NodeID, n),
		visited: make(map[core.NodeID]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if err := r.checkOverflow(); err != nil {
		return nil, err
	}

	return &Result{Source: start, Dist: r.dist, Prev: r.prev}, nil
}

// Distances is Dijkstra without the predecessor map.
func Distances(g *core.Graph, start core.NodeID) (map[core.NodeID]Distance, error) {
	res, err := Dijkstra(g, start)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph                 // read-only within Dijkstra
	source  core.NodeID                 // start node
	dist    map[core.NodeID]Distance    // current best distance from source
	prev    map[core.NodeID]core.NodeID // predecessor on the best path
	visited map[core.NodeID]bool        // distance finalized
	pq      nodePQ                      // lazy min-heap

	// overflow[v] is the first edge source whose sum into v overflowed
	overflow map[core.NodeID]core.NodeID
}

// init marks every node Unreachable, sets the source to 0 and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = Unreachable()
	}
	r.dist[r.source] = Finite(0)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process pops the closest unfinalized node until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			// stale entry
			continue
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every target of u's outgoing edges.
// Assumes r.dist[u] is final.
func (r *runner) relax(u core.NodeID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		if r.visited[e.To] {
			continue
		}
		candidate, ok := r.dist[u].Add(e.Weight)
		if !ok {
			// longer than any finite distance, so never an improvement
			if _, seen := r.overflow[e.To]; !seen {
				if r.overflow == nil {
					r.overflow = make(map[core.NodeID]core.NodeID)
				}
				r.overflow[e.To] = u
			}
			continue
		}
		if !candidate.Less(r.dist[e.To]) {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		d, _ := candidate.Value()
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: d})
	}

	return nil
}

// checkOverflow fails for the smallest node that only overflowing sums reach.
func (r *runner) checkOverflow() error {
	if len(r.overflow) == 0 {
		return nil
	}
	for _, v := range r.g.Nodes() {
		u, ok := r.overflow[v]
		if ok && !r.dist[v].IsFinite() {
			return fmt.Errorf("%w: node %d is only reached through %d", ErrDistanceOverflow, v, u)
		}
	}

	return nil
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, smaller id on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the underlying slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
