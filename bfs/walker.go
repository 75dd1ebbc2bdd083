package bfs

import (
	"iter"

	"github.com/katalvlaran/graphtraversal/core"
)

// queueItem pairs a node with its BFS depth and its parent.
type queueItem struct {
	id        core.NodeID
	depth     int
	parent    core.NodeID
	hasParent bool
}

// Walker is a lazy breadth-first visitation over directed edges.
//
// Each reachable node is yielded exactly once, in non-decreasing hop distance
// from the start. The sequence is finite and cannot be restarted: once Next
// reports false the Walker stays exhausted. A Walker is not safe for
// concurrent use.
type Walker struct {
	graph    *core.Graph
	opts     options
	queue    []queueItem
	explored map[core.NodeID]bool
}

// Walk returns a Walker positioned before start. A nil graph or a start
// node outside the graph yields an empty sequence.
// Complexity: O(1); the traversal cost O(V + E) is paid while draining.
func Walk(g *core.Graph, start core.NodeID) *Walker {
	o, _ := resolve(nil)
	return newWalker(g, start, o)
}

func newWalker(g *core.Graph, start core.NodeID, opts options) *Walker {
	w := &Walker{graph: g, opts: opts}
	if g == nil || !g.HasNode(start) {
		return w
	}
	w.queue = make([]queueItem, 0, g.Order())
	w.explored = make(map[core.NodeID]bool, g.Order())
	w.enqueue(queueItem{id: start})

	return w
}

// Next yields the next node in breadth-first order.
func (w *Walker) Next() (core.NodeID, bool) {
	item, ok := w.step()
	return item.id, ok
}

// All exposes the remaining nodes as a range-over-func sequence.
// It drains the same state as Next, so a second range sees nothing.
func (w *Walker) All() iter.Seq[core.NodeID] {
	return func(yield func(core.NodeID) bool) {
		for {
			id, ok := w.Next()
			if !ok || !yield(id) {
				return
			}
		}
	}
}

// Count drains the Walker and returns how many nodes it yielded.
func (w *Walker) Count() int {
	n := 0
	for _, ok := w.Next(); ok; _, ok = w.Next() {
		n++
	}

	return n
}

// enqueue marks the node explored and appends it to the queue.
func (w *Walker) enqueue(item queueItem) {
	w.explored[item.id] = true
	w.queue = append(w.queue, item)
}

// step pops the next item and enqueues its unexplored neighbors.
func (w *Walker) step() (queueItem, bool) {
	if len(w.queue) == 0 {
		return queueItem{}, false
	}
	item := w.queue[0]
	w.queue = w.queue[1:]

	nextDepth := item.depth + 1
	if w.opts.maxDepth > 0 && nextDepth > w.opts.maxDepth {
		return item, true
	}
	// the node is known to exist, Neighbors cannot fail here
	neighbors, _ := w.graph.Neighbors(item.id)
	for _, e := range neighbors {
		if w.explored[e.To] || !w.opts.follow(item.id, e.To) {
			continue
		}
		w.enqueue(queueItem{id: e.To, depth: nextDepth, parent: item.id, hasParent: true})
	}

	return item, true
}
