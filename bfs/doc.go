// Package bfs provides breadth-first traversal over a core.Graph and the
// directed connectivity check built on it.
//
// What
//
//   - Walk(g, start) returns a lazy Walker: Next() yields nodes one at a time
//     in breadth-first order following edges from→to only. Every node is
//     marked explored once, so the sequence length equals the number of nodes
//     reachable from start. The sequence is finite and non-restartable;
//     All() adapts it to range-over-func.
//   - IsConnected(g) reports Walk(g, 1).Count() == g.Order(): connectivity
//     means every node is reachable from node 1. It is not symmetric.
//   - BFS(g, start, opts...) materializes a BFSResult (Order, Depth, Parent)
//     with a visit hook, depth limiting and neighbor filtering.
//   - Reachable(g, start, opts...) lists the reached nodes; it takes the same
//     depth limit and filter.
//
// Determinism
//
//	core.Graph keeps each edge list sorted by target, and neighbors are
//	enqueued in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, explored set, Depth and Parent maps.
//
// Usage
//
//	w := bfs.Walk(g, 1)
//	for id, ok := w.Next(); ok; id, ok = w.Next() {
//		// ...
//	}
//
//	if !bfs.IsConnected(g) {
//		// some node is not reachable from node 1
//	}
//
//	res, err := bfs.BFS(g, 1,
//		bfs.WithMaxDepth(3),
//		bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool { return nbr != 7 }),
//		bfs.WithOnVisit(func(id core.NodeID, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped errors returned by the WithOnVisit hook.
package bfs
