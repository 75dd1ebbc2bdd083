// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on weighted directed graphs with positive integer weights.
//
// Overview:
//
//   - Dijkstra(g, start) computes the distance from start to every node and a
//     predecessor map, in O((V + E) log V) time with a binary heap.
//   - Distances are tagged values (Finite(n) or Unreachable()), so callers never
//     compare against a magic "infinity".
//   - Path(g, start, end) and Result.PathTo(end) rebuild one shortest path; an
//     unreachable end yields a nil path, not an error.
//
// Determinism:
//
//   - Heap ties are broken by the smaller node id, and edge lists are sorted by
//     target, so the predecessor chosen among equal-length paths is stable.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         the graph pointer is nil.
//   - ErrVertexNotFound:   start (or end, for Path) is not a node of the graph.
//   - ErrDistanceOverflow: a path length exceeds math.MaxInt64.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, start core.NodeID) (*Result, error)
//	func Distances(g *core.Graph, start core.NodeID) (map[core.NodeID]Distance, error)
//	func Path(g *core.Graph, start, end core.NodeID) ([]core.NodeID, error)
//
// Thread safety:
//
//   - Each call owns its maps and heap; concurrent calls on the same immutable
//     graph are safe.
package dijkstra
