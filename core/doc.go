// Package core provides the in-memory weighted directed graph used by every
// other package: nodes are the integers 1..N, each node owns an outgoing edge
// list ordered by ascending target id.
//
// Model:
//
//   - Node identity is its integer value (NodeID); NewGraph(n) creates all of
//     1..n up front, so every node is present even with no outgoing edges.
//   - Edge{To, Weight} is a plain comparable value; the Graph owns its edges and
//     Neighbors() hands out copies.
//   - At most one edge per ordered pair (ErrMultiEdgeNotAllowed).
//   - Weights are positive int64 values (ErrBadWeight otherwise).
//   - Self-loops are rejected unless WithLoops() is given (ErrLoopNotAllowed).
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)         // O(n)
//	FromAdjacency(adj map[NodeID][]Edge, ...) (*Graph, error)    // O(V + E log E)
//	AddEdge(from, to NodeID, weight int64) error                 // O(deg(from))
//	HasEdge(from, to NodeID) bool                                // O(log deg(from))
//	Weight(from, to NodeID) (int64, bool)                        // O(log deg(from))
//	Neighbors(v NodeID) ([]Edge, error)                          // O(deg(v)), sorted by To
//	Nodes() []NodeID                                             // ascending
//	Edges() []EdgeRecord                                         // from asc, to asc
//	Order() int / Size() int                                     // node / edge count
//
// Concurrency:
//
//	A sync.RWMutex guards the adjacency lists, so a graph may be filled from
//	several goroutines. Once built, a Graph is treated as immutable by all
//	algorithm packages.
package core
