package bfs

import "github.com/katalvlaran/graphtraversal/core"

// RootNode is the node every connectivity check starts from.
const RootNode core.NodeID = 1

// IsConnected reports whether every node of g is reachable from node 1
// along directed edges.
//
// The notion is deliberately asymmetric: a node that can reach 1 but is not
// reached from 1 makes the graph disconnected. A nil or empty graph is not
// connected since node 1 does not exist.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) bool {
	if g == nil || g.Order() == 0 {
		return false
	}

	return Walk(g, RootNode).Count() == g.Order()
}

// Reachable collects every node reachable from start in breadth-first order,
// start included. WithMaxDepth and WithFilterNeighbor narrow the walk.
// Empty when start is not a node of g or an option is invalid.
func Reachable(g *core.Graph, start core.NodeID, opts ...Option) []core.NodeID {
	o, err := resolve(opts)
	if err != nil {
		return nil
	}
	var out []core.NodeID
	for id := range newWalker(g, start, o).All() {
		out = append(out, id)
	}

	return out
}
