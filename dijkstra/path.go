package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// Path returns the node sequence of one shortest path from start to end,
// both included. When end is unreachable the result is nil with no error.
//
// Errors: ErrNilGraph, ErrVertexNotFound (start or end), ErrDistanceOverflow.
// Complexity: O((V + E) log V) for the run, O(path) for the walk back.
func Path(g *core.Graph, start, end core.NodeID) ([]core.NodeID, error) {
	res, err := Dijkstra(g, start)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %d", ErrVertexNotFound, end)
	}

	return res.PathTo(end), nil
}

// PathTo walks Prev back from end and reverses the walk. It returns nil when
// the walk does not arrive at Source, which is the case exactly when end is
// unreachable or not a node.
func (r *Result) PathTo(end core.NodeID) []core.NodeID {
	var path []core.NodeID
	for cur, ok := end, true; ok; cur, ok = r.Prev[cur] {
		path = append(path, cur)
		if len(path) > len(r.Dist) {
			// cycle in a hand-built Prev
			return nil
		}
	}
	if path[len(path)-1] != r.Source {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DistanceTo returns Dist[end]; ids outside the graph read as Unreachable.
func (r *Result) DistanceTo(end core.NodeID) Distance {
	return r.Dist[end]
}
