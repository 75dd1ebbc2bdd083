// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
	"github.com/katalvlaran/graphtraversal/dijkstra"
)

// ExampleDijkstra computes all distances from node 1 and rebuilds a path.
func ExampleDijkstra() {
	g, _ := core.FromAdjacency(map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 1}},
		2: {{To: 3, Weight: 9}, {To: 5, Weight: 30}},
		3: {{To: 4, Weight: 4}},
		4: {{To: 5, Weight: 9}},
		6: {{To: 1, Weight: 2}},
	})

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range g.Nodes() {
		fmt.Printf("dist[%d]=%s\n", v, res.Dist[v])
	}
	fmt.Println("path to 5:", res.PathTo(5))
	fmt.Println("path to 6:", res.PathTo(6))

	// Output:
	// dist[1]=0
	// dist[2]=1
	// dist[3]=10
	// dist[4]=14
	// dist[5]=23
	// dist[6]=∞
	// path to 5: [1 2 3 4 5]
	// path to 6: []
}

// ExamplePath shows that an unreachable end yields an empty path, not an error.
func ExamplePath() {
	g, _ := core.FromAdjacency(map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 3}},
		3: {{To: 1, Weight: 1}},
	})

	p, err := dijkstra.Path(g, 3, 2)
	fmt.Println(p, err)
	p, err = dijkstra.Path(g, 1, 3)
	fmt.Println(len(p), err)

	// Output:
	// [3 1 2] <nil>
	// 0 <nil>
}
