package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/bfs"
	"github.com/katalvlaran/graphtraversal/core"
)

// ExampleWalk drains a lazy breadth-first walk and checks directed connectivity.
func ExampleWalk() {
	g, _ := core.FromAdjacency(map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 1}, {To: 3, Weight: 1}},
		2: {{To: 4, Weight: 1}},
		4: {{To: 1, Weight: 1}},
	})

	var order []core.NodeID
	for id := range bfs.Walk(g, 1).All() {
		order = append(order, id)
	}
	fmt.Println("order:", order)
	fmt.Println("connected from 1:", bfs.IsConnected(g))
	fmt.Println("reachable from 3:", bfs.Reachable(g, 3))

	// Output:
	// order: [1 2 3 4]
	// connected from 1: true
	// reachable from 3: [3]
}
