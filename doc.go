// Package graphtraversal generates random connected weighted digraphs and
// answers shortest-path and distance-metric questions about them.
//
// What is inside?
//
//	core/       - Graph, NodeID and Edge: nodes 1..N, sorted outgoing edge lists
//	bfs/        - lazy breadth-first Walker, BFS with hooks, IsConnected / Reachable
//	builder/    - Generate(N, S): chain + random extra edges, always connected from node 1
//	dijkstra/   - single-source shortest paths with a tagged Distance (finite or ∞)
//	metrics/    - eccentricity, radius, diameter, center and periphery
//	cmd/graphtraversal - CLI printing a generated graph, one path and its metrics
//
// Quick example:
//
//	g, _ := builder.Generate(6, 10, builder.WithSeed(42))
//	path, _ := dijkstra.Path(g, 1, 6)
//	sum, _ := metrics.Summarize(g)
//	fmt.Println(path, sum.Radius, sum.Diameter)
//
// Every generated graph of N nodes holds the chain 1→2→…→N, so all nodes
// are reachable from node 1. Edge weights default to uniform integers in [1, 10].
//
//	go install github.com/katalvlaran/graphtraversal/cmd/graphtraversal@latest
package graphtraversal
