package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphtraversal/bfs"
	"github.com/katalvlaran/graphtraversal/builder"
)

// ExampleGenerate builds a seeded random graph and checks its guarantees.
func ExampleGenerate() {
	g, err := builder.Generate(8, 20, builder.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", g.Order())
	fmt.Println("edges:", g.Size())
	fmt.Println("connected:", bfs.IsConnected(g))

	_, err = builder.Generate(5, 3)
	fmt.Println(errors.Is(err, builder.ErrInvalidParameter))
	fmt.Println(err)

	// Output:
	// nodes: 8
	// edges: 20
	// connected: true
	// true
	// Generate: N=5, S=3: need at least 4 edges: builder: invalid parameter
}
