// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtraversal/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one source
// to distinct targets are safe and every edge appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 2; i <= num+1; i++ {
		go func(to core.NodeID) {
			defer wg.Done()
			errs <- g.AddEdge(1, to, int64(to))
		}(core.NodeID(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	for i := 1; i < len(nbs); i++ {
		require.Less(t, nbs[i-1].To, nbs[i].To, "neighbors must stay sorted under concurrent inserts")
	}
}

// TestConcurrentReaders validates concurrent reads do not race with a writer.
func TestConcurrentReaders(t *testing.T) {
	const n = 50
	g, err := core.NewGraph(n)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i < n; i++ {
			_ = g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = g.Edges()
			_, _ = g.Neighbors(1)
			_ = g.Size()
		}
	}()
	wg.Wait()
	require.Equal(t, n-1, g.Size())
}
