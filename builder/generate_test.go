package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtraversal/bfs"
	"github.com/katalvlaran/graphtraversal/builder"
	"github.com/katalvlaran/graphtraversal/core"
)

// requireGenerated checks every structural guarantee of Generate.
func requireGenerated(t *testing.T, g *core.Graph, n, s int, minW, maxW int64) {
	t.Helper()

	require.Equal(t, n, g.Order(), "node count")
	require.Equal(t, s, g.Size(), "edge count")
	require.True(t, bfs.IsConnected(g), "connected from node 1")

	total := 0
	for _, v := range g.Nodes() {
		edges, err := g.Neighbors(v)
		require.NoError(t, err)
		targets := make(map[core.NodeID]bool, len(edges))
		for i, e := range edges {
			assert.NotEqual(t, v, e.To, "self-loop at %d", v)
			assert.False(t, targets[e.To], "duplicate edge %d→%d", v, e.To)
			targets[e.To] = true
			assert.True(t, e.Weight >= minW && e.Weight <= maxW, "weight %d out of range on %d→%d", e.Weight, v, e.To)
			if i > 0 {
				assert.Less(t, edges[i-1].To, e.To, "edge list of %d not sorted", v)
			}
		}
		total += len(edges)
	}
	require.Equal(t, s, total)
}

func TestGenerate_Guarantees(t *testing.T) {
	cases := []struct{ n, s int }{
		{1, 0},
		{2, 1},
		{2, 2},
		{5, 4},
		{5, 10},
		{6, 30},   // complete digraph
		{100, 99}, // chain only
		{100, 200},
		{50, 1000},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("N=%d,S=%d", tc.n, tc.s), func(t *testing.T) {
			g, err := builder.Generate(tc.n, tc.s, builder.WithSeed(int64(tc.n*1000+tc.s)))
			require.NoError(t, err)
			requireGenerated(t, g, tc.n, tc.s, builder.DefaultMinWeight, builder.DefaultMaxWeight)
		})
	}
}

func TestGenerate_ChainIsPresent(t *testing.T) {
	g, err := builder.Generate(20, 60, builder.WithSeed(3))
	require.NoError(t, err)
	for i := 1; i < 20; i++ {
		assert.True(t, g.HasEdge(core.NodeID(i), core.NodeID(i+1)), "chain edge %d→%d", i, i+1)
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	g1, err := builder.Generate(30, 90, builder.WithSeed(2024))
	require.NoError(t, err)
	g2, err := builder.Generate(30, 90, builder.WithSeed(2024))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	g3, err := builder.Generate(30, 90, builder.WithSeed(2025))
	require.NoError(t, err)
	assert.NotEqual(t, g1.Edges(), g3.Edges())
}

func TestGenerate_CustomWeights(t *testing.T) {
	g, err := builder.Generate(10, 40,
		builder.WithRand(rand.New(rand.NewSource(9))),
		builder.WithUniformWeight(100, 200),
	)
	require.NoError(t, err)
	requireGenerated(t, g, 10, 40, 100, 200)

	// a weight function yielding zero is rejected by the graph
	_, err = builder.Generate(4, 5, builder.WithSeed(1), builder.WithWeightFn(func(*rand.Rand) int64 { return 0 }))
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGenerate_InvalidParameters(t *testing.T) {
	cases := []struct {
		name string
		n, s int
		msg  string
	}{
		{"too few edges", 5, 3, "Generate: N=5, S=3: need at least 4 edges: builder: invalid parameter"},
		{"no nodes", 0, 0, "Generate: N=0, S=0: need at least 1 node: builder: invalid parameter"},
		{"negative nodes", -2, 0, "Generate: N=-2, S=0: need at least 1 node: builder: invalid parameter"},
		{"too many edges", 3, 7, "Generate: N=3, S=7: at most 6 edges fit without loops or duplicates: builder: invalid parameter"},
		{"single node with an edge", 1, 1, "Generate: N=1, S=1: at most 0 edges fit without loops or duplicates: builder: invalid parameter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Generate(tc.n, tc.s, builder.WithSeed(1))
			require.ErrorIs(t, err, builder.ErrInvalidParameter)
			assert.EqualError(t, err, tc.msg)
			assert.Nil(t, g)
		})
	}
}

func TestValidateParameters(t *testing.T) {
	assert.NoError(t, builder.ValidateParameters(1, 0))
	assert.NoError(t, builder.ValidateParameters(5, 4))
	assert.NoError(t, builder.ValidateParameters(5, 20))
	assert.ErrorIs(t, builder.ValidateParameters(5, 21), builder.ErrInvalidParameter)
	assert.ErrorIs(t, builder.ValidateParameters(10, 8), builder.ErrInvalidParameter)
}

func TestBuildGraph_Constructors(t *testing.T) {
	// chain only, constant weights
	g, err := builder.BuildGraph(4, nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Chain(4))
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeRecord{
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 2},
	}, g.Edges())

	// random edges need a source of randomness
	_, err = builder.BuildGraph(4, nil, nil, builder.RandomEdges(2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// zero random edges is a no-op even without rng
	g, err = builder.BuildGraph(3, nil, nil, builder.RandomEdges(0))
	require.NoError(t, err)
	assert.Zero(t, g.Size())

	// capacity is checked before sampling
	_, err = builder.BuildGraph(3, nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Chain(3), builder.RandomEdges(5))
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	// chain longer than the graph
	_, err = builder.BuildGraph(2, nil, nil, builder.Chain(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// nil constructor
	_, err = builder.BuildGraph(2, nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// negative node count
	_, err = builder.BuildGraph(-1, nil, nil)
	require.ErrorIs(t, err, core.ErrBadNodeCount)
}
