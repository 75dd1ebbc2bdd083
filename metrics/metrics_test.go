package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtraversal/builder"
	"github.com/katalvlaran/graphtraversal/core"
	"github.com/katalvlaran/graphtraversal/dijkstra"
	"github.com/katalvlaran/graphtraversal/metrics"
)

func mustGraph(t testing.TB, adj map[core.NodeID][]core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

// denseGraph: ecc = {1:19, 2:15, 3:10, 4:12, 5:14}.
func denseGraph(t testing.TB) *core.Graph {
	return mustGraph(t, map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 4}},
		2: {{To: 3, Weight: 5}},
		3: {{To: 1, Weight: 5}, {To: 2, Weight: 8}, {To: 4, Weight: 9}},
		4: {{To: 2, Weight: 6}, {To: 3, Weight: 8}, {To: 5, Weight: 1}},
		5: {{To: 3, Weight: 6}, {To: 4, Weight: 9}},
	})
}

// sinkGraph: node 5 reaches nothing; ecc = {1:10, 2:15, 3:9, 4:6, 5:0}.
func sinkGraph(t testing.TB) *core.Graph {
	return mustGraph(t, map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 1}, {To: 5, Weight: 10}},
		2: {{To: 3, Weight: 6}},
		3: {{To: 4, Weight: 3}, {To: 5, Weight: 9}},
		4: {{To: 5, Weight: 6}},
		5: {},
	})
}

func TestEccentricity(t *testing.T) {
	g := denseGraph(t)
	e, err := metrics.Eccentricity(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(19), e)

	all, err := metrics.Eccentricities(g)
	require.NoError(t, err)
	assert.Equal(t, map[core.NodeID]int64{1: 19, 2: 15, 3: 10, 4: 12, 5: 14}, all)
}

func TestEccentricity_UnreachableExcluded(t *testing.T) {
	g := sinkGraph(t)

	e, err := metrics.Eccentricity(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), e)

	// the sink reaches nothing
	e, err = metrics.Eccentricity(g, 5)
	require.NoError(t, err)
	assert.Zero(t, e)

	// 4 reaches only 5; 1, 2 and 3 do not count
	e, err = metrics.Eccentricity(g, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), e)
}

func TestRadiusDiameter(t *testing.T) {
	cases := []struct {
		name              string
		g                 *core.Graph
		radius, diameter  int64
		center, periphery []core.NodeID
	}{
		{"dense", denseGraph(t), 10, 19, []core.NodeID{3}, []core.NodeID{1}},
		{"sink ignored in radius", sinkGraph(t), 6, 15, []core.NodeID{4}, []core.NodeID{2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := metrics.Radius(tc.g)
			require.NoError(t, err)
			d, err := metrics.Diameter(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.radius, r)
			assert.Equal(t, tc.diameter, d)

			s, err := metrics.Summarize(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.radius, s.Radius)
			assert.Equal(t, tc.diameter, s.Diameter)
			assert.Equal(t, tc.center, s.Center)
			assert.Equal(t, tc.periphery, s.Periphery)
		})
	}
}

func TestSummarize_NoEdges(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	s, err := metrics.Summarize(g)
	require.NoError(t, err)
	assert.Zero(t, s.Radius)
	assert.Zero(t, s.Diameter)
	assert.Empty(t, s.Center)
	assert.Empty(t, s.Periphery)
	assert.Equal(t, map[core.NodeID]int64{1: 0, 2: 0, 3: 0}, s.Eccentricity)

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	s, err = metrics.Summarize(empty)
	require.NoError(t, err)
	assert.Zero(t, s.Diameter)
}

func TestSummarize_MaximalWeightEdge(t *testing.T) {
	g := mustGraph(t, map[core.NodeID][]core.Edge{
		1: {{To: 2, Weight: 1}, {To: 3, Weight: 1}},
		2: {{To: 3, Weight: math.MaxInt64}},
	})

	e, err := metrics.Eccentricity(g, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e)

	s, err := metrics.Summarize(g)
	require.NoError(t, err)
	assert.Equal(t, map[core.NodeID]int64{1: 1, 2: math.MaxInt64, 3: 0}, s.Eccentricity)
	assert.Equal(t, int64(1), s.Radius)
	assert.Equal(t, int64(math.MaxInt64), s.Diameter)
	assert.Equal(t, []core.NodeID{1}, s.Center)
	assert.Equal(t, []core.NodeID{2}, s.Periphery)
}

func TestRadiusNotAboveDiameter(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.Generate(15, 30, builder.WithSeed(seed))
		require.NoError(t, err)
		s, err := metrics.Summarize(g)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.Radius, s.Diameter, "seed %d", seed)
		assert.NotEmpty(t, s.Center)
		assert.NotEmpty(t, s.Periphery)
	}
}

func TestErrors(t *testing.T) {
	_, err := metrics.Eccentricity(nil, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = metrics.Radius(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = metrics.Diameter(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = metrics.Eccentricity(denseGraph(t), 9)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}
