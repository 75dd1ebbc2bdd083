package metrics

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
	"github.com/katalvlaran/graphtraversal/dijkstra"
)

// Summary holds the aggregate metrics of one graph.
//
// Center lists the nodes whose eccentricity equals Radius and Periphery those
// whose eccentricity equals Diameter, both ascending. They are empty when no
// node has positive eccentricity. Eccentricity holds the per-node values.
type Summary struct {
	Radius       int64
	Diameter     int64
	Center       []core.NodeID
	Periphery    []core.NodeID
	Eccentricity map[core.NodeID]int64
}

// Eccentricity returns the maximum finite distance from v to any node it
// reaches, or 0 when v reaches nothing else.
func Eccentricity(g *core.Graph, v core.NodeID) (int64, error) {
	dist, err := dijkstra.Distances(g, v)
	if err != nil {
		return 0, fmt.Errorf("metrics: eccentricity of %d: %w", v, err)
	}

	return maxFinite(dist), nil
}

// Eccentricities returns the eccentricity of every node of g.
func Eccentricities(g *core.Graph) (map[core.NodeID]int64, error) {
	if g == nil {
		return nil, fmt.Errorf("metrics: %w", dijkstra.ErrNilGraph)
	}
	out := make(map[core.NodeID]int64, g.Order())
	for _, v := range g.Nodes() {
		e, err := Eccentricity(g, v)
		if err != nil {
			return nil, err
		}
		out[v] = e
	}

	return out, nil
}

// Radius is the smallest positive eccentricity, 0 if there is none.
func Radius(g *core.Graph) (int64, error) {
	s, err := Summarize(g)
	if err != nil {
		return 0, err
	}

	return s.Radius, nil
}

// Diameter is the largest eccentricity.
func Diameter(g *core.Graph) (int64, error) {
	s, err := Summarize(g)
	if err != nil {
		return 0, err
	}

	return s.Diameter, nil
}

// Summarize computes every eccentricity once and derives radius, diameter,
// center and periphery from them.
func Summarize(g *core.Graph) (*Summary, error) {
	ecc, err := Eccentricities(g)
	if err != nil {
		return nil, err
	}

	s := &Summary{Eccentricity: ecc}
	found := false
	for _, e := range ecc {
		if e <= 0 {
			continue
		}
		if !found || e < s.Radius {
			s.Radius = e
		}
		if !found || e > s.Diameter {
			s.Diameter = e
		}
		found = true
	}
	if !found {
		return s, nil
	}
	// g.Nodes is ascending, so Center and Periphery are too
	for _, v := range g.Nodes() {
		if ecc[v] == s.Radius {
			s.Center = append(s.Center, v)
		}
		if ecc[v] == s.Diameter {
			s.Periphery = append(s.Periphery, v)
		}
	}

	return s, nil
}

// maxFinite is the largest finite value of dist, 0 if none is positive.
func maxFinite(dist map[core.NodeID]dijkstra.Distance) int64 {
	var m int64
	for _, d := range dist {
		if v, ok := d.Value(); ok && v > m {
			m = v
		}
	}

	return m
}
