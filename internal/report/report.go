// Package report renders graphs, paths and metrics as plain text for the
// graphtraversal command.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphtraversal/core"
	"github.com/katalvlaran/graphtraversal/dijkstra"
	"github.com/katalvlaran/graphtraversal/metrics"
)

// WriteGraph prints one line per node, ascending:
//
//	{
//	  :1 [(: 2 7), (: 3 5)],
//	  :2 []
//	}
func WriteGraph(w io.Writer, g *core.Graph) error {
	var b strings.Builder
	b.WriteString("{\n")
	for i, v := range g.Nodes() {
		if i > 0 {
			b.WriteString(",\n")
		}
		edges, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		parts := make([]string, len(edges))
		for j, e := range edges {
			parts[j] = e.String()
		}
		fmt.Fprintf(&b, "  :%d [%s]", v, strings.Join(parts, ", "))
	}
	if g.Order() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WritePath prints a shortest path and its distance, or that none exists.
func WritePath(w io.Writer, from, to core.NodeID, path []core.NodeID, d dijkstra.Distance) error {
	var err error
	if len(path) == 0 || !d.IsFinite() {
		_, err = fmt.Fprintf(w, "No path from %d to %d\n", from, to)
		return err
	}
	_, err = fmt.Fprintf(w, "Shortest path from %d to %d: %v\nDistance: %s\n", from, to, path, d)
	return err
}

// WriteProperties prints the eccentricity of node v followed by the graph's
// radius and diameter.
func WriteProperties(w io.Writer, v core.NodeID, s *metrics.Summary) error {
	var b strings.Builder
	b.WriteString("Graph Properties:\n")
	fmt.Fprintf(&b, "Eccentricity of node %d: %d\n", v, s.Eccentricity[v])
	fmt.Fprintf(&b, "Radius of the graph: %d\n", s.Radius)
	fmt.Fprintf(&b, "Diameter of the graph: %d\n", s.Diameter)

	_, err := io.WriteString(w, b.String())
	return err
}
