// Package metrics derives graph-wide distance measures from shortest paths.
//
// What
//
//   - Eccentricity(g, v): the largest finite shortest-path distance from v.
//   - Radius(g) / Diameter(g): minimum / maximum eccentricity.
//   - Summarize(g): radius, diameter, center and periphery in one pass.
//
// Policy for unreachable nodes
//
//   - Targets v cannot reach are left out of v's eccentricity; they are not
//     "infinitely far".
//   - A node that reaches nothing but itself has eccentricity 0.
//   - Radius and Diameter aggregate over nodes with positive eccentricity, so
//     a sink (such as the last node of a chain) does not pull the radius to 0.
//     When no node reaches another, both are 0.
//
// Complexity (V = nodes, E = edges)
//
//   - Eccentricity: one Dijkstra run, O((V + E) log V).
//   - Radius, Diameter, Summarize: V runs, O(V · (V + E) log V).
//
// Errors only come from dijkstra (ErrNilGraph, ErrVertexNotFound,
// ErrDistanceOverflow).
package metrics
