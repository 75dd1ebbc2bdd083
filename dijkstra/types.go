// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: defines the distance value, result type and sentinel
// errors of the single-source shortest-path engine.
//
// Distance is a tagged value: either Finite(n) or Unreachable(). There is no
// MaxInt64 sentinel, so no arithmetic can silently wrap around "infinity".

package dijkstra

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/graphtraversal/core"
)

// Sentinel errors returned by the Dijkstra implementation.
// Unreachability is never an error; it is reported as Unreachable() data.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a start or end node does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrDistanceOverflow indicates that a path length exceeds math.MaxInt64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")
)

// Distance is the length of a shortest path, or the absence of any path.
// The zero value is Unreachable, so a lookup of a missing map key never
// reads as a real distance.
type Distance struct {
	value  int64
	finite bool
}

// Finite returns the distance n.
func Finite(n int64) Distance {
	return Distance{value: n, finite: true}
}

// Unreachable returns the distance of a node no path leads to.
func Unreachable() Distance {
	return Distance{}
}

// Value returns the finite length and true, or 0 and false when unreachable.
func (d Distance) Value() (int64, bool) {
	return d.value, d.finite
}

// IsFinite reports whether some path exists.
func (d Distance) IsFinite() bool {
	return d.finite
}

// Less orders finite distances by length; Unreachable is greater than every
// finite distance and never less than anything.
func (d Distance) Less(other Distance) bool {
	switch {
	case !d.finite:
		return false
	case !other.finite:
		return true
	default:
		return d.value < other.value
	}
}

// Add extends the distance by an edge of weight w. Unreachable stays
// Unreachable. The boolean is false when the sum overflows int64.
func (d Distance) Add(w int64) (Distance, bool) {
	if !d.finite {
		return d, true
	}
	if w > 0 && d.value > math.MaxInt64-w {
		return Unreachable(), false
	}

	return Finite(d.value + w), true
}

// String renders the length in decimal, or "∞" when unreachable.
func (d Distance) String() string {
	if !d.finite {
		return "∞"
	}

	return strconv.FormatInt(d.value, 10)
}

// Result holds the outcome of one Dijkstra run.
//
// Dist has an entry for every node of the graph. Prev[v] is the predecessor
// of v on one shortest path from Source; the source and unreachable nodes
// have no entry.
type Result struct {
	Source core.NodeID
	Dist   map[core.NodeID]Distance
	Prev   map[core.NodeID]core.NodeID
}
