// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: central Graph, NodeID and Edge types of the weighted directed graph
// model, together with sentinel errors and graph options.
//
// This file declares NodeID, Edge, Graph, GraphOption, the sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound        - an endpoint lies outside the graph's node range.
//	ErrBadWeight           - a zero or negative weight was supplied.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge for the same ordered pair.
//	ErrBadNodeCount        - a negative node count was requested.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside [1, N].
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for an ordered pair that already has one.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")
)

// NodeID identifies a node. Identity is the integer value itself; valid
// identifiers of a graph with N nodes are 1..N.
type NodeID int

// Edge is an outgoing edge stored in its source node's list.
//
// Two edges are equal (==) iff target and weight are both equal.
type Edge struct {
	// To is the destination node.
	To NodeID

	// Weight is the positive cost of traversing the edge.
	Weight int64
}

// String renders the edge as "(: <to> <weight>)".
func (e Edge) String() string {
	return fmt.Sprintf("(: %d %d)", e.To, e.Weight)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a weighted directed graph over the nodes 1..N.
//
// Every node owns an edge list kept sorted by ascending target id.
// At most one edge exists per ordered pair (from, to).
// mu guards adjacency and size; order and allowLoops are fixed at construction.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // allow self-loops

	order int // number of nodes, ids 1..order
	size  int // number of edges

	// adjacency[v-1] holds the outgoing edges of v sorted by Edge.To.
	adjacency [][]Edge
}

// NewGraph creates a graph with nodes 1..n and no edges.
// By default self-loops are rejected.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadNodeCount, n)
	}
	g := &Graph{
		order:     n,
		adjacency: make([][]Edge, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
