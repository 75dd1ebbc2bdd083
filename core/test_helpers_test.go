// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphtraversal/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphtraversal/core"
)

// Common node ids used across core tests.
const (
	Node1 core.NodeID = 1
	Node2 core.NodeID = 2
	Node3 core.NodeID = 3
	Node4 core.NodeID = 4
	Node5 core.NodeID = 5
)

// Common weights used across core tests.
const (
	Weight1 int64 = 1
	Weight2 int64 = 2
	Weight3 int64 = 3
	Weight7 int64 = 7
)

// NewChainGraph RETURNS the chain 1→2→…→n with weight w on every edge.
func NewChainGraph(t *testing.T, n int, w int64) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	MustNoError(t, err, "NewGraph")
	for i := 1; i < n; i++ {
		MustNoError(t, g.AddEdge(core.NodeID(i), core.NodeID(i+1), w), "AddEdge(chain)")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}
