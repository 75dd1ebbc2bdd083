// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates g with
//     nodes 1..n, resolves cfg, runs cons in order.
//   - Generate composes Chain and RandomEdges and verifies the result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with nodes 1..n and graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately; the partial graph is dropped.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - core.ErrBadNodeCount for n < 0.
//   - Wrapped constructor errors; branch with errors.Is against builder
//     sentinels (ErrInvalidParameter, ErrNeedRandSource, ...).
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return buildGraph(n, gopts, newBuilderConfig(bopts...), cons...)
}

// buildGraph is BuildGraph over an already resolved configuration.
func buildGraph(n int, gopts []core.GraphOption, cfg builderConfig, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Chain builds the spanning chain 1→2→…→n (n ≥ 1).
// Complexity: O(n) edges; O(1) extra space.
//func Chain(n int) Constructor

// RandomEdges adds k random distinct non-loop edges by rejection sampling.
// Requires cfg.rng != nil. Unbounded loop, see impl_random_edges.go.
//func RandomEdges(k int) Constructor
