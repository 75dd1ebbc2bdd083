// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// generate.go - Generate(n, s): random connected digraph with exact sizes.
//
// Steps:
//  1. ValidateParameters(n, s).
//  2. Chain(n): i → i+1 for i = 1..n-1.
//  3. RandomEdges(s - (n-1)): rejection sampling of the remaining edges.
//  4. Postconditions: Size() == s and bfs.IsConnected(g).
//
// Nodes 1..n exist from the start (core.NewGraph) and every edge list is kept
// sorted by target by core.Graph itself.

package builder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/graphtraversal/bfs"
	"github.com/katalvlaran/graphtraversal/core"
)

// Generate builds a random graph with exactly n nodes and s edges in which
// every node is reachable from node 1.
//
// Weights default to uniform [1,10]. Without WithSeed/WithRand a fresh
// time-seeded source is used, so repeated calls differ.
//
// Errors:
//   - ErrInvalidParameter: n < 1, s < n-1 or s > n·(n-1); message names N, S
//     and the violated bound, e.g.
//     "Generate: N=5, S=3: need at least 4 edges: builder: invalid parameter".
//   - ErrGenerationInvariantViolation: postcondition failed.
//   - core.ErrBadWeight if a custom WeightFn yields a non-positive weight.
//
// Complexity: O(n + s·log s) expected; the random phase is unbounded in the
// worst case (see RandomEdges).
func Generate(n, s int, opts ...BuilderOption) (*core.Graph, error) {
	if err := ValidateParameters(n, s); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	seed := time.Now().UnixNano()
	cfg := newBuilderConfig(append([]BuilderOption{WithSeed(seed)}, opts...)...)
	log := cfg.logger.With(slog.Int("nodes", n), slog.Int("edges", s))
	if cfg.seeded {
		log = log.With(slog.Int64("seed", cfg.seed))
	}
	log.Debug("generating graph")

	g, err := buildGraph(n, nil, cfg, Chain(n), RandomEdges(s-(n-1)))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", MethodGenerate, fmtNS(n, s), err)
	}

	if got := g.Size(); got != s {
		return nil, builderErrorf(MethodGenerate, ErrGenerationInvariantViolation,
			"%s: built %d edges", fmtNS(n, s), got)
	}
	if !bfs.IsConnected(g) {
		return nil, builderErrorf(MethodGenerate, ErrGenerationInvariantViolation,
			"%s: node %d reaches %d of %d nodes", fmtNS(n, s), FirstNode,
			len(bfs.Reachable(g, bfs.RootNode)), n)
	}
	log.Debug("graph generated")

	return g, nil
}
