// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrInvalidParameter); the graph must hold at least n nodes
//     (else ErrConstructFailed).
//   - Emits edges i → i+1 for i = 1..n-1 in increasing order.
//   - Weights come from cfg.weightFn(cfg.rng).
//
// The chain alone makes every node 1..n reachable from node 1, which is what
// Generate relies on for its connectivity postcondition.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphtraversal/core"
)

// Chain returns a Constructor that builds the spanning chain 1→2→…→n.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinNodes {
			return builderErrorf(MethodChain, ErrInvalidParameter, "n=%d < min=%d", n, MinNodes)
		}
		if g.Order() < n {
			return builderErrorf(MethodChain, ErrConstructFailed, "graph has %d nodes, need %d", g.Order(), n)
		}

		var (
			u, v core.NodeID
			w    int64
		)
		for i := FirstNode; i < n; i++ {
			u, v = core.NodeID(i), core.NodeID(i+1)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: %w", MethodChain, err)
			}
		}

		return nil
	}
}
