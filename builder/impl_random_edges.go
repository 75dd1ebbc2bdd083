// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// impl_random_edges.go - implementation of RandomEdges(k) constructor.
//
// Model:
//   - Rejection sampling: draw source and target uniformly from 1..N; accept
//     iff source != target and source→target is not yet present; on
//     acceptance draw a weight and insert. Repeat until k edges were accepted.
//   - The loop has no attempt cap. It terminates with probability 1 because
//     the capacity check below guarantees a free ordered pair always exists,
//     but its running time grows as the graph approaches completeness.
//
// Contract:
//   - k ≥ 0 (else ErrInvalidParameter).
//   - Size()+k ≤ N·(N-1) (else ErrInvalidParameter).
//   - cfg.rng must be non-nil when k > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Expected time: O(k · N²/(N² - E)) draws, each O(log deg) to test.
//   - Space: O(1) extra.

package builder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphtraversal/core"
)

// RandomEdges returns a Constructor that adds k distinct random non-loop
// edges on top of whatever the graph already holds.
func RandomEdges(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return builderErrorf(MethodRandomEdges, ErrInvalidParameter, "k=%d < 0", k)
		}
		if k == 0 {
			return nil
		}
		n := g.Order()
		if free := maxEdges(n) - g.Size(); k > free {
			return builderErrorf(MethodRandomEdges, ErrInvalidParameter,
				"k=%d exceeds %d free ordered pairs on %d nodes", k, free, n)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomEdges, ErrNeedRandSource)
		}

		var (
			added, rejected int
			u, v            core.NodeID
			w               int64
		)
		for added < k {
			u = core.NodeID(cfg.rng.Intn(n) + FirstNode)
			v = core.NodeID(cfg.rng.Intn(n) + FirstNode)
			if u == v || g.HasEdge(u, v) {
				rejected++
				continue
			}
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: %w", MethodRandomEdges, err)
			}
			added++
		}
		cfg.logger.Debug("random edges added",
			slog.Int("accepted", added),
			slog.Int("rejected", rejected))

		return nil
	}
}
