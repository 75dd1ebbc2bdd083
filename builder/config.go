// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng      = nil                 (stochastic constructors refuse to run)
//   • weightFn = DefaultWeightFn     (uniform [1,10])
//   • logger   = discard handler
//
// Generate prepends a time-seeded source so production callers get fresh
// graphs; tests pass WithSeed to pin the outcome.

package builder

import (
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// seed of rng when it was created by WithSeed; reported in logs.
	seed   int64
	seeded bool
	// Weight generator for edges.
	weightFn WeightFn
	// Debug sink for attempts and rejections.
	logger *slog.Logger
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		logger:   slog.New(slog.DiscardHandler),
	}

	// last-wins semantics
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
