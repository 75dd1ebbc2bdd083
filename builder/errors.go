// SPDX-License-Identifier: MIT
// Package: graphtraversal/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context (method, N, S, bounds) is attached with %w at the failure site.
//   • Algorithms never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates that the requested node or edge count cannot
// produce a connected simple digraph: N < 1, S < N-1 or S > N·(N-1).
// It is always surfaced to the caller, never retried.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* report N and S */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrGenerationInvariantViolation indicates that a finished graph failed its
// postcondition (connectivity from node 1, or the exact edge count).
// Not expected in normal operation since the spanning chain guarantees it.
var ErrGenerationInvariantViolation = errors.New("builder: generation invariant violated")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand not applied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error in constructor composition
// (nil constructor, graph smaller than the constructor's node count).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the method name and wraps
// the sentinel: "<Method>: <message>: <sentinel>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
