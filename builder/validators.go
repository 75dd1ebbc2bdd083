// Package builder provides validation helpers to enforce parameter
// contracts in Generate and its constructors.
package builder

import "fmt"

// ValidateParameters checks that n nodes and s edges can form a connected
// simple digraph: n ≥ 1, s ≥ n-1 (spanning chain) and s ≤ n·(n-1) (no loops,
// no duplicates). Violations wrap ErrInvalidParameter and name N, S and the
// bound that failed.
//
// Complexity: O(1) time and space.
func ValidateParameters(n, s int) error {
	if n < MinNodes {
		return fmtInvalid(n, s, "need at least %d node", MinNodes)
	}
	if s < n-1 {
		return fmtInvalid(n, s, "need at least %d edges", n-1)
	}
	if limit := maxEdges(n); s > limit {
		return fmtInvalid(n, s, "at most %d edges fit without loops or duplicates", limit)
	}

	return nil
}

// maxEdges is the edge count of the complete digraph on n nodes.
func maxEdges(n int) int {
	return n * (n - 1)
}

// fmtInvalid renders "N=<n>, S=<s>: <reason>" around ErrInvalidParameter.
func fmtInvalid(n, s int, format string, args ...interface{}) error {
	return builderErrorf(fmtNS(n, s), ErrInvalidParameter, format, args...)
}

// fmtNS is the "N=<n>, S=<s>" context shared by parameter errors.
func fmtNS(n, s int) string {
	return fmt.Sprintf("N=%d, S=%d", n, s)
}
