// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate entry point.
	MethodGenerate = "Generate"
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodRandomEdges is the canonical name for the RandomEdges constructor.
	MethodRandomEdges = "RandomEdges"
)

//-----------------------------------------------------------------------------
// Node Range
//-----------------------------------------------------------------------------

// FirstNode is the node every chain starts from and every connectivity check
// is rooted at.
const FirstNode = 1

// MinNodes is the smallest graph Generate accepts.
const MinNodes = 1

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultMinWeight is the inclusive lower bound of generated edge weights.
const DefaultMinWeight int64 = 1

// DefaultMaxWeight is the inclusive upper bound of generated edge weights.
const DefaultMaxWeight int64 = 10
