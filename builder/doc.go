// Package builder generates random weighted digraphs for the graphtraversal
// algorithms, using reusable functional-options building blocks.
//
// The package offers the following key components:
//
//   - Generate(n, s, opts...): a random graph with exactly n nodes and s
//     edges, connected from node 1, weights uniform in [1,10] by default.
//   - ValidateParameters(n, s): the precondition check Generate runs first.
//   - BuildGraph(n, gopts, bopts, cons...): the orchestrator running
//     Constructor closures in order over a fresh core.Graph.
//   - Constructors:
//     – Chain(n):        spanning chain 1→2→…→n.
//     – RandomEdges(k):  k random distinct non-loop edges (rejection sampling).
//   - Configuration primitives:
//     – BuilderOption:   WithSeed, WithRand, WithWeightFn, WithUniformWeight,
//     WithConstantWeight, WithLogger.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  uniform ∼U[1,10].
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max].
//
// Guarantees:
//
//   - Generate returns exactly n nodes and s edges, no self-loops, no duplicate
//     (from,to) pairs, and bfs.IsConnected(g) holds.
//   - Same seed and options ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime errors wrap the sentinels ErrInvalidParameter,
//     ErrGenerationInvariantViolation, ErrNeedRandSource, ErrConstructFailed.
//
// The rejection-sampling phase has no attempt cap: when s is close to
// n·(n-1) it may draw many pairs before finding a free one.
package builder
