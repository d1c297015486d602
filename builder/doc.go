// Package builder generates deterministic core.EdgeList fixtures for the
// client problems, their tests and the command-line tool.
//
// The package offers:
//
//   - Constructor: a closure that appends vertices and edges to an EdgeList.
//     Every constructor allocates its own vertex block with AddVertices, so
//     composing constructors yields their disjoint union.
//   - BuildEdgeList: the single orchestrator. It resolves options, creates
//     the list and applies constructors in order.
//   - Topologies: Path, Cycle, Complete, Grid, RandomSparse, Disjoint.
//   - Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight, WithDirected.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed give identical lists.
//   - Option constructors panic on meaningless input (nil RNG, nil weight
//     function, negative weights); constructors themselves never panic and
//     return sentinel errors.
package builder
