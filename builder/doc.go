// Package builder assembles small deterministic graph fixtures as adjacency
// matrices.
//
// Build composes constructors into one graph: every constructor appends its
// own vertices after the ones already present, so
//
//	builder.Build(nil, builder.Complete(3), builder.Path(2))
//
// yields K_3 on vertices 0..2 plus an edge {3,4}. Vertex numbering inside
// each constructor is documented on the constructor itself.
//
// Available topologies: Empty, Complete, Path, Cycle, Star, Wheel,
// CompleteBipartite, Petersen, RandomSparse.
//
// Guarantees:
//
//   - Determinism: the same constructors, options and seed produce the same
//     matrix.
//   - Safety: constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); they never panic. Option
//     constructors (WithRand) panic on nil, which is a programmer error.
//   - The result always satisfies the adjacency invariants (symmetric, zero
//     diagonal); parallel edges collapse.
package builder
