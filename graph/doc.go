// Package graph is the one-stop entry point: a Graph wraps an immutable
// adjacency.Matrix and exposes every invariant graphinv computes.
//
//	g, _ := graph.FromG6("Bw")         // triangle
//	g.ChromaticNumber()                // 3
//	g.ChromaticIndex()                 // 3
//	g.DistinguishingNumberLite(5)      // 3
//	g.Info(5)                          // "G6: Bw, distinguishing number: 3"
//
// A Graph is safe for concurrent use. The compact code and the automorphism
// count are computed once and cached.
package graph
