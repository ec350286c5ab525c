// Package graphinv computes structural invariants of small simple graphs:
// greedy chromatic number and chromatic index, the distinguishing number
// (exact and estimated) and the order of the automorphism group, plus a
// compact textual code for exchanging graphs.
//
// Layout, leaf-first:
//
//	adjacency/   — immutable symmetric 0/1 relation every other package reads
//	g6/          — compact code (row-major graph6 variant) and nauty graph6 interop
//	coloring/    — greedy vertex and edge coloring, degree-ordered variant
//	permute/     — lexicographic permutations and automorphism tests
//	distinguish/ — exact backtracking solver and density estimate
//	autgroup/    — automorphism-group oracles (external nauty tools, brute force)
//	graph/       — Graph facade tying the above together
//	builder/     — fixture constructors (complete, cycle, Petersen, G(n,p), …)
//	cmd/graphinv — command-line front end
//
// Quick example:
//
//	g, _ := graph.FromG6("Bg")               // path 0-1-2
//	g.ChromaticNumber()                      // 2
//	res, _ := g.DistinguishingNumber(5, distinguish.DefaultOptions())
//	res.Number, res.Coloring                 // 2, [1 1 2]
//
// Everything except the external oracle is pure Go, deterministic and
// synchronous. The exact solver is exponential; keep n in single digits or
// set distinguish.Options.TimeLimit.
package graphinv
