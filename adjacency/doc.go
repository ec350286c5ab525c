// Package adjacency owns the adjacency relation of a simple undirected graph.
//
// A Matrix is a square 0/1 relation over V = {0,…,n-1} that is symmetric and
// has a zero diagonal. Every other package in graphinv (codec, coloring,
// permutation oracle, distinguishing-number solver) reads a graph through it.
//
// Construction:
//
//   - New(rows [][]int)         — from a dense 0/1 integer matrix.
//   - FromBools(rows [][]bool)  — from a dense boolean matrix.
//   - FromDegreeSequence(deg)   — deterministic Havel–Hakimi realisation.
//   - FromGonum(g)              — from any gonum graph.Graph.
//
// Every constructor validates the full relation and either returns a complete
// Matrix or a sentinel error; a partially built Matrix is never returned.
// A Matrix is immutable after construction and safe for concurrent reads.
//
// Memory is O(n²) booleans in a flat row-major slice; all queries are O(1)
// except Degree/Neighbors (O(n)) and the whole-graph scans (O(n²)).
package adjacency
