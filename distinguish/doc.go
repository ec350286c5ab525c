// Package distinguish computes the distinguishing number of a simple graph:
// the least k such that some vertex coloring with colors {1..k} is preserved
// by no automorphism other than the identity.
//
// Two entry points:
//
//   - Exact — backtracking over all k^n colorings for k = 1, 2, …, maxColors.
//     The first complete coloring (in lexicographic order of color vectors)
//     that breaks every non-identity automorphism ends the search. The
//     automorphism group of the uncolored graph is enumerated once up front
//     through the permute package and, up to Options.GroupCache members,
//     kept, so each candidate coloring is checked against |Aut(G)|-1
//     permutations instead of n!. Larger groups fall back to re-enumerating
//     per coloring in O(n) memory.
//     Cost is exponential in n: keep n in single digits, or set
//     Options.TimeLimit, which also bounds the group enumeration.
//
//   - Lite — an O(n²) density heuristic for quick triage. It is not a bound
//     and carries no correctness guarantee beyond its formula:
//
//     complete graph        → n
//     density > 0.75        → n − 1
//     0.5 < density ≤ 0.75  → min(n/2, 5)
//     density ≤ 0.5         → min(3, n)
//
//     Any estimate above maxColors is reported as NotFound (−1).
//
// Exhaustion of maxColors in Exact is not an error: Result.Found is false and
// Result.Number equals maxColors.
package distinguish
