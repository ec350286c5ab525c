// Package permute enumerates vertex permutations and tests them against an
// adjacency relation.
//
// Enumeration is iterative and lexicographic: starting from the identity,
// Next produces the lexicographic successor in place, so Each visits all n!
// permutations exactly once, identity first, without recursion.
//
// IsAutomorphism(m, p, colors) holds iff A[i,j] == A[p[i],p[j]] for all i,j and,
// when colors is non-nil, colors[i] == colors[p[i]] for all i. It costs O(n²).
package permute
