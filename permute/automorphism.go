// SPDX-License-Identifier: MIT
// Package: graphinv/permute
//
// automorphism.go — automorphism tests and group enumeration by brute force.
//
// These routines are exhaustive over all n! permutations and are meant for
// small graphs (single-digit n).

package permute

import "github.com/katalvlaran/graphinv/adjacency"

// IsAutomorphism reports whether p preserves the adjacency of m and, when
// colors is non-nil, the coloring. It returns false when p or colors have the
// wrong length or p is not a bijection.
// Complexity: O(n²).
func IsAutomorphism(m *adjacency.Matrix, p []int, colors []int) bool {
	if m == nil || len(p) != m.VertexCount() || !IsPermutation(p) {
		return false
	}
	if colors != nil && len(colors) != len(p) {
		return false
	}

	return preserves(m, p, colors)
}

// PreservesColors reports whether colors[i] == colors[p[i]] for every i.
// It assumes len(p) == len(colors) and that p is a permutation.
// Complexity: O(n).
func PreservesColors(p []int, colors []int) bool {
	for i, v := range p {
		if colors[i] != colors[v] {
			return false
		}
	}

	return true
}

// PreservesAdjacency reports whether A[i,j] == A[p[i],p[j]] for every pair.
// Like PreservesColors it skips argument checks: p must be a permutation of
// {0..n-1} for n = m.VertexCount(). Colors are ignored.
// Complexity: O(n²), no allocation.
func PreservesAdjacency(m *adjacency.Matrix, p []int) bool {
	return preserves(m, p, nil)
}

// preserves is IsAutomorphism without argument checks; colors may be nil.
// The cheap color test runs first.
func preserves(m *adjacency.Matrix, p []int, colors []int) bool {
	if colors != nil && !PreservesColors(p, colors) {
		return false
	}
	n := len(p)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Has(i, j) != m.Has(p[i], p[j]) {
				return false
			}
		}
	}

	return true
}

// Automorphisms returns every permutation preserving m (and colors, when
// non-nil), in lexicographic order; the identity is always first.
// Invalid arguments yield nil.
// Complexity: O(n!·n²) time.
func Automorphisms(m *adjacency.Matrix, colors []int) [][]int {
	if m == nil || (colors != nil && len(colors) != m.VertexCount()) {
		return nil
	}
	var out [][]int
	Each(m.VertexCount(), func(p []int) bool {
		if preserves(m, p, colors) {
			out = append(out, append([]int(nil), p...))
		}

		return true
	})

	return out
}

// CountAutomorphisms returns |Aut(m)|, or the order of the color-preserving
// subgroup when colors is non-nil. The identity is counted. Invalid
// arguments yield 0.
// Complexity: O(n!·n²) time, O(n) space.
func CountAutomorphisms(m *adjacency.Matrix, colors []int) uint64 {
	if m == nil || (colors != nil && len(colors) != m.VertexCount()) {
		return 0
	}
	var count uint64
	Each(m.VertexCount(), func(p []int) bool {
		if preserves(m, p, colors) {
			count++
		}

		return true
	})

	return count
}
