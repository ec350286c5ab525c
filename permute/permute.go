// SPDX-License-Identifier: MIT
// Package: graphinv/permute
//
// permute.go — lexicographic successor and enumeration.
//
// Next follows the classic algorithm:
//   1. find the longest non-increasing suffix;
//   2. the element before it is the pivot (none ⇒ last permutation);
//   3. swap the pivot with the rightmost suffix element greater than it;
//   4. reverse the suffix.

package permute

import "cmp"

// Next rearranges p into its lexicographic successor and reports true, or
// leaves p unchanged and reports false when p is already the last
// (non-increasing) arrangement.
// Complexity: O(n) worst case, O(1) amortised over a full enumeration.
func Next[T cmp.Ordered](p []T) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// Identity returns [0, 1, …, n-1].
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// IsIdentity reports whether p[i] == i for every i.
func IsIdentity(p []int) bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}

	return true
}

// IsPermutation reports whether p is a bijection of {0..len(p)-1}.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Each calls fn with every permutation of {0..n-1} in lexicographic order,
// identity first, until fn returns false. The slice passed to fn is reused
// between calls; fn must copy it to retain it.
// Each reports whether the enumeration ran to completion.
// For n ≤ 0, fn sees the single empty permutation.
func Each(n int, fn func(p []int) bool) bool {
	p := Identity(n)
	for {
		if !fn(p) {
			return false
		}
		if !Next(p) {
			return true
		}
	}
}

// Factorial returns n! for 0 ≤ n ≤ 20, the largest that fits in uint64.
// It returns 0 for any other n.
func Factorial(n int) uint64 {
	if n < 0 || n > 20 {
		return 0
	}
	f := uint64(1)
	for k := 2; k <= n; k++ {
		f *= uint64(k)
	}

	return f
}
