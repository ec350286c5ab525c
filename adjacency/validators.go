// SPDX-License-Identifier: MIT
// Package: graphinv/adjacency
//
// validators.go — structural checks shared by every constructor.
//
// Check order (documented, enforced in tests):
// nil → shape → binary (New only) → diagonal → symmetry.

package adjacency

// validateSquare checks that each of the n rows has length n.
// rowLen abstracts over [][]int and [][]bool inputs.
func validateSquare(n int, rowLen func(i int) int) error {
	for i := 0; i < n; i++ {
		if rowLen(i) != n {
			return adjacencyErrorf("validateSquare", i, rowLen(i), ErrNonSquare)
		}
	}

	return nil
}

// validate enforces zero diagonal, then symmetry on the upper triangle.
// Complexity: O(n²), no allocation.
func (m *Matrix) validate(method string) error {
	var i, j int
	for i = 0; i < m.n; i++ {
		if m.data[i*m.n+i] {
			return adjacencyErrorf(method, i, i, ErrNonZeroDiagonal)
		}
	}
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return adjacencyErrorf(method, i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// Validate re-checks the structural invariants of m. A Matrix obtained from
// this package always passes; the check exists for callers that assemble
// matrices through FromGonum or other adapters and want a cheap assertion.
func Validate(m *Matrix) error {
	if m == nil {
		return ErrNilInput
	}

	return m.validate("Validate")
}
