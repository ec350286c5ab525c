// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_complete.go — Complete(n) and Empty(n).
//
// Contract:
//   • Complete: n ≥ 1; emits every pair {i,j}, i<j, in lexicographic order.
//   • Empty:    n ≥ 1; vertices only.
//
// Complexity: O(n²) edges for Complete, O(1) for Empty.

package builder

const (
	methodComplete   = "Complete"
	methodEmpty      = "Empty"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices.
func Empty(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodEmpty, "n", n, minCompleteNodes)
		}
		s.addVertices(n)

		return nil
	}
}
