// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_path.go — Path(n).
//
// Contract: n ≥ 2; edges (i-1,i) for i=1..n-1 in increasing order.
// Complexity: O(n).

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		base := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+i-1, base+i)
		}

		return nil
	}
}
