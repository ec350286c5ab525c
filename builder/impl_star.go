// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_star.go — Star(n): centre is the first vertex, n-1 leaves follow.
// Contract: n ≥ 2. Complexity: O(n).

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends K_{1,n-1}.
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		center := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(center, center+i)
		}

		return nil
	}
}
