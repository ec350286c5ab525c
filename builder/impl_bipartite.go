// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1.
//   • Left side takes the first n1 vertices, right side the next n2.
//   • Edges are emitted left-major: (0,n1),(0,n1+1),…
//
// Complexity: O(n1·n2).

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if n1 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n1", n1, minPartitionSize)
		}
		if n2 < minPartitionSize {
			return tooFew(methodCompleteBipartite, "n2", n2, minPartitionSize)
		}
		base := s.addVertices(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.addEdge(base+i, base+n1+j)
			}
		}

		return nil
	}
}
