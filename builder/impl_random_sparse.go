// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// impl_random_sparse.go — RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   • p ∈ {0,1} needs no RNG; any other p needs WithSeed/WithRand (ErrNeedRandSource).
//   • Pairs {i,j}, i<j, are tried in lexicographic order, one draw per pair.
//
// Determinism: same seed ⇒ same edge set.
// Complexity: O(n²) draws.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
	minProbability     = 0.0
	maxProbability     = 1.0
)

// RandomSparse returns a Constructor that appends a G(n,p) sample.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < minProbability || p > maxProbability || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		deterministic := p == minProbability || p == maxProbability
		if cfg.rng == nil && !deterministic {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrNeedRandSource)
		}

		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if deterministic {
					if p == maxProbability {
						s.addEdge(base+i, base+j)
					}
					continue
				}
				if cfg.rng.Float64() < p {
					s.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
