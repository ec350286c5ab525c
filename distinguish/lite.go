// SPDX-License-Identifier: MIT
// Package: graphinv/distinguish
//
// lite.go — density-threshold estimate of the distinguishing number.
// Branch order is fixed: completeness, then density > 0.75, then > 0.5.

package distinguish

import "github.com/katalvlaran/graphinv/adjacency"

const (
	denseThreshold  = 0.75
	mediumThreshold = 0.5
	mediumCap       = 5
	sparseCap       = 3
)

// Lite returns the heuristic estimate, or NotFound when it exceeds maxColors.
// Complexity: O(n²).
func Lite(m *adjacency.Matrix, maxColors int) (int, error) {
	if m == nil {
		return NotFound, ErrNilMatrix
	}
	n := m.VertexCount()

	if m.IsComplete() {
		if n <= maxColors {
			return n, nil
		}

		return NotFound, nil
	}

	var estimate int
	switch d := m.Density(); {
	case d > denseThreshold:
		estimate = n - 1
	case d > mediumThreshold:
		estimate = min(n/2, mediumCap)
	default:
		estimate = min(sparseCap, n)
	}
	if estimate <= maxColors {
		return estimate, nil
	}

	return NotFound, nil
}
