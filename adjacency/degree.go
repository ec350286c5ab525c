// SPDX-License-Identifier: MIT
// Package: graphinv/adjacency
//
// degree.go — FromDegreeSequence, a deterministic Havel–Hakimi realisation.
//
// Contract:
//   • deg == nil → ErrNilInput.
//   • Any d < 0, d ≥ n, or an odd degree sum → ErrNotGraphical.
//   • Repeatedly take the unprocessed vertex with the largest residual degree
//     (ties → lower index) and join it to the d unprocessed vertices with the
//     largest residual degrees (ties → lower index).
//
// Complexity: O(n² log n) time, O(n²) memory for the result.

package adjacency

import (
	"fmt"
	"sort"
)

const methodFromDegreeSequence = "FromDegreeSequence"

// FromDegreeSequence returns a simple graph whose vertex i has degree deg[i].
// The same sequence always yields the same Matrix.
func FromDegreeSequence(deg []int) (*Matrix, error) {
	if deg == nil {
		return nil, ErrNilInput
	}
	n := len(deg)

	// Cheap necessary conditions first.
	sum := 0
	for i, d := range deg {
		if d < 0 || d >= n {
			return nil, fmt.Errorf("%s: deg[%d]=%d: %w", methodFromDegreeSequence, i, d, ErrNotGraphical)
		}
		sum += d
	}
	if sum%2 != 0 {
		return nil, fmt.Errorf("%s: odd degree sum %d: %w", methodFromDegreeSequence, sum, ErrNotGraphical)
	}

	residual := make([]int, n)
	copy(residual, deg)
	done := make([]bool, n)
	data := make([]bool, n*n)
	order := make([]int, 0, n)

	for step := 0; step < n; step++ {
		// Pick the pivot: largest residual, lowest index.
		v := -1
		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			if v < 0 || residual[i] > residual[v] {
				v = i
			}
		}
		if v < 0 || residual[v] == 0 {
			break
		}
		done[v] = true

		// Rank the remaining vertices by residual degree.
		order = order[:0]
		for i := 0; i < n; i++ {
			if !done[i] {
				order = append(order, i)
			}
		}
		sort.SliceStable(order, func(a, b int) bool {
			return residual[order[a]] > residual[order[b]]
		})

		d := residual[v]
		if d > len(order) {
			return nil, fmt.Errorf("%s: vertex %d needs %d more neighbours: %w", methodFromDegreeSequence, v, d, ErrNotGraphical)
		}
		for _, u := range order[:d] {
			if residual[u] == 0 {
				return nil, fmt.Errorf("%s: vertex %d needs %d more neighbours: %w", methodFromDegreeSequence, v, d, ErrNotGraphical)
			}
			residual[u]--
			data[v*n+u] = true
			data[u*n+v] = true
		}
		residual[v] = 0
	}

	return &Matrix{n: n, data: data}, nil
}
