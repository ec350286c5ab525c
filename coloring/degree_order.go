// SPDX-License-Identifier: MIT
// Package: graphinv/coloring
//
// degree_order.go — DegreeOrder, a Welsh–Powell style greedy coloring.
//
// Contract:
//   • Vertices are visited by descending degree; equal degrees keep index order.
//   • Colors are 1-based and drawn from {1..maxColors}.
//   • If some vertex finds no free color, ErrPaletteExhausted is returned and
//     no coloring is reported.

package coloring

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/graphinv/adjacency"
)

const methodDegreeOrder = "DegreeOrder"

// DegreeOrder colors m with at most maxColors 1-based colors.
// Complexity: O(n log n + n²).
func DegreeOrder(m *adjacency.Matrix, maxColors int) (VertexResult, error) {
	if m == nil {
		return VertexResult{}, ErrNilMatrix
	}
	if maxColors < 1 {
		return VertexResult{}, fmt.Errorf("%s: maxColors=%d: %w", methodDegreeOrder, maxColors, ErrBadPalette)
	}

	n := m.VertexCount()
	degrees := m.Degrees()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return degrees[order[a]] > degrees[order[b]] })

	colors := make([]int, n)
	for i := range colors {
		colors[i] = Uncolored
	}

	// Bit c-1 stands for color c.
	used := bitset.New(uint(maxColors))
	count := 0
	for _, v := range order {
		used.ClearAll()
		for j := 0; j < n; j++ {
			if m.Has(v, j) && colors[j] != Uncolored {
				used.Set(uint(colors[j] - 1))
			}
		}
		c, ok := used.NextClear(0)
		if !ok || c >= uint(maxColors) {
			return VertexResult{}, fmt.Errorf("%s: vertex %d with %d colors: %w", methodDegreeOrder, v, maxColors, ErrPaletteExhausted)
		}
		colors[v] = int(c) + 1
		if colors[v] > count {
			count = colors[v]
		}
	}

	return VertexResult{Colors: colors, Count: count}, nil
}
