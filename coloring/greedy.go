// SPDX-License-Identifier: MIT
// Package: graphinv/coloring
//
// greedy.go — GreedyVertex and GreedyEdge.
//
// Determinism:
//   • Vertices are visited in ascending index order.
//   • Edges are visited as ordered pairs (u,v), u ascending then v ascending;
//     (v,u) is skipped once {u,v} is colored.
//   • Ties always resolve to the smallest free color.

package coloring

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/graphinv/adjacency"
)

// GreedyVertex colors vertices 0..n-1 in order; each vertex takes the smallest
// color not already used by a colored neighbour. Count is 0 for n == 0.
// Complexity: O(n²) time, O(n) extra space.
func GreedyVertex(m *adjacency.Matrix) (VertexResult, error) {
	if m == nil {
		return VertexResult{}, ErrNilMatrix
	}
	n := m.VertexCount()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = Uncolored
	}
	if n == 0 {
		return VertexResult{Colors: colors}, nil
	}

	forbidden := bitset.New(uint(n))
	count := 0
	var u, i int
	for u = 0; u < n; u++ {
		forbidden.ClearAll()
		// Collect colors of every already-colored neighbour.
		for i = 0; i < n; i++ {
			if m.Has(u, i) && colors[i] != Uncolored {
				forbidden.Set(uint(colors[i]))
			}
		}
		colors[u] = smallestFree(forbidden)
		if colors[u]+1 > count {
			count = colors[u] + 1
		}
	}

	return VertexResult{Colors: colors, Count: count}, nil
}

// GreedyEdge colors every edge once; an edge takes the smallest color not used
// by any colored edge incident to either endpoint. Count is 0 for edgeless graphs.
// Complexity: O(n³) time, O(n²) space.
func GreedyEdge(m *adjacency.Matrix) (EdgeResult, error) {
	if m == nil {
		return EdgeResult{}, ErrNilMatrix
	}
	n := m.VertexCount()
	colors := make([][]int, n)
	for u := range colors {
		colors[u] = make([]int, n)
		for v := range colors[u] {
			colors[u][v] = Uncolored
		}
	}

	// Edge {u,v} sees at most 2Δ−2 colored neighbours, so 2Δ−1 colors suffice.
	palette := 2*m.MaxDegree() - 1
	if palette < 1 {
		palette = 1
	}
	forbidden := bitset.New(uint(palette))

	count := 0
	var u, v, i int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if !m.Has(u, v) || colors[u][v] != Uncolored {
				continue
			}
			forbidden.ClearAll()
			for i = 0; i < n; i++ {
				if m.Has(u, i) && colors[u][i] != Uncolored {
					forbidden.Set(uint(colors[u][i]))
				}
				if m.Has(v, i) && colors[v][i] != Uncolored {
					forbidden.Set(uint(colors[v][i]))
				}
			}
			c := smallestFree(forbidden)
			colors[u][v], colors[v][u] = c, c
			if c+1 > count {
				count = c + 1
			}
		}
	}

	return EdgeResult{Colors: colors, Count: count}, nil
}

// ChromaticNumber returns the GreedyVertex color count.
func ChromaticNumber(m *adjacency.Matrix) (int, error) {
	r, err := GreedyVertex(m)

	return r.Count, err
}

// ChromaticIndex returns the GreedyEdge color count.
func ChromaticIndex(m *adjacency.Matrix) (int, error) {
	r, err := GreedyEdge(m)

	return r.Count, err
}

// smallestFree returns the lowest clear bit of b, or b.Len() when every bit
// in range is set.
func smallestFree(b *bitset.BitSet) int {
	if c, ok := b.NextClear(0); ok {
		return int(c)
	}

	return int(b.Len())
}
