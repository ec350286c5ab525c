package coloring

import "github.com/katalvlaran/graphinv/adjacency"

// IsProperVertexColoring reports whether colors assigns a color to every
// vertex and no edge joins two vertices of the same color.
func IsProperVertexColoring(m *adjacency.Matrix, colors []int) bool {
	if m == nil || len(colors) != m.VertexCount() {
		return false
	}
	n := m.VertexCount()
	for i := 0; i < n; i++ {
		if colors[i] == Uncolored {
			return false
		}
		for j := i + 1; j < n; j++ {
			if m.Has(i, j) && colors[i] == colors[j] {
				return false
			}
		}
	}

	return true
}

// IsProperEdgeColoring reports whether every edge is colored, non-edges are
// not, and no two edges sharing an endpoint have the same color.
func IsProperEdgeColoring(m *adjacency.Matrix, colors [][]int) bool {
	if m == nil || len(colors) != m.VertexCount() {
		return false
	}
	n := m.VertexCount()
	for u := 0; u < n; u++ {
		if len(colors[u]) != n {
			return false
		}
		seen := make(map[int]bool, n)
		for v := 0; v < n; v++ {
			c := colors[u][v]
			if !m.Has(u, v) {
				if c != Uncolored {
					return false
				}
				continue
			}
			if c == Uncolored || c != colors[v][u] || seen[c] {
				return false
			}
			seen[c] = true
		}
	}

	return true
}
