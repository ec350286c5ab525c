package coloring

// Uncolored marks a vertex or edge without a color.
const Uncolored = -1

// VertexResult is the outcome of a vertex coloring.
type VertexResult struct {
	// Colors[v] is the color of vertex v.
	Colors []int

	// Count is the number of colors used (max color + 1 for 0-based schemes).
	Count int
}

// EdgeResult is the outcome of an edge coloring.
type EdgeResult struct {
	// Colors[u][v] == Colors[v][u] is the color of edge {u,v}, or Uncolored
	// when u and v are not adjacent.
	Colors [][]int

	// Count is the number of colors used (max color + 1).
	Count int
}

// EdgeColor returns the color of {u,v}, or Uncolored.
func (r EdgeResult) EdgeColor(u, v int) int {
	if u < 0 || v < 0 || u >= len(r.Colors) || v >= len(r.Colors) {
		return Uncolored
	}

	return r.Colors[u][v]
}
