// SPDX-License-Identifier: MIT
// Package: graphinv/adjacency
//
// matrix.go — the Matrix type and its read-only accessors.

package adjacency

import (
	"strings"
)

// Matrix is an immutable symmetric 0/1 adjacency relation with zero diagonal.
// Storage is a flat row-major slice of n*n booleans.
type Matrix struct {
	n    int    // vertex count
	data []bool // data[i*n+j] == A[i,j]
}

// New builds a Matrix from a dense 0/1 integer matrix.
// Stage 1 (Validate): rows non-nil, square, binary, zero diagonal, symmetric.
// Stage 2 (Execute): copy into flat storage.
// Complexity: O(n²) time and memory.
func New(rows [][]int) (*Matrix, error) {
	// Nil input is an invalid argument, not an empty graph.
	if rows == nil {
		return nil, ErrNilInput
	}
	n := len(rows)
	if err := validateSquare(n, func(i int) int { return len(rows[i]) }); err != nil {
		return nil, err
	}

	data := make([]bool, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch rows[i][j] {
			case 0:
			case 1:
				data[i*n+j] = true
			default:
				return nil, adjacencyErrorf("New", i, j, ErrNonBinary)
			}
		}
	}

	m := &Matrix{n: n, data: data}
	if err := m.validate("New"); err != nil {
		return nil, err
	}

	return m, nil
}

// FromBools builds a Matrix from a dense boolean matrix.
// The input is copied; later changes to rows do not affect the Matrix.
// Complexity: O(n²).
func FromBools(rows [][]bool) (*Matrix, error) {
	if rows == nil {
		return nil, ErrNilInput
	}
	n := len(rows)
	if err := validateSquare(n, func(i int) int { return len(rows[i]) }); err != nil {
		return nil, err
	}

	data := make([]bool, n*n)
	for i := 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], rows[i])
	}

	m := &Matrix{n: n, data: data}
	if err := m.validate("FromBools"); err != nil {
		return nil, err
	}

	return m, nil
}

// Empty returns the edgeless graph on n vertices (n ≥ 0).
func Empty(n int) *Matrix {
	if n < 0 {
		n = 0
	}

	return &Matrix{n: n, data: make([]bool, n*n)}
}

// VertexCount returns n.
func (m *Matrix) VertexCount() int { return m.n }

// Has reports whether {i,j} is an edge. Out-of-range indices report false.
// Complexity: O(1).
func (m *Matrix) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}

	return m.data[i*m.n+j]
}

// At returns A[i,j] as 0 or 1, or ErrOutOfRange.
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0, adjacencyErrorf("At", i, j, ErrOutOfRange)
	}
	if m.data[i*m.n+j] {
		return 1, nil
	}

	return 0, nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []bool {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]bool, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// Rows returns a dense 0/1 copy of the relation.
// Complexity: O(n²).
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = make([]int, m.n)
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Degree returns the number of neighbours of i (0 for out-of-range i).
// Complexity: O(n).
func (m *Matrix) Degree(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}
	d := 0
	for _, e := range m.data[i*m.n : (i+1)*m.n] {
		if e {
			d++
		}
	}

	return d
}

// Degrees returns the degree of every vertex in index order.
func (m *Matrix) Degrees() []int {
	out := make([]int, m.n)
	for i := range out {
		out[i] = m.Degree(i)
	}

	return out
}

// MaxDegree returns Δ(G); 0 for the empty graph.
func (m *Matrix) MaxDegree() int {
	best := 0
	for i := 0; i < m.n; i++ {
		if d := m.Degree(i); d > best {
			best = d
		}
	}

	return best
}

// Neighbors returns the neighbours of i in ascending order.
func (m *Matrix) Neighbors(i int) []int {
	if i < 0 || i >= m.n {
		return nil
	}
	out := make([]int, 0, m.Degree(i))
	for j := 0; j < m.n; j++ {
		if m.data[i*m.n+j] {
			out = append(out, j)
		}
	}

	return out
}

// EdgeCount returns |E|, counting each undirected edge once.
// Complexity: O(n²) over the upper triangle.
func (m *Matrix) EdgeCount() int {
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				count++
			}
		}
	}

	return count
}

// IsComplete reports whether every off-diagonal pair is an edge.
// Graphs with n ≤ 1 are complete.
func (m *Matrix) IsComplete() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if !m.data[i*m.n+j] {
				return false
			}
		}
	}

	return true
}

// Density returns |E| / (n(n-1)/2), or 0 when n < 2.
func (m *Matrix) Density() float64 {
	if m.n < 2 {
		return 0
	}
	pairs := m.n * (m.n - 1) / 2

	return float64(m.EdgeCount()) / float64(pairs)
}

// Equal reports whether m and o describe the same relation.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders the matrix as n lines of space-separated 0/1 digits.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.n * m.n * 2)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
