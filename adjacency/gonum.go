// SPDX-License-Identifier: MIT
// Package: graphinv/adjacency
//
// gonum.go — conversions to and from gonum graphs.
//
// ToGonum emits node IDs 0..n-1. FromGonum sorts the nodes of g by ID and maps
// them to consecutive indices, so IDs need not be dense.

package adjacency

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum returns a gonum undirected graph with nodes 0..n-1 and the same edges.
// Complexity: O(n²).
func (m *Matrix) ToGonum() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < m.n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
			}
		}
	}

	return g
}

// FromGonum builds a Matrix from g. Directed graphs are accepted only when
// their edge set is symmetric; self-loops are rejected.
// Complexity: O(n log n + n²).
func FromGonum(g graph.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilInput
	}

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(a, b int) bool { return nodes[a].ID() < nodes[b].ID() })

	n := len(nodes)
	index := make(map[int64]int, n)
	for i, u := range nodes {
		index[u.ID()] = i
	}

	data := make([]bool, n*n)
	for i, u := range nodes {
		for _, v := range graph.NodesOf(g.From(u.ID())) {
			data[i*n+index[v.ID()]] = true
		}
	}

	m := &Matrix{n: n, data: data}
	if err := m.validate("FromGonum"); err != nil {
		return nil, err
	}

	return m, nil
}
