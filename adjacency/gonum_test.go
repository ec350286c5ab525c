package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
)

func TestGonum_RoundTrip(t *testing.T) {
	m, err := adjacency.New([][]int{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
	require.NoError(t, err)

	g := m.ToGonum()
	require.Equal(t, 4, g.Nodes().Len())
	require.True(t, g.HasEdgeBetween(0, 2))
	require.False(t, g.HasEdgeBetween(2, 3))

	back, err := adjacency.FromGonum(g)
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

func TestFromGonum_SparseIDs(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(40)})
	g.AddNode(simple.Node(25))

	m, err := adjacency.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, 3, m.VertexCount())
	require.True(t, m.Has(0, 2)) // 10 → 0, 25 → 1, 40 → 2
	require.Equal(t, 1, m.EdgeCount())
}

func TestFromGonum_Rejects(t *testing.T) {
	_, err := adjacency.FromGonum(nil)
	require.ErrorIs(t, err, adjacency.ErrNilInput)

	d := simple.NewDirectedGraph()
	d.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	_, err = adjacency.FromGonum(d)
	require.ErrorIs(t, err, adjacency.ErrAsymmetry)
}
