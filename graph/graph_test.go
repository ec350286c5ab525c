package graph_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/katalvlaran/graphinv/autgroup"
	"github.com/katalvlaran/graphinv/builder"
	"github.com/katalvlaran/graphinv/distinguish"
	"github.com/katalvlaran/graphinv/g6"
	"github.com/katalvlaran/graphinv/graph"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func TestSingleVertex(t *testing.T) {
	t.Parallel()

	g, err := graph.New([][]int{{0}})
	require.NoError(t, err)
	require.Equal(t, 1, g.ChromaticNumber())
	require.Equal(t, 0, g.ChromaticIndex())

	res, err := g.DistinguishingNumber(3, distinguish.Options{Log: slogt.New(t)})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 1, res.Number)
}

func TestTriangle(t *testing.T) {
	t.Parallel()

	g, err := graph.New([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	require.Equal(t, 3, g.ChromaticNumber())
	require.Equal(t, 3, g.ChromaticIndex())
	require.Equal(t, 3, g.DistinguishingNumberLite(5))
	require.Equal(t, distinguish.NotFound, g.DistinguishingNumberLite(2))

	info, err := g.Info(5)
	require.NoError(t, err)
	require.Equal(t, "G6: Bw, distinguishing number: 3", info)
}

func TestPath3(t *testing.T) {
	t.Parallel()

	g, err := graph.New([][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, g.ChromaticNumber())

	res, err := g.DistinguishingNumber(5, distinguish.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.Number)
	require.Equal(t, []int{1, 1, 2}, res.Coloring)
	require.Equal(t, uint64(2), g.AutomorphismCount())
}

func TestFromG6_Truncated(t *testing.T) {
	t.Parallel()

	g, err := graph.FromG6("C")
	require.ErrorIs(t, err, g6.ErrFormat)
	require.Nil(t, g)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	g, err := graph.FromG6("C~")
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	code, err := g.G6()
	require.NoError(t, err)
	require.Equal(t, "C~", code)

	g, err = graph.FromStandardG6("Bg")
	require.NoError(t, err)
	require.True(t, g.Adjacency().Has(0, 1))
	require.True(t, g.Adjacency().Has(1, 2))
	require.False(t, g.Adjacency().Has(0, 2))

	g, err = graph.FromDegreeSequence([]int{1, 1})
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())

	_, err = graph.FromDegreeSequence([]int{3, 1})
	require.ErrorIs(t, err, adjacency.ErrNotGraphical)

	_, err = graph.FromMatrix(nil)
	require.ErrorIs(t, err, graph.ErrNilInput)

	_, err = graph.New([][]int{{0, 1}, {0, 0}})
	require.ErrorIs(t, err, adjacency.ErrAsymmetry)
}

func TestGroupOrder_BruteForceOracle(t *testing.T) {
	t.Parallel()

	m, err := builder.Build(nil, builder.Cycle(5))
	require.NoError(t, err)
	g, err := graph.FromMatrix(m)
	require.NoError(t, err)

	got, err := g.GroupOrder(context.Background(), autgroup.BruteForce{}, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(10), got)
	require.Equal(t, got, g.AutomorphismCount())

	got, err = g.GroupOrder(context.Background(), autgroup.BruteForce{}, []int{1, 1, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestGraph_TooLargeForCode(t *testing.T) {
	t.Parallel()

	g, err := graph.FromMatrix(adjacency.Empty(g6.MaxVertices + 1))
	require.NoError(t, err)
	_, err = g.G6()
	require.ErrorIs(t, err, g6.ErrTooLarge)
	_, err = g.Info(3)
	require.ErrorIs(t, err, g6.ErrTooLarge)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	t.Parallel()

	m, err := builder.Build(nil, builder.Petersen())
	require.NoError(t, err)
	g, err := graph.FromMatrix(m)
	require.NoError(t, err)
	want := g6.MustEncode(m)

	const readers = 8
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			code, err := g.G6()
			require.NoError(t, err)
			require.Equal(t, want, code)
			// 15 of 45 pairs: sparse branch.
			require.Equal(t, 3, g.DistinguishingNumberLite(5))
		}()
	}
	wg.Wait()
}
