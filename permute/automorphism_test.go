package permute_test

import (
	"testing"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/katalvlaran/graphinv/builder"
	"github.com/katalvlaran/graphinv/permute"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *adjacency.Matrix {
	t.Helper()
	m, err := builder.Build(nil, cons...)
	require.NoError(t, err)

	return m
}

func TestIsAutomorphism_Path3(t *testing.T) {
	m := mustBuild(t, builder.Path(3))

	require.True(t, permute.IsAutomorphism(m, []int{0, 1, 2}, nil))
	require.True(t, permute.IsAutomorphism(m, []int{2, 1, 0}, nil))
	require.False(t, permute.IsAutomorphism(m, []int{1, 0, 2}, nil))

	// The coloring {1,2,1} keeps the reflection; {1,2,2} breaks it.
	require.True(t, permute.IsAutomorphism(m, []int{2, 1, 0}, []int{1, 2, 1}))
	require.False(t, permute.IsAutomorphism(m, []int{2, 1, 0}, []int{1, 2, 2}))
}

func TestIsAutomorphism_BadArguments(t *testing.T) {
	m := mustBuild(t, builder.Path(3))

	require.False(t, permute.IsAutomorphism(nil, []int{0}, nil))
	require.False(t, permute.IsAutomorphism(m, []int{0, 1}, nil))
	require.False(t, permute.IsAutomorphism(m, []int{0, 0, 0}, nil))
	require.False(t, permute.IsAutomorphism(m, []int{0, 1, 2}, []int{1, 1}))
}

func TestCountAutomorphisms_KnownGroups(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    *adjacency.Matrix
		want uint64
	}{
		{"K1", mustBuild(t, builder.Complete(1)), 1},
		{"K4", mustBuild(t, builder.Complete(4)), 24},
		{"empty4", mustBuild(t, builder.Empty(4)), 24},
		{"P3", mustBuild(t, builder.Path(3)), 2},
		{"P4", mustBuild(t, builder.Path(4)), 2},
		{"C5", mustBuild(t, builder.Cycle(5)), 10},
		{"C6", mustBuild(t, builder.Cycle(6)), 12},
		{"Star5", mustBuild(t, builder.Star(5)), 24},
		{"K2,3", mustBuild(t, builder.CompleteBipartite(2, 3)), 12},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, permute.CountAutomorphisms(tc.m, nil))
		})
	}
}

func TestAutomorphisms_IdentityFirst(t *testing.T) {
	m := mustBuild(t, builder.Cycle(4))
	group := permute.Automorphisms(m, nil)
	require.Len(t, group, 8)
	require.True(t, permute.IsIdentity(group[0]))
	for _, p := range group {
		require.True(t, permute.IsAutomorphism(m, p, nil))
	}

	// Coloring opposite corners alike leaves the two reflections through
	// those corners and the half-turn.
	colored := permute.Automorphisms(m, []int{1, 2, 1, 2})
	require.Len(t, colored, 4)
	require.Equal(t, uint64(4), permute.CountAutomorphisms(m, []int{1, 2, 1, 2}))

	require.Nil(t, permute.Automorphisms(m, []int{1}))
	require.Equal(t, uint64(0), permute.CountAutomorphisms(nil, nil))
}

func TestPreservesAdjacency(t *testing.T) {
	t.Parallel()

	// Path 0-1-2: the end swap is an automorphism, moving the middle is not.
	m, err := adjacency.New([][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	require.NoError(t, err)
	require.True(t, permute.PreservesAdjacency(m, []int{2, 1, 0}))
	require.False(t, permute.PreservesAdjacency(m, []int{1, 0, 2}))
	require.True(t, permute.PreservesAdjacency(m, permute.Identity(3)))
}
