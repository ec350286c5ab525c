package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/stretchr/testify/require"
)

func TestFromDegreeSequence_Realises(t *testing.T) {
	t.Parallel()

	seqs := [][]int{
		{},
		{0},
		{1, 1},
		{2, 2, 2},
		{3, 3, 3, 3},
		{3, 2, 2, 2, 1},
		{1, 2, 1},
		{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	}
	for _, seq := range seqs {
		m, err := adjacency.FromDegreeSequence(seq)
		require.NoError(t, err, "seq=%v", seq)
		require.Equal(t, seq, m.Degrees(), "seq=%v", seq)
		require.NoError(t, adjacency.Validate(m))
	}
}

func TestFromDegreeSequence_Deterministic(t *testing.T) {
	a, err := adjacency.FromDegreeSequence([]int{3, 2, 2, 2, 1})
	require.NoError(t, err)
	b, err := adjacency.FromDegreeSequence([]int{3, 2, 2, 2, 1})
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestFromDegreeSequence_Rejects(t *testing.T) {
	t.Parallel()

	_, err := adjacency.FromDegreeSequence(nil)
	require.ErrorIs(t, err, adjacency.ErrNilInput)

	bad := [][]int{
		{1},          // degree ≥ n
		{-1, 1},      // negative
		{1, 1, 1},    // odd sum
		{3, 3, 1, 1}, // even sum but not graphical
		{2, 2, 0},    // vertex 2 cannot help
	}
	for _, seq := range bad {
		_, err := adjacency.FromDegreeSequence(seq)
		require.ErrorIs(t, err, adjacency.ErrNotGraphical, "seq=%v", seq)
	}
}
