package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/graphinv/g6"
	"github.com/stretchr/testify/require"
)

// run executes the root command and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), err
}

func TestCLI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"gen cycle", "", []string{"gen", "cycle", "5"}, "DeS\n"},
		{"gen petersen standard", "", []string{"gen", "petersen", "--standard"}, "IheA@GUAo\n"},
		{"decode", "", []string{"decode", "Bg"}, "0 1 0\n1 0 1\n0 1 0\n"},
		{"encode", "0 1 1\n1 0 1\n\n110\n", []string{"encode"}, "Bw\n"},
		{"chromatic", "", []string{"chromatic", "--coloring", "Bg"}, "2\n0 1 0\n"},
		{"index", "", []string{"index", "Bw"}, "3\n"},
		{"distinguish", "", []string{"distinguish", "Bg"}, "2\n1 1 2\n"},
		{"distinguish lite", "", []string{"distinguish", "--lite", "Bw"}, "3\n"},
		{"distinguish exhausted", "", []string{"distinguish", "--max-colors", "3", "C~"}, "not found within 3 colors\n"},
		{"info", "", []string{"info", "Bw"}, "G6: Bw, distinguishing number: 3\n"},
		{"autgroup", "", []string{"autgroup", "DeS"}, "10\n"},
		{"autgroup colors", "", []string{"autgroup", "--colors", "1,1,2", "Bg"}, "1\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCLI_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "decode", "C")
	require.ErrorIs(t, err, g6.ErrFormat)

	cases := [][]string{
		{"gen", "nope", "3"},
		{"gen", "bipartite", "3"},
		{"gen", "cycle", "x"},
		{"autgroup", "--tool", "nope", "Bg"},
		{"autgroup", "--colors", "1,a,2", "Bg"},
		{"--log-level", "loud", "index", "Bw"},
	}
	for _, args := range cases {
		_, err := run(t, "", args...)
		require.Error(t, err, args)
	}

	_, err = run(t, "0 2\n2 0\n", "encode")
	require.Error(t, err)
	_, err = run(t, "\n", "encode")
	require.Error(t, err)
}

func TestCLI_RandomIsSeeded(t *testing.T) {
	t.Parallel()

	a, err := run(t, "", "gen", "random", "12", "--seed", "7", "--p", "0.4")
	require.NoError(t, err)
	b, err := run(t, "", "gen", "random", "12", "--seed", "7", "--p", "0.4")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
