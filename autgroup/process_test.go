package autgroup_test

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/graphinv/autgroup"
	"github.com/katalvlaran/graphinv/builder"
	"github.com/katalvlaran/graphinv/g6"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

const helperEnv = "GRAPHINV_WANT_HELPER_PROCESS=1"

// helper returns a Process that re-executes the test binary as a fake tool
// running mode.
func helper(t *testing.T, mode string, stream autgroup.Stream) *autgroup.Process {
	t.Helper()

	return &autgroup.Process{
		Path:   os.Args[0],
		Args:   []string{"-test.run=TestHelperProcess", "--", mode},
		Env:    []string{helperEnv},
		Stream: stream,
		Log:    slogt.New(t),
	}
}

// TestHelperProcess is not a real test. It stands in for pickg/dreadnaut.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GRAPHINV_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(64)
	}

	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	switch args[1] {
	case "pickg":
		fmt.Fprintln(os.Stderr, ">A pickg")
		fmt.Fprintf(os.Stderr, ">Z grpsize=%d\n", order(lines))
		fmt.Fprintln(os.Stderr, "later = 999")
	case "dreadnaut":
		if lines[len(lines)-1] != "x y z" {
			os.Exit(5)
		}
		fmt.Println("level 1: 2 orbits; grpsize=1")
		fmt.Printf("%d orbits; grpsize=%d; 0 gens\n", len(lines), order(lines))
	case "fail-after":
		fmt.Fprintln(os.Stderr, "grpsize=4")
		os.Exit(3)
	case "silent":
		fmt.Fprintln(os.Stderr, "nothing here")
	case "crash":
		os.Exit(2)
	case "bad":
		fmt.Fprintln(os.Stderr, "grpsize=lots")
	case "sleep":
		time.Sleep(time.Minute)
	case "long-line":
		// One line past the scanner's 64KiB token limit, then far more than
		// a pipe buffer holds.
		fmt.Fprintln(os.Stderr, strings.Repeat("x", 70<<10))
		for i := 0; i < 1<<14; i++ {
			fmt.Fprintln(os.Stderr, strings.Repeat("y", 63))
		}
		fmt.Fprintln(os.Stderr, "grpsize=2")
	}
	os.Exit(0)
}

// order recomputes the answer inside the helper from the stdin lines.
func order(lines []string) uint64 {
	var colors []int
	if len(lines) > 1 && strings.HasPrefix(lines[1], "c ") {
		for _, f := range strings.Fields(lines[1])[1:] {
			c, _ := strconv.Atoi(f)
			colors = append(colors, c)
		}
	}
	v, err := autgroup.BruteForce{}.GroupOrder(context.Background(), lines[0], colors)
	if err != nil {
		os.Exit(6)
	}

	return v
}

func code(t *testing.T, cons ...builder.Constructor) string {
	t.Helper()
	m, err := builder.Build(nil, cons...)
	require.NoError(t, err)
	s, err := g6.Encode(m)
	require.NoError(t, err)

	return s
}

func TestProcess_FirstMatchOnStderr(t *testing.T) {
	t.Parallel()

	got, err := helper(t, "pickg", autgroup.Stderr).GroupOrder(context.Background(), code(t, builder.Cycle(4)), nil)
	require.NoError(t, err)
	require.Equal(t, uint64(8), got)
}

func TestProcess_LastMatchWithColors(t *testing.T) {
	t.Parallel()

	p := helper(t, "dreadnaut", autgroup.Stdout)
	p.LastMatch = true
	p.Trailer = []string{"x y z"}
	// Coloring one end of P3 breaks the reflection.
	got, err := p.GroupOrder(context.Background(), code(t, builder.Path(3)), []int{1, 1, 2})
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)

	got, err = p.GroupOrder(context.Background(), code(t, builder.Path(3)), []int{1, 2, 1})
	require.NoError(t, err)
	require.Equal(t, uint64(2), got)
}

func TestProcess_NonZeroExitAfterResult(t *testing.T) {
	t.Parallel()

	got, err := helper(t, "fail-after", autgroup.Stderr).GroupOrder(context.Background(), "A_", nil)
	require.NoError(t, err)
	require.Equal(t, uint64(4), got)
}

func TestProcess_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode string
		want error
	}{
		{"silent", autgroup.ErrNoGroupOrder},
		{"crash", autgroup.ErrNoGroupOrder},
		{"bad", autgroup.ErrBadGroupOrder},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.mode, func(t *testing.T) {
			t.Parallel()
			_, err := helper(t, tc.mode, autgroup.Stderr).GroupOrder(context.Background(), "A_", nil)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProcess_CrashKeepsExitError(t *testing.T) {
	t.Parallel()

	_, err := helper(t, "crash", autgroup.Stderr).GroupOrder(context.Background(), "A_", nil)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.ExitCode())
}

func TestProcess_ContextDeadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err := helper(t, "sleep", autgroup.Stderr).GroupOrder(ctx, "A_", nil)
	require.ErrorIs(t, err, autgroup.ErrProcess)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_OverlongLineIsDrained(t *testing.T) {
	t.Parallel()

	// Without draining, Wait would block on the stalled writer until ctx
	// kills it.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := helper(t, "long-line", autgroup.Stderr).GroupOrder(ctx, "A_", nil)
	require.ErrorIs(t, err, autgroup.ErrNoGroupOrder)
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.NotErrorIs(t, err, autgroup.ErrProcess)
	require.NoError(t, ctx.Err())
}

func TestProcess_MissingBinary(t *testing.T) {
	t.Parallel()

	p := &autgroup.Process{Path: "graphinv-no-such-tool", Log: slogt.New(t)}
	_, err := p.GroupOrder(context.Background(), "A_", nil)
	require.ErrorIs(t, err, autgroup.ErrProcess)
}

func TestPresets(t *testing.T) {
	t.Parallel()

	p := autgroup.Pickg()
	require.Equal(t, "pickg", p.Path)
	require.Equal(t, autgroup.Stderr, p.Stream)
	require.False(t, p.LastMatch)

	d := autgroup.Dreadnaut()
	require.Equal(t, autgroup.Stdout, d.Stream)
	require.True(t, d.LastMatch)
	require.Equal(t, []string{"x y z"}, d.Trailer)
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want uint64
		err  error
	}{
		{"grpsize=48", 48, nil},
		{"a=1 b=72;", 72, nil},
		{"grpsize= 6 orbits", 6, nil},
		{"no equals", 0, autgroup.ErrNoGroupOrder},
		{"grpsize=", 0, autgroup.ErrBadGroupOrder},
		{"grpsize=1.2e3", 1, nil},
		{"grpsize=99999999999999999999999", 0, autgroup.ErrBadGroupOrder},
	}
	for _, tc := range cases {
		got, err := autgroup.ParseOrder(tc.line)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, tc.line)
			continue
		}
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, got, tc.line)
	}
}
