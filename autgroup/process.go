// SPDX-License-Identifier: MIT
// Package: graphinv/autgroup
//
// process.go — subprocess-backed Oracle.
//
// Protocol:
//   • stdin: the graph text line, then "c <colors...>" when colors != nil,
//     then each Trailer line; stdin is closed afterwards.
//   • The configured Stream is scanned line by line. With LastMatch unset
//     the first line containing '=' is used and the rest is drained;
//     otherwise the last such line wins.
//   • The order is the digit run after the last '=' of that line (leading
//     blanks skipped).
//   • A non-zero exit after an order was parsed is logged at Warn, not
//     returned.

package autgroup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Stream selects which output of the tool carries the group order.
type Stream int

// Stream values.
const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}

	return "stdout"
}

const methodGroupOrder = "GroupOrder"

// Process runs Path with Args once per GroupOrder call.
type Process struct {
	Path string
	Args []string

	// Env is appended to the current environment.
	Env []string

	// Stream is where the group order is printed.
	Stream Stream

	// LastMatch selects the last '=' line instead of the first.
	LastMatch bool

	// Trailer lines are written after the graph and colors.
	Trailer []string

	// Log defaults to slog.Default().
	Log *slog.Logger
}

// Pickg returns the preset for nauty's pickg, which reports the group
// order on stderr.
func Pickg() *Process {
	return &Process{
		Path:   "pickg",
		Args:   []string{"-V", "--a"},
		Stream: Stderr,
	}
}

// Dreadnaut returns the preset for nauty's dreadnaut; the order is taken
// from the last '=' line on stdout.
func Dreadnaut() *Process {
	return &Process{
		Path:      "dreadnaut",
		Stream:    Stdout,
		LastMatch: true,
		Trailer:   []string{"x y z"},
	}
}

var _ Oracle = (*Process)(nil)

func (p *Process) logger() *slog.Logger {
	if p.Log != nil {
		return p.Log
	}

	return slog.Default()
}

// input renders what the tool reads on stdin.
func (p *Process) input(graphText string, colors []int) string {
	var b strings.Builder
	b.WriteString(graphText)
	b.WriteByte('\n')
	if colors != nil {
		b.WriteString("c")
		for _, c := range colors {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteByte('\n')
	}
	for _, line := range p.Trailer {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// GroupOrder implements Oracle.
func (p *Process) GroupOrder(ctx context.Context, graphText string, colors []int) (uint64, error) {
	log := p.logger().With("cmd", p.Path, "stream", p.Stream.String())

	cmd := exec.CommandContext(ctx, p.Path, p.Args...)
	if len(p.Env) > 0 {
		cmd.Env = append(os.Environ(), p.Env...)
	}
	cmd.Stdin = strings.NewReader(p.input(graphText, colors))

	var (
		out io.ReadCloser
		err error
	)
	if p.Stream == Stderr {
		out, err = cmd.StderrPipe()
	} else {
		out, err = cmd.StdoutPipe()
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", methodGroupOrder, ErrProcess, err)
	}

	log.Debug("autgroup: starting process", "args", p.Args)
	if err = cmd.Start(); err != nil {
		return 0, fmt.Errorf("%s: %s: %w: %w", methodGroupOrder, p.Path, ErrProcess, err)
	}

	line, found, scanErr := p.scan(out)
	waitErr := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return 0, fmt.Errorf("%s: %s: %w: %w", methodGroupOrder, p.Path, ErrProcess, ctxErr)
	}
	if !found {
		if scanErr != nil {
			return 0, fmt.Errorf("%s: %s: %w: %w", methodGroupOrder, p.Path, ErrNoGroupOrder, scanErr)
		}
		if waitErr != nil {
			return 0, fmt.Errorf("%s: %s: %w: %w", methodGroupOrder, p.Path, ErrNoGroupOrder, waitErr)
		}

		return 0, fmt.Errorf("%s: %s: %w", methodGroupOrder, p.Path, ErrNoGroupOrder)
	}

	order, err := ParseOrder(line)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", methodGroupOrder, p.Path, err)
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		log.Warn("autgroup: process exited non-zero after reporting",
			"code", exitErr.ExitCode(), "order", order)
	} else if waitErr != nil {
		log.Warn("autgroup: wait failed after reporting", "err", waitErr, "order", order)
	}
	log.Debug("autgroup: group order", "order", order, "line", line)

	return order, nil
}

// scan reads r to EOF and returns the selected '=' line.
func (p *Process) scan(r io.Reader) (line string, found bool, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := sc.Text()
		if !strings.Contains(text, "=") {
			continue
		}
		line, found = text, true
		if !p.LastMatch {
			// The tool may block on a full pipe.
			_, _ = io.Copy(io.Discard, r)

			return line, found, nil
		}
	}
	if err = sc.Err(); err != nil {
		// Scanning stopped early (e.g. bufio.ErrTooLong); the rest must
		// still be consumed before Wait.
		_, _ = io.Copy(io.Discard, r)
	}

	return line, found, err
}

// ParseOrder extracts the digit run following the last '=' in line.
//
// Errors: ErrNoGroupOrder (no '='), ErrBadGroupOrder (no digits or
// overflow).
func ParseOrder(line string) (uint64, error) {
	at := strings.LastIndexByte(line, '=')
	if at < 0 {
		return 0, ErrNoGroupOrder
	}
	rest := strings.TrimLeft(line[at+1:], " \t")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%q: %w", line, ErrBadGroupOrder)
	}
	v, err := strconv.ParseUint(rest[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", line, ErrBadGroupOrder, err)
	}

	return v, nil
}
