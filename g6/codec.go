// SPDX-License-Identifier: MIT
// Package: graphinv/g6
//
// codec.go — Decode / Encode for the compact code.
//
// Decode runs in two stages:
//   1. Validate the whole string serially (length, alphabet, padding). After
//      this stage no decode error is possible.
//   2. Scatter bits into rows in parallel. Each worker owns a disjoint range of
//      output rows and writes only to them, so no locking is needed: row r is
//      filled by reading pair(min(r,c), max(r,c)) for every column c.

package g6

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/graphinv/adjacency"
	"golang.org/x/sync/errgroup"
)

const (
	// Offset is added to every 6-bit group and to the vertex count.
	Offset = 63
	// MaxVertices is the largest n a single length byte can carry.
	MaxVertices = 126 - Offset
	// groupBits is the number of payload bits per character.
	groupBits = 6
	// parallelMinVertices is the size below which decode stays on one goroutine.
	parallelMinVertices = 32
)

// pairCount returns n(n-1)/2.
func pairCount(n int) int { return n * (n - 1) / 2 }

// bodyLen returns the number of body characters for n vertices.
func bodyLen(n int) int { return (pairCount(n) + groupBits - 1) / groupBits }

// pairIndex returns the bit position of (i,j), i<j, in row-major upper-triangular order.
func pairIndex(n, i, j int) int {
	return i*n - i*(i+1)/2 + (j - i - 1)
}

// bitAt reads bit k of the body, MSB first within each character.
func bitAt(body string, k int) bool {
	v := body[k/groupBits] - Offset

	return v&(1<<(groupBits-1-k%groupBits)) != 0
}

// VertexCount returns the vertex count declared by code without decoding the body.
func VertexCount(code string) (int, error) {
	if len(code) == 0 {
		return 0, fmt.Errorf("VertexCount: empty code: %w", ErrTruncated)
	}
	c := code[0]
	if c < Offset || c > Offset+MaxVertices {
		return 0, fmt.Errorf("VertexCount: length byte %q: %w", c, ErrBadChar)
	}

	return int(c - Offset), nil
}

// Validate checks that code is a well-formed compact code.
// Complexity: O(len(code)).
func Validate(code string) error {
	n, err := VertexCount(code)
	if err != nil {
		return err
	}
	body := code[1:]
	want := bodyLen(n)
	if len(body) < want {
		return fmt.Errorf("Validate: n=%d needs %d characters, got %d: %w", n, want, len(body), ErrTruncated)
	}
	if len(body) > want {
		return fmt.Errorf("Validate: n=%d needs %d characters, got %d: %w", n, want, len(body), ErrTrailing)
	}
	for k := 0; k < len(body); k++ {
		if body[k] < Offset || body[k] > Offset+63 {
			return fmt.Errorf("Validate: position %d (%q): %w", k+1, body[k], ErrBadChar)
		}
	}
	// Padding bits live only in the last character.
	if pad := want*groupBits - pairCount(n); pad > 0 {
		last := body[want-1] - Offset
		if last&(1<<pad-1) != 0 {
			return fmt.Errorf("Validate: %d padding bits: %w", pad, ErrPadding)
		}
	}

	return nil
}

// Decode parses code into an adjacency matrix.
// Any malformed input fails with an error wrapping ErrFormat; no partial
// matrix is returned.
// Complexity: O(n²) work, spread over GOMAXPROCS workers for n ≥ 32.
func Decode(code string) (*adjacency.Matrix, error) {
	if err := Validate(code); err != nil {
		return nil, err
	}
	n := int(code[0] - Offset)
	body := code[1:]

	rows := make([][]bool, n)
	fill := func(lo, hi int) {
		for r := lo; r < hi; r++ {
			row := make([]bool, n)
			for c := 0; c < n; c++ {
				switch {
				case c < r:
					row[c] = bitAt(body, pairIndex(n, c, r))
				case c > r:
					row[c] = bitAt(body, pairIndex(n, r, c))
				}
			}
			rows[r] = row
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if n < parallelMinVertices || workers < 2 {
		fill(0, n)
	} else {
		var eg errgroup.Group
		chunk := (n + workers - 1) / workers
		for lo := 0; lo < n; lo += chunk {
			lo, hi := lo, min(lo+chunk, n)
			eg.Go(func() error {
				fill(lo, hi)
				return nil
			})
		}
		// Workers cannot fail once Validate has passed.
		_ = eg.Wait()
	}

	return adjacency.FromBools(rows)
}

// Encode returns the compact code of m.
// Returns ErrNilMatrix for nil m and ErrTooLarge for n > MaxVertices.
// Complexity: O(n²).
func Encode(m *adjacency.Matrix) (string, error) {
	if m == nil {
		return "", ErrNilMatrix
	}
	n := m.VertexCount()
	if n > MaxVertices {
		return "", fmt.Errorf("Encode: n=%d > %d: %w", n, MaxVertices, ErrTooLarge)
	}

	out := make([]byte, 1+bodyLen(n))
	out[0] = byte(n + Offset)

	var (
		k   int  // running bit index
		acc byte // current 6-bit group
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			acc <<= 1
			if m.Has(i, j) {
				acc |= 1
			}
			k++
			if k%groupBits == 0 {
				out[k/groupBits] = acc + Offset
				acc = 0
			}
		}
	}
	// Flush a partial last group, left-aligned.
	if rem := k % groupBits; rem != 0 {
		acc <<= groupBits - rem
		out[k/groupBits+1] = acc + Offset
	}

	return string(out), nil
}

// MustEncode is Encode for callers that already hold a valid small matrix.
// It panics on error and is intended for tests and fixtures.
func MustEncode(m *adjacency.Matrix) string {
	s, err := Encode(m)
	if err != nil {
		panic(err)
	}

	return s
}
