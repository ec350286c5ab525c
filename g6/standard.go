// SPDX-License-Identifier: MIT
// Package: graphinv/g6
//
// standard.go — conversion to and from standard (column-major) graph6 strings
// through gonum, for exchange with nauty-family tools.

package g6

import (
	"fmt"

	"github.com/katalvlaran/graphinv/adjacency"
	"gonum.org/v1/gonum/graph/encoding/graph6"
)

// ToStandard returns the standard graph6 encoding of m.
func ToStandard(m *adjacency.Matrix) (string, error) {
	if m == nil {
		return "", ErrNilMatrix
	}

	return string(graph6.Encode(m.ToGonum())), nil
}

// FromStandard parses a standard graph6 string.
func FromStandard(s string) (*adjacency.Matrix, error) {
	g := graph6.Graph(s)
	if !graph6.IsValid(g) {
		return nil, fmt.Errorf("FromStandard: %q: %w", s, ErrFormat)
	}

	return adjacency.FromGonum(g)
}

// Transcode converts a compact code into the equivalent standard graph6 string.
func Transcode(code string) (string, error) {
	m, err := Decode(code)
	if err != nil {
		return "", err
	}

	return ToStandard(m)
}
