// SPDX-License-Identifier: MIT
// Package: graphinv/coloring
//
// errors.go — sentinel errors for the coloring package.

package coloring

import "errors"

var (
	// ErrNilMatrix is returned when a nil adjacency matrix is passed in.
	ErrNilMatrix = errors.New("coloring: nil matrix")

	// ErrPaletteExhausted is returned when a bounded palette has no free color
	// for some vertex.
	ErrPaletteExhausted = errors.New("coloring: palette exhausted")

	// ErrBadPalette is returned for a palette size < 1.
	ErrBadPalette = errors.New("coloring: palette size must be ≥ 1")
)
