// SPDX-License-Identifier: MIT
// Package: graphinv/adjacency
//
// errors.go — sentinel errors for the adjacency package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach method context with fmt.Errorf("%s: %w", method, ErrX).
//   • Constructors never return a partially built Matrix together with an error.

package adjacency

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a constructor receives a nil matrix,
	// degree sequence or graph.
	ErrNilInput = errors.New("adjacency: nil input")

	// ErrNonSquare indicates that the rows of an input matrix do not all have
	// length equal to the number of rows.
	ErrNonSquare = errors.New("adjacency: matrix is not square")

	// ErrNonBinary indicates an entry other than 0 or 1.
	ErrNonBinary = errors.New("adjacency: entry is not 0 or 1")

	// ErrNonZeroDiagonal indicates a self-loop (A[i,i] != 0).
	ErrNonZeroDiagonal = errors.New("adjacency: diagonal not zero")

	// ErrAsymmetry indicates A[i,j] != A[j,i] for some pair.
	ErrAsymmetry = errors.New("adjacency: matrix is not symmetric")

	// ErrOutOfRange indicates a vertex index outside [0,n).
	ErrOutOfRange = errors.New("adjacency: vertex index out of range")

	// ErrNotGraphical indicates a degree sequence that no simple graph realises.
	ErrNotGraphical = errors.New("adjacency: degree sequence is not graphical")
)

// adjacencyErrorf tags err with the method name and the offending cell.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
