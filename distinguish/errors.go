// SPDX-License-Identifier: MIT
// Package: graphinv/distinguish
//
// errors.go — sentinel errors. Exhausting maxColors is not an error; it is
// reported through Result.Found.

package distinguish

import "errors"

var (
	// ErrNilMatrix is returned when a nil adjacency matrix is passed in.
	ErrNilMatrix = errors.New("distinguish: nil matrix")

	// ErrBadMaxColors is returned for maxColors < 1.
	ErrBadMaxColors = errors.New("distinguish: maxColors must be ≥ 1")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before the
	// search settles.
	ErrTimeLimit = errors.New("distinguish: time limit exceeded")
)
