// SPDX-License-Identifier: MIT
// Package: graphinv/autgroup
//
// errors.go — sentinel errors. Exec, I/O and context errors are wrapped
// alongside ErrProcess so both stay visible to errors.Is.

package autgroup

import "errors"

var (
	// ErrProcess reports that the external tool could not be started, or
	// was killed before it printed a group order.
	ErrProcess = errors.New("autgroup: external process failed")

	// ErrNoGroupOrder reports that the output stream ended without a line
	// containing '='.
	ErrNoGroupOrder = errors.New("autgroup: no group order in output")

	// ErrBadGroupOrder reports a '=' line with no digits after the last '='.
	ErrBadGroupOrder = errors.New("autgroup: malformed group order")

	// ErrTooLarge is returned by BruteForce above its vertex limit.
	ErrTooLarge = errors.New("autgroup: graph too large for brute force")

	// ErrBadColors is returned when colors does not match the vertex count.
	ErrBadColors = errors.New("autgroup: colors length mismatch")
)
