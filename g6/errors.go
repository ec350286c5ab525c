package g6

import "errors"

var (
	// ErrFormat is the umbrella for every malformed code. The more specific
	// errors below all wrap it, so errors.Is(err, ErrFormat) always matches.
	ErrFormat = errors.New("g6: malformed graph code")

	// ErrTruncated reports a body shorter than n(n-1)/2 bits require.
	ErrTruncated = fmtErr("g6: truncated graph code")

	// ErrTrailing reports characters after the last required group.
	ErrTrailing = fmtErr("g6: trailing characters in graph code")

	// ErrBadChar reports a character outside '?'..'~'.
	ErrBadChar = fmtErr("g6: character out of range")

	// ErrPadding reports non-zero padding bits in the last group.
	ErrPadding = fmtErr("g6: non-zero padding bits")

	// ErrTooLarge reports a graph with more than MaxVertices vertices.
	ErrTooLarge = errors.New("g6: graph too large for compact code")

	// ErrNilMatrix reports a nil matrix passed to an encoder.
	ErrNilMatrix = errors.New("g6: nil matrix")
)

// formatError is a named error that also matches ErrFormat.
type formatError struct{ msg string }

func fmtErr(msg string) error { return &formatError{msg: msg} }

func (e *formatError) Error() string { return e.msg }

func (e *formatError) Unwrap() error { return ErrFormat }
