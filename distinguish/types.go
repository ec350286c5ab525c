package distinguish

import (
	"log/slog"
	"time"
)

// NotFound is the Lite result when the estimate exceeds maxColors.
const NotFound = -1

// DefaultGroupCache is the number of automorphisms Exact keeps in memory
// when Options.GroupCache is zero.
const DefaultGroupCache = 1 << 15

// Options tunes Exact.
type Options struct {
	// TimeLimit bounds the whole call, group enumeration included; zero
	// means no limit.
	TimeLimit time.Duration

	// GroupCache caps how many automorphisms are kept for the per-leaf
	// test. Larger groups are re-enumerated at every leaf in O(n) memory.
	// Zero means DefaultGroupCache; negative disables the cache.
	GroupCache int

	// Log receives Debug records per attempted color count.
	// Nil means slog.Default().
	Log *slog.Logger
}

// DefaultOptions returns an unbounded, default-logger configuration.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of Exact.
type Result struct {
	// Number is the distinguishing number when Found, otherwise the last
	// color count tried (maxColors, or the count in progress on timeout).
	Number int

	// Found reports whether a distinguishing coloring was found.
	Found bool

	// Coloring is the first distinguishing coloring found, 1-based; nil when
	// not Found.
	Coloring []int

	// Visited counts complete colorings checked across all color counts.
	Visited uint64

	// GroupOrder is |Aut(G)| of the uncolored graph, identity included.
	GroupOrder int
}
