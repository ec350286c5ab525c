// SPDX-License-Identifier: MIT
// Package: graphinv/distinguish
//
// exact.go — backtracking search for the distinguishing number.
//
// Search contract:
//   • Phase 1 enumerates Aut(G) of the uncolored graph once, keeping at most
//     Options.GroupCache non-identity members. A larger group is only counted
//     and phase 2 re-enumerates permutations at every leaf instead.
//   • Phase 2: k runs 1..maxColors; for each k the colors of vertices 0..n-1
//     are assigned depth-first, colors 1..k in ascending order.
//   • At depth n the coloring is accepted iff no non-identity automorphism
//     preserves it. Acceptance ends the whole search.
//   • Vertex slots are reset to zero when their branch is exhausted.
//   • The deadline is polled every deadlineMask+1 events in both phases,
//     where an event is one permutation or one leaf.
//
// Complexity: O(n!·n²) for phase 1, then O(|Aut(G)|·n) per leaf when the
// group is cached or O(n!·n²) per leaf when it is not.
// Memory: O(min(|Aut(G)|, GroupCache)·n) plus O(n) search state.

package distinguish

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/katalvlaran/graphinv/permute"
)

const (
	methodExact = "Exact"
	// deadlineMask sets how often (in events) the deadline is polled.
	deadlineMask = 4095
)

// engine holds the search state for one Exact call.
type engine struct {
	m      *adjacency.Matrix
	n      int
	k      int
	colors []int // current partial coloring, 0 = unassigned

	group  [][]int // non-identity automorphisms; nil when uncached
	cached bool
	order  int // |Aut(G)|, identity included

	visited uint64 // complete colorings checked
	events  uint64 // permutations and leaves, for deadline polling

	useDeadline bool
	deadline    time.Time
	expired     bool
}

// deadlineCheck counts one event and reports whether the time budget is
// gone, polling the clock once every deadlineMask+1 events.
func (e *engine) deadlineCheck() bool {
	e.events++
	if e.expired {
		return true
	}
	if !e.useDeadline || (e.events&deadlineMask) != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.expired = true
	}

	return e.expired
}

// enumerate fills order and, up to limit members, group. It reports false
// when the deadline expired first.
func (e *engine) enumerate(limit int) bool {
	e.cached = limit > 0
	return permute.Each(e.n, func(p []int) bool {
		if e.deadlineCheck() {
			return false
		}
		if !permute.PreservesAdjacency(e.m, p) {
			return true
		}
		e.order++
		if permute.IsIdentity(p) || !e.cached {
			return true
		}
		if len(e.group) == limit {
			e.group, e.cached = nil, false
			return true
		}
		e.group = append(e.group, append([]int(nil), p...))

		return true
	})
}

// broken reports whether the current complete coloring is preserved by no
// non-identity automorphism.
func (e *engine) broken() bool {
	if e.cached {
		for _, p := range e.group {
			if permute.PreservesColors(p, e.colors) {
				return false
			}
		}

		return true
	}

	broken := true
	permute.Each(e.n, func(p []int) bool {
		if e.deadlineCheck() {
			return false
		}
		if permute.IsIdentity(p) || !permute.PreservesColors(p, e.colors) {
			return true
		}
		if permute.PreservesAdjacency(e.m, p) {
			broken = false
			return false
		}

		return true
	})

	return broken && !e.expired
}

// try assigns colors to vertices index..n-1; true means a distinguishing
// coloring now sits in e.colors.
func (e *engine) try(index int) bool {
	if index == e.n {
		e.visited++
		if e.deadlineCheck() {
			return false
		}

		return e.broken()
	}
	for c := 1; c <= e.k; c++ {
		e.colors[index] = c
		if e.try(index + 1) {
			return true
		}
		if e.expired {
			return false
		}
	}
	e.colors[index] = 0

	return false
}

// Exact returns the distinguishing number of m searched up to maxColors.
//
// Errors: ErrNilMatrix, ErrBadMaxColors, ErrTimeLimit. On ErrTimeLimit the
// Result holds the partial Visited count and the k in progress; Number is 0
// when the limit hit during group enumeration.
func Exact(m *adjacency.Matrix, maxColors int, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if maxColors < 1 {
		return Result{}, fmt.Errorf("%s: maxColors=%d: %w", methodExact, maxColors, ErrBadMaxColors)
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	limit := opts.GroupCache
	if limit == 0 {
		limit = DefaultGroupCache
	}

	e := &engine{
		m:      m,
		n:      m.VertexCount(),
		colors: make([]int, m.VertexCount()),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	if !e.enumerate(limit) {
		return Result{}, fmt.Errorf("%s: enumerating automorphisms after %d permutations: %w",
			methodExact, e.events, ErrTimeLimit)
	}
	log.Debug("distinguish: automorphism group enumerated",
		"vertices", e.n, "order", e.order, "cached", e.cached)

	for k := 1; k <= maxColors; k++ {
		e.k = k
		log.Debug("distinguish: trying color count", "k", k, "visited", e.visited)
		if e.try(0) {
			log.Debug("distinguish: distinguishing coloring found", "k", k, "coloring", e.colors)
			return Result{
				Number:     k,
				Found:      true,
				Coloring:   append([]int(nil), e.colors...),
				Visited:    e.visited,
				GroupOrder: e.order,
			}, nil
		}
		if e.expired {
			return Result{Number: k, Visited: e.visited, GroupOrder: e.order},
				fmt.Errorf("%s: k=%d after %d colorings: %w", methodExact, k, e.visited, ErrTimeLimit)
		}
	}

	log.Debug("distinguish: color bound exhausted", "maxColors", maxColors, "visited", e.visited)

	return Result{Number: maxColors, Visited: e.visited, GroupOrder: e.order}, nil
}

// IsDistinguishing reports whether colors is preserved by no non-identity
// automorphism of m. It enumerates all n! permutations.
func IsDistinguishing(m *adjacency.Matrix, colors []int) bool {
	if m == nil || len(colors) != m.VertexCount() {
		return false
	}

	return permute.Each(m.VertexCount(), func(p []int) bool {
		return permute.IsIdentity(p) || !permute.IsAutomorphism(m, p, colors)
	})
}
