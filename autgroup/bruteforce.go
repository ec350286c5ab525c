// SPDX-License-Identifier: MIT
// Package: graphinv/autgroup
//
// bruteforce.go — in-process Oracle over the compact code.
// Complexity: O(n!·n²); ctx is polled every 4096 permutations.

package autgroup

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphinv/g6"
	"github.com/katalvlaran/graphinv/permute"
)

// DefaultBruteForceLimit bounds n for a zero BruteForce.
const DefaultBruteForceLimit = 10

const ctxPollMask = 4095

// BruteForce counts automorphisms by enumeration. graphText is a compact
// code as produced by g6.Encode.
type BruteForce struct {
	// MaxVertices rejects larger graphs; zero means DefaultBruteForceLimit.
	MaxVertices int
}

var _ Oracle = BruteForce{}

// GroupOrder implements Oracle.
func (b BruteForce) GroupOrder(ctx context.Context, graphText string, colors []int) (uint64, error) {
	m, err := g6.Decode(graphText)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodGroupOrder, err)
	}
	n := m.VertexCount()
	limit := b.MaxVertices
	if limit <= 0 {
		limit = DefaultBruteForceLimit
	}
	if n > limit {
		return 0, fmt.Errorf("%s: n=%d > %d: %w", methodGroupOrder, n, limit, ErrTooLarge)
	}
	if colors != nil && len(colors) != n {
		return 0, fmt.Errorf("%s: %d colors for %d vertices: %w", methodGroupOrder, len(colors), n, ErrBadColors)
	}

	var count, steps uint64
	complete := permute.Each(n, func(p []int) bool {
		steps++
		if steps&ctxPollMask == 0 && ctx.Err() != nil {
			return false
		}
		if permute.IsAutomorphism(m, p, colors) {
			count++
		}

		return true
	})
	if !complete {
		return 0, fmt.Errorf("%s: %w", methodGroupOrder, ctx.Err())
	}

	return count, nil
}
