// Package autgroup answers "how large is the automorphism group of this
// graph, optionally restricted to a vertex coloring?".
//
// The Oracle interface has two implementations:
//
//   - Process runs an external nauty-family tool (pickg, dreadnaut), feeds
//     it the graph text on stdin, and scrapes the group order from the
//     first or last output line containing '='. Presets: Pickg, Dreadnaut.
//   - BruteForce decodes a compact code and counts automorphisms in-process
//     by enumerating all n! permutations. Exact but only practical for
//     small n.
//
// Timeouts are the caller's: both implementations honor ctx.
package autgroup

import "context"

// Oracle reports |Aut(G)|, or the order of the color-preserving subgroup
// when colors is non-nil. graphText is whatever the oracle expects on input.
type Oracle interface {
	GroupOrder(ctx context.Context, graphText string, colors []int) (uint64, error)
}
