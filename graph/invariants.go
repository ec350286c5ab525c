// SPDX-License-Identifier: MIT
// Package: graphinv/graph
//
// invariants.go — coloring, distinguishing and automorphism invariants.

package graph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphinv/autgroup"
	"github.com/katalvlaran/graphinv/coloring"
	"github.com/katalvlaran/graphinv/distinguish"
	"github.com/katalvlaran/graphinv/permute"
)

// ChromaticNumber is the color count of index-order greedy vertex coloring.
// It is an upper bound on χ(G), not necessarily χ(G).
func (g *Graph) ChromaticNumber() int {
	k, _ := coloring.ChromaticNumber(g.adj) // only fails on a nil matrix

	return k
}

// ChromaticIndex is the color count of greedy edge coloring.
func (g *Graph) ChromaticIndex() int {
	k, _ := coloring.ChromaticIndex(g.adj)

	return k
}

// VertexColoring returns the greedy vertex coloring itself.
func (g *Graph) VertexColoring() coloring.VertexResult {
	r, _ := coloring.GreedyVertex(g.adj)

	return r
}

// EdgeColoring returns the greedy edge coloring itself.
func (g *Graph) EdgeColoring() coloring.EdgeResult {
	r, _ := coloring.GreedyEdge(g.adj)

	return r
}

// DistinguishingNumber runs the exact solver up to maxColors.
func (g *Graph) DistinguishingNumber(maxColors int, opts distinguish.Options) (distinguish.Result, error) {
	return distinguish.Exact(g.adj, maxColors, opts)
}

// DistinguishingNumberLite returns the density estimate, or
// distinguish.NotFound when it exceeds maxColors.
func (g *Graph) DistinguishingNumberLite(maxColors int) int {
	d, _ := distinguish.Lite(g.adj, maxColors)

	return d
}

// AutomorphismCount returns |Aut(G)| by enumeration; cached after the
// first call.
func (g *Graph) AutomorphismCount() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.autOK {
		g.aut = permute.CountAutomorphisms(g.adj, nil)
		g.autOK = true
	}

	return g.aut
}

// GroupOrder asks oracle for the order of the color-preserving automorphism
// group, passing the compact code as graph text.
func (g *Graph) GroupOrder(ctx context.Context, oracle autgroup.Oracle, colors []int) (uint64, error) {
	code, err := g.G6()
	if err != nil {
		return 0, fmt.Errorf("graph.GroupOrder: %w", err)
	}

	return oracle.GroupOrder(ctx, code, colors)
}

// Info is the one-line summary "G6: <code>, distinguishing number: <lite>".
func (g *Graph) Info(maxColors int) (string, error) {
	code, err := g.G6()
	if err != nil {
		return "", fmt.Errorf("graph.Info: %w", err)
	}

	return fmt.Sprintf("G6: %s, distinguishing number: %d", code, g.DistinguishingNumberLite(maxColors)), nil
}
