// SPDX-License-Identifier: MIT
// Package: graphinv/builder
//
// api.go — the Build orchestrator and the sketch every constructor writes to.
//
// Design contract:
//   • One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order,
//     materialises the adjacency matrix once at the end.
//   • Constructors append vertices; they never touch vertices created by
//     earlier constructors, which keeps composition a disjoint union.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphinv/adjacency"
)

// Constructor appends one component to the sketch using the resolved config.
// Constructors must validate parameters early and return sentinel errors.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch is the mutable draft a Build call assembles.
type sketch struct {
	n     int      // vertices added so far
	edges [][2]int // undirected edges, endpoints in [0,n)
}

// addVertices reserves k new vertices and returns the index of the first.
func (s *sketch) addVertices(k int) int {
	base := s.n
	s.n += k

	return base
}

// addEdge records {u,v}. Duplicates are harmless; loops are rejected at Build.
func (s *sketch) addEdge(u, v int) {
	s.edges = append(s.edges, [2]int{u, v})
}

// Build applies cons in order and returns the resulting adjacency matrix.
// A constructor error is wrapped as "Build: %w" and returned immediately.
// Complexity: Σ constructor cost + O(n²) to materialise.
func Build(opts []BuilderOption, cons ...Constructor) (*adjacency.Matrix, error) {
	cfg := newBuilderConfig(opts...)
	s := &sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	rows := make([][]bool, s.n)
	for i := range rows {
		rows[i] = make([]bool, s.n)
	}
	for _, e := range s.edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || v < 0 || u >= s.n || v >= s.n {
			return nil, fmt.Errorf("Build: edge {%d,%d}: %w", u, v, ErrConstructFailed)
		}
		rows[u][v], rows[v][u] = true, true
	}

	return adjacency.FromBools(rows)
}

// tooFew formats the shared "parameter below minimum" error.
func tooFew(method, param string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, minimum, ErrTooFewVertices)
}
