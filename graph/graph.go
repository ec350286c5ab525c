// SPDX-License-Identifier: MIT
// Package: graphinv/graph
//
// graph.go — Graph type and constructors.
//
// Contract:
//   • Every constructor validates fully and never returns a partial Graph.
//   • The wrapped Matrix is never mutated; caches are guarded by mu.

package graph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/graphinv/adjacency"
	"github.com/katalvlaran/graphinv/g6"
)

// ErrNilInput is returned when a constructor receives nil.
var ErrNilInput = errors.New("graph: nil input")

// Graph is a simple undirected graph on vertices 0..n-1.
type Graph struct {
	adj *adjacency.Matrix

	mu      sync.Mutex
	code    string
	codeErr error
	codeOK  bool
	aut     uint64
	autOK   bool
}

// New builds a Graph from a 0/1 adjacency matrix.
func New(rows [][]int) (*Graph, error) {
	m, err := adjacency.New(rows)
	if err != nil {
		return nil, fmt.Errorf("graph.New: %w", err)
	}

	return &Graph{adj: m}, nil
}

// FromMatrix wraps an existing, already validated Matrix.
func FromMatrix(m *adjacency.Matrix) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("graph.FromMatrix: %w", ErrNilInput)
	}

	return &Graph{adj: m}, nil
}

// FromG6 decodes a compact code.
func FromG6(code string) (*Graph, error) {
	m, err := g6.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("graph.FromG6: %w", err)
	}

	return &Graph{adj: m, code: code, codeOK: true}, nil
}

// FromStandardG6 decodes a standard (nauty) graph6 string.
func FromStandardG6(s string) (*Graph, error) {
	m, err := g6.FromStandard(s)
	if err != nil {
		return nil, fmt.Errorf("graph.FromStandardG6: %w", err)
	}

	return &Graph{adj: m}, nil
}

// FromDegreeSequence realises deg with Havel–Hakimi.
func FromDegreeSequence(deg []int) (*Graph, error) {
	m, err := adjacency.FromDegreeSequence(deg)
	if err != nil {
		return nil, fmt.Errorf("graph.FromDegreeSequence: %w", err)
	}

	return &Graph{adj: m}, nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.adj.VertexCount() }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.adj.EdgeCount() }

// Adjacency returns the underlying matrix. It is read-only.
func (g *Graph) Adjacency() *adjacency.Matrix { return g.adj }

// G6 returns the compact code. It fails only for n > g6.MaxVertices.
func (g *Graph) G6() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.codeOK {
		g.code, g.codeErr = g6.Encode(g.adj)
		g.codeOK = true
	}

	return g.code, g.codeErr
}

// StandardG6 returns the nauty-compatible graph6 string.
func (g *Graph) StandardG6() (string, error) {
	return g6.ToStandard(g.adj)
}

// String renders the matrix, one row per line.
func (g *Graph) String() string { return g.adj.String() }
