// SPDX-License-Identifier: MIT
// Package: lvlattice/core
//
// types.go - Edge, EdgeList, sentinel errors and constructors.
//
// Contract:
//   - Vertices are dense indices 0..VertexCount-1; there are no vertex IDs.
//   - Edges keep insertion order; Edges[i] is "edge i" everywhere.
//   - Directed=false means every edge is usable in both directions.
//   - Self-loops and parallel edges are allowed; clients decide what they mean.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list validation.
var (
	// ErrNilEdgeList indicates a nil *EdgeList.
	ErrNilEdgeList = errors.New("core: nil edge list")

	// ErrNegativeVertexCount indicates VertexCount < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an endpoint outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight. Only returned by
	// ValidateNonNegative; plain Validate accepts any weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one weighted edge From -> To (or {From, To} when undirected).
type Edge struct {
	From   int
	To     int
	Weight int64
}

// EdgeList is a graph in edge-list form.
type EdgeList struct {
	// VertexCount is the number of vertices; valid indices are [0, VertexCount).
	VertexCount int

	// Edges in insertion order.
	Edges []Edge

	// Directed selects arc semantics for Edges.
	Directed bool
}

// NewEdgeList returns an empty list over n vertices.
// Returns ErrNegativeVertexCount if n < 0.
func NewEdgeList(n int, directed bool) (*EdgeList, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewEdgeList: n=%d: %w", n, ErrNegativeVertexCount)
	}

	return &EdgeList{VertexCount: n, Directed: directed}, nil
}

// AddVertices appends k vertices and returns the index of the first one.
// Constructors use it to place sub-graphs side by side.
func (el *EdgeList) AddVertices(k int) int {
	first := el.VertexCount
	if k > 0 {
		el.VertexCount += k
	}

	return first
}

// AddEdge appends the edge from -> to with weight w and returns its index.
func (el *EdgeList) AddEdge(from, to int, w int64) (int, error) {
	if err := el.checkVertex(from); err != nil {
		return -1, fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	if err := el.checkVertex(to); err != nil {
		return -1, fmt.Errorf("AddEdge(%d→%d): %w", from, to, err)
	}
	el.Edges = append(el.Edges, Edge{From: from, To: to, Weight: w})

	return len(el.Edges) - 1, nil
}

// EdgeCount returns len(Edges).
func (el *EdgeList) EdgeCount() int { return len(el.Edges) }

// Validate checks the vertex count and every endpoint.
// Complexity: O(E).
func (el *EdgeList) Validate() error {
	if el == nil {
		return ErrNilEdgeList
	}
	if el.VertexCount < 0 {
		return fmt.Errorf("Validate: n=%d: %w", el.VertexCount, ErrNegativeVertexCount)
	}
	for i, e := range el.Edges {
		if el.checkVertex(e.From) != nil || el.checkVertex(e.To) != nil {
			return fmt.Errorf("Validate: edge %d (%d→%d) with n=%d: %w",
				i, e.From, e.To, el.VertexCount, ErrVertexOutOfRange)
		}
	}

	return nil
}

// ValidateNonNegative is Validate plus a check that no weight is negative.
func (el *EdgeList) ValidateNonNegative() error {
	if err := el.Validate(); err != nil {
		return err
	}
	for i, e := range el.Edges {
		if e.Weight < 0 {
			return fmt.Errorf("Validate: edge %d (%d→%d) weight=%d: %w",
				i, e.From, e.To, e.Weight, ErrNegativeWeight)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (el *EdgeList) Clone() *EdgeList {
	if el == nil {
		return nil
	}
	out := &EdgeList{VertexCount: el.VertexCount, Directed: el.Directed}
	if el.Edges != nil {
		out.Edges = make([]Edge, len(el.Edges))
		copy(out.Edges, el.Edges)
	}

	return out
}

// Undirected returns a copy of el with arc semantics dropped.
func (el *EdgeList) Undirected() *EdgeList {
	out := el.Clone()
	if out != nil {
		out.Directed = false
	}

	return out
}

func (el *EdgeList) checkVertex(v int) error {
	if v < 0 || v >= el.VertexCount {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, el.VertexCount, ErrVertexOutOfRange)
	}

	return nil
}
