// SPDX-License-Identifier: MIT
// Package: lvlattice/core
//
// adjacency.go - derived neighbourhood views over an EdgeList.
//
// Contract:
//   - Adjacency(v) lists arcs leaving v; Incoming(v) lists arcs entering v.
//   - Undirected lists contribute each edge to both endpoints (once for a
//     self-loop), so Adjacency and Incoming coincide.
//   - Within a vertex, arcs appear in ascending edge index.
//
// Complexity:
//   - Time O(V+E), space O(V+E) per call. Nothing is cached.

package core

// Arc is one endpoint view of an edge.
type Arc struct {
	// To is the neighbour: the head for Adjacency, the tail for Incoming.
	To int

	// Weight copies Edges[Edge].Weight.
	Weight int64

	// Edge is the index into EdgeList.Edges.
	Edge int
}

// Adjacency returns the outgoing arcs of every vertex.
func (el *EdgeList) Adjacency() [][]Arc {
	adj := make([][]Arc, el.VertexCount)
	for i, e := range el.Edges {
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Weight: e.Weight, Edge: i})
		if !el.Directed && e.From != e.To {
			adj[e.To] = append(adj[e.To], Arc{To: e.From, Weight: e.Weight, Edge: i})
		}
	}

	return adj
}

// Incoming returns the arcs entering every vertex; Arc.To is the tail.
func (el *EdgeList) Incoming() [][]Arc {
	if !el.Directed {
		return el.Adjacency()
	}

	in := make([][]Arc, el.VertexCount)
	for i, e := range el.Edges {
		in[e.To] = append(in[e.To], Arc{To: e.From, Weight: e.Weight, Edge: i})
	}

	return in
}

// Degrees returns the number of arcs in Adjacency for every vertex.
func (el *EdgeList) Degrees() []int {
	deg := make([]int, el.VertexCount)
	for _, e := range el.Edges {
		deg[e.From]++
		if !el.Directed && e.From != e.To {
			deg[e.To]++
		}
	}

	return deg
}
