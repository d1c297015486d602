// SPDX-License-Identifier: MIT
// Package: lvlattice/mst
//
// kruskal.go - sequential minimum spanning forest, the reference for the
// parallel Borůvka.

package mst

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlattice/core"
)

// Kruskal computes the minimum spanning forest of el (read as undirected)
// with a union-find using path halving and union by rank.
//
// Steps:
//  1. Validate el.
//  2. Order edge indices by (weight, index); skip self-loops.
//  3. Scan in order; accept an edge iff its endpoints are in different sets.
//  4. Stop early once V-1 edges were accepted.
//
// Returns the accepted edge indices in ascending order and their total weight.
// Complexity: O(E log E + E·α(V)) time, O(V+E) memory.
func Kruskal(el *core.EdgeList) ([]int, int64, error) {
	// 1. Validate.
	if el == nil {
		return nil, 0, ErrNilGraph
	}
	if err := el.Validate(); err != nil {
		return nil, 0, fmt.Errorf("mst: %w", err)
	}

	// 2. Stable (weight, index) order without self-loops.
	order := make([]int, 0, len(el.Edges))
	for i, e := range el.Edges {
		if e.From != e.To {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		wa, wb := el.Edges[a].Weight, el.Edges[b].Weight
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		}
		return a - b
	})

	// Disjoint sets over vertex indices.
	parent := make([]int, el.VertexCount)
	rank := make([]int, el.VertexCount)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// 3. Scan.
	var (
		accepted []int
		total    int64
	)
	for _, i := range order {
		ru, rv := find(el.Edges[i].From), find(el.Edges[i].To)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		accepted = append(accepted, i)
		total += el.Edges[i].Weight

		// 4. A spanning tree of a connected graph is complete.
		if len(accepted) == el.VertexCount-1 {
			break
		}
	}
	slices.Sort(accepted)

	return accepted, total, nil
}
