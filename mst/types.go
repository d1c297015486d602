// SPDX-License-Identifier: MIT
// Package: lvlattice/mst
//
// types.go - Forest state, sentinel errors.

package mst

import (
	"errors"
	"slices"
)

// ErrNilGraph indicates a nil edge list.
var ErrNilGraph = errors.New("mst: nil graph")

// Forest is the lattice state of the spanning-forest problem.
type Forest struct {
	// Label[v] is the current component representative of vertex v.
	Label []int

	// Accepted[e] reports whether edge e belongs to the forest.
	Accepted []bool
}

// Clone returns a deep copy of f.
func (f Forest) Clone() Forest {
	return Forest{Label: slices.Clone(f.Label), Accepted: slices.Clone(f.Accepted)}
}

// Edges returns the indices of accepted edges in ascending order.
func (f Forest) Edges() []int {
	var out []int
	for e, ok := range f.Accepted {
		if ok {
			out = append(out, e)
		}
	}

	return out
}

// Components returns the number of distinct labels.
func (f Forest) Components() int {
	n := 0
	for v, l := range f.Label {
		if l == v {
			n++
		}
	}

	return n
}
