// SPDX-License-Identifier: MIT
// Package: lvlattice/mst
//
// problem.go - the Borůvka spanning forest as a problem.Problem[Forest].
//
// Contract:
//   - Forbidden: some accepted edge (u,v) has Label[u] != Label[v].
//   - Ensure/EnsureInto: owned vertex v takes the minimum of its label, the
//     labels of its accepted neighbours and Label[Label[v]].
//   - Advance/AdvanceInto: owned component r accepts its lightest outgoing
//     edge. If both endpoint components chose the same edge, only the
//     smaller label writes it, so partitions never overlap.
//   - Merge: label-wise minimum, accepted-flag union.
//   - IsSolution: not forbidden and no edge joins two labels.

package mst

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/problem"
)

// noEdge marks a component without outgoing edges.
const noEdge = -1

// Problem is the spanning-forest problem over one edge list.
// It is immutable after New and safe for concurrent use.
type Problem struct {
	n     int
	edges []core.Edge
	adj   [][]core.Arc
}

var (
	_ problem.Problem[Forest] = (*Problem)(nil)
	_ problem.Merger[Forest]  = (*Problem)(nil)
	_ problem.Equaler[Forest] = (*Problem)(nil)
	_ problem.Cloner[Forest]  = (*Problem)(nil)
	_ problem.InPlace[Forest] = (*Problem)(nil)
)

// New validates el and prepares the problem. el is read as undirected.
func New(el *core.EdgeList) (*Problem, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.Validate(); err != nil {
		return nil, fmt.Errorf("mst: %w", err)
	}
	u := el.Undirected()

	return &Problem{n: u.VertexCount, edges: u.Edges, adj: u.Adjacency()}, nil
}

// Initial returns every vertex in its own component and no accepted edge.
func (p *Problem) Initial() Forest {
	f := Forest{Label: make([]int, p.n), Accepted: make([]bool, len(p.edges))}
	for v := range f.Label {
		f.Label[v] = v
	}

	return f
}

// Forbidden reports whether an accepted edge crosses two labels.
func (p *Problem) Forbidden(f Forest) bool {
	for e, ok := range f.Accepted {
		if ok && f.Label[p.edges[e].From] != f.Label[p.edges[e].To] {
			return true
		}
	}

	return false
}

// IsSolution reports whether f is consistent and no component can grow.
func (p *Problem) IsSolution(f Forest) bool {
	if p.Forbidden(f) {
		return false
	}
	for _, e := range p.edges {
		if f.Label[e.From] != f.Label[e.To] {
			return false
		}
	}

	return true
}

// Ensure returns a copy of f with the owned labels repaired.
func (p *Problem) Ensure(f Forest, workerID, total int) Forest {
	out := f.Clone()
	p.EnsureInto(out, f, workerID, total)

	return out
}

// EnsureInto writes the repaired labels of owned vertices into dst.
func (p *Problem) EnsureInto(dst, src Forest, workerID, total int) {
	problem.ForEachOwned(p.n, workerID, total, func(v int) {
		best := min(src.Label[v], src.Label[src.Label[v]])
		for _, a := range p.adj[v] {
			if src.Accepted[a.Edge] {
				best = min(best, src.Label[a.To])
			}
		}
		dst.Label[v] = best
	})
}

// Advance returns a copy of f where every owned component accepted its
// lightest outgoing edge.
func (p *Problem) Advance(f Forest, workerID, total int) Forest {
	out := f.Clone()
	p.AdvanceInto(out, f, workerID, total)

	return out
}

// AdvanceInto marks in dst the lightest outgoing edge of every component
// whose label workerID owns.
func (p *Problem) AdvanceInto(dst, src Forest, workerID, total int) {
	best := p.lightestOutgoing(src)
	for r, e := range best {
		if e == noEdge || !problem.Owns(r, workerID, total) {
			continue
		}
		other := src.Label[p.edges[e].From]
		if other == r {
			other = src.Label[p.edges[e].To]
		}
		if other < r && best[other] == e {
			continue // written by the owner of the smaller label
		}
		dst.Accepted[e] = true
	}
}

// lightestOutgoing returns, per label, the index of its lightest edge to
// another label under the (weight, index) order, or noEdge.
func (p *Problem) lightestOutgoing(f Forest) []int {
	best := make([]int, p.n)
	for i := range best {
		best[i] = noEdge
	}
	for e, ed := range p.edges {
		lu, lv := f.Label[ed.From], f.Label[ed.To]
		if lu == lv {
			continue
		}
		if p.lighter(e, best[lu]) {
			best[lu] = e
		}
		if p.lighter(e, best[lv]) {
			best[lv] = e
		}
	}

	return best
}

// lighter reports whether edge a precedes edge b in (weight, index) order.
func (p *Problem) lighter(a, b int) bool {
	if b == noEdge {
		return true
	}
	wa, wb := p.edges[a].Weight, p.edges[b].Weight

	return wa < wb || (wa == wb && a < b)
}

// Merge takes the label-wise minimum and the union of accepted edges.
func (p *Problem) Merge(a, b Forest) Forest {
	out := a.Clone()
	for v, l := range b.Label {
		out.Label[v] = min(out.Label[v], l)
	}
	for e, ok := range b.Accepted {
		out.Accepted[e] = out.Accepted[e] || ok
	}

	return out
}

// Equal compares labels and accepted flags.
func (p *Problem) Equal(a, b Forest) bool {
	return slices.Equal(a.Label, b.Label) && slices.Equal(a.Accepted, b.Accepted)
}

// Clone deep-copies f.
func (p *Problem) Clone(f Forest) Forest { return f.Clone() }

// Weight returns the total weight of the accepted edges of f.
func (p *Problem) Weight(f Forest) int64 {
	var total int64
	for e, ok := range f.Accepted {
		if ok {
			total += p.edges[e].Weight
		}
	}

	return total
}
