// SPDX-License-Identifier: MIT
// Package: lvlattice/components
//
// problem.go - min-label propagation as a problem.Problem[Labels].
//
// Contract:
//   - Forbidden: some Label[v] > v.
//   - Ensure/EnsureInto: owned v clamps its label to min(Label[v], v).
//   - Advance/AdvanceInto: owned v takes the minimum of its label,
//     Label[Label[v]] and the labels of its neighbours.
//   - Merge: element-wise minimum.
//   - IsSolution: not forbidden and every edge joins equal labels.
//
// Complexity:
//   - O(deg) per owned vertex per round; O(log V) rounds on paths thanks to
//     pointer jumping, O(diameter) in the worst case.

package components

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/problem"
)

// Problem is the connected-components problem over one edge list.
// It is immutable after New and safe for concurrent use.
type Problem struct {
	n     int
	edges []core.Edge
	adj   [][]core.Arc
}

var (
	_ problem.Problem[Labels] = (*Problem)(nil)
	_ problem.Merger[Labels]  = (*Problem)(nil)
	_ problem.Equaler[Labels] = (*Problem)(nil)
	_ problem.Cloner[Labels]  = (*Problem)(nil)
	_ problem.InPlace[Labels] = (*Problem)(nil)
)

// New validates el and prepares the problem.
func New(el *core.EdgeList) (*Problem, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.Validate(); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	u := el.Undirected()

	return &Problem{n: u.VertexCount, edges: u.Edges, adj: u.Adjacency()}, nil
}

// Initial labels every vertex with its own index.
func (p *Problem) Initial() Labels {
	l := make(Labels, p.n)
	for v := range l {
		l[v] = v
	}

	return l
}

// Forbidden reports whether some label exceeds its vertex index.
func (p *Problem) Forbidden(l Labels) bool {
	for v, x := range l {
		if x > v {
			return true
		}
	}

	return false
}

// IsSolution reports whether labels agree across every edge.
func (p *Problem) IsSolution(l Labels) bool {
	if p.Forbidden(l) {
		return false
	}
	for _, e := range p.edges {
		if l[e.From] != l[e.To] {
			return false
		}
	}

	return true
}

func (p *Problem) Ensure(l Labels, workerID, total int) Labels {
	out := l.Clone()
	p.EnsureInto(out, l, workerID, total)

	return out
}

func (p *Problem) EnsureInto(dst, src Labels, workerID, total int) {
	problem.ForEachOwned(p.n, workerID, total, func(v int) {
		dst[v] = min(src[v], v)
	})
}

func (p *Problem) Advance(l Labels, workerID, total int) Labels {
	out := l.Clone()
	p.AdvanceInto(out, l, workerID, total)

	return out
}

// AdvanceInto lowers every owned label to the best label in reach.
func (p *Problem) AdvanceInto(dst, src Labels, workerID, total int) {
	problem.ForEachOwned(p.n, workerID, total, func(v int) {
		best := min(src[v], src[src[v]])
		for _, a := range p.adj[v] {
			best = min(best, src[a.To])
		}
		dst[v] = best
	})
}

// Merge keeps the smaller label per vertex.
func (p *Problem) Merge(a, b Labels) Labels {
	out := a.Clone()
	for v, x := range b {
		out[v] = min(out[v], x)
	}

	return out
}

func (p *Problem) Equal(a, b Labels) bool { return slices.Equal(a, b) }

func (p *Problem) Clone(l Labels) Labels { return l.Clone() }
