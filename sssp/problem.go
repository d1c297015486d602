// SPDX-License-Identifier: MIT
// Package: lvlattice/sssp
//
// problem.go - Bellman-Ford relaxation as a problem.Problem[Distances].
//
// Contract:
//   - Forbidden: dist[source] != 0.
//   - Ensure/EnsureInto: the owner of the source sets it to 0.
//   - Advance/AdvanceInto: owned v takes min(dist[v], dist[u]+w) over its
//     incoming arcs (u, w), reading only src.
//   - Merge: element-wise minimum.
//   - IsSolution: not forbidden and no arc relaxes.
//
// Complexity:
//   - O(in-degree) per owned vertex per round; at most V-1 progress rounds.

package sssp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/problem"
)

// Problem is the shortest-distance problem from one source.
// It is immutable after New and safe for concurrent use.
type Problem struct {
	n      int
	source int
	in     [][]core.Arc
}

var (
	_ problem.Problem[Distances] = (*Problem)(nil)
	_ problem.Merger[Distances]  = (*Problem)(nil)
	_ problem.Equaler[Distances] = (*Problem)(nil)
	_ problem.Cloner[Distances]  = (*Problem)(nil)
	_ problem.InPlace[Distances] = (*Problem)(nil)
)

// New validates el (no negative weights) and source.
func New(el *core.EdgeList, source int) (*Problem, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.ValidateNonNegative(); err != nil {
		return nil, fmt.Errorf("sssp: %w", err)
	}
	if source < 0 || source >= el.VertexCount {
		return nil, fmt.Errorf("New: source=%d with n=%d: %w", source, el.VertexCount, ErrSourceOutOfRange)
	}

	return &Problem{n: el.VertexCount, source: source, in: el.Incoming()}, nil
}

// Source returns the source vertex.
func (p *Problem) Source() int { return p.source }

// Initial returns Inf everywhere, source included.
func (p *Problem) Initial() Distances {
	d := make(Distances, p.n)
	for v := range d {
		d[v] = Inf
	}

	return d
}

// Forbidden reports whether the source lost its zero distance.
func (p *Problem) Forbidden(d Distances) bool { return d[p.source] != 0 }

// IsSolution reports whether d is stable under every incoming arc.
func (p *Problem) IsSolution(d Distances) bool {
	if p.Forbidden(d) {
		return false
	}
	for v, arcs := range p.in {
		for _, a := range arcs {
			if relax(d[a.To], a.Weight) < d[v] {
				return false
			}
		}
	}

	return true
}

func (p *Problem) Ensure(d Distances, workerID, total int) Distances {
	out := d.Clone()
	p.EnsureInto(out, d, workerID, total)

	return out
}

func (p *Problem) EnsureInto(dst, _ Distances, workerID, total int) {
	if problem.Owns(p.source, workerID, total) {
		dst[p.source] = 0
	}
}

func (p *Problem) Advance(d Distances, workerID, total int) Distances {
	out := d.Clone()
	p.AdvanceInto(out, d, workerID, total)

	return out
}

// AdvanceInto pulls the best incoming relaxation into every owned vertex.
func (p *Problem) AdvanceInto(dst, src Distances, workerID, total int) {
	problem.ForEachOwned(p.n, workerID, total, func(v int) {
		best := src[v]
		for _, a := range p.in[v] {
			best = min(best, relax(src[a.To], a.Weight))
		}
		dst[v] = best
	})
}

// Merge keeps the smaller distance per vertex.
func (p *Problem) Merge(a, b Distances) Distances {
	out := a.Clone()
	for v, d := range b {
		out[v] = min(out[v], d)
	}

	return out
}

func (p *Problem) Equal(a, b Distances) bool { return slices.Equal(a, b) }

func (p *Problem) Clone(d Distances) Distances { return d.Clone() }
