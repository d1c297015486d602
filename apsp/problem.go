// SPDX-License-Identifier: MIT
// Package: lvlattice/apsp
//
// problem.go - min-plus squaring as a problem.Problem[Matrix].
//
// Contract:
//   - Forbidden: some diagonal entry is not 0.
//   - Ensure/EnsureInto: owned row i sets D[i][i] = 0.
//   - Advance/AdvanceInto: owned row i becomes min_k D[i][k] + D[k][j],
//     reading only src.
//   - Merge: element-wise minimum.
//   - IsSolution: not forbidden and D[i][j] <= D[i][k] + D[k][j] for all
//     triples.
//
// Complexity:
//   - Advance O(V²) per owned row; IsSolution O(V³) on the coordinator.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/problem"
)

// Problem is the all-pairs distance problem over one edge list.
// It is immutable after New and safe for concurrent use.
type Problem struct {
	initial Matrix
}

var (
	_ problem.Problem[Matrix] = (*Problem)(nil)
	_ problem.Merger[Matrix]  = (*Problem)(nil)
	_ problem.Equaler[Matrix] = (*Problem)(nil)
	_ problem.Cloner[Matrix]  = (*Problem)(nil)
	_ problem.InPlace[Matrix] = (*Problem)(nil)
)

// New validates el (no negative weights) and builds the arc matrix.
func New(el *core.EdgeList) (*Problem, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.ValidateNonNegative(); err != nil {
		return nil, fmt.Errorf("apsp: %w", err)
	}

	return &Problem{initial: arcMatrix(el)}, nil
}

// arcMatrix keeps the lightest arc per ordered pair, self-loops included.
func arcMatrix(el *core.EdgeList) Matrix {
	m := NewMatrix(el.VertexCount)
	for u, arcs := range el.Adjacency() {
		row := m.Row(u)
		for _, a := range arcs {
			row[a.To] = min(row[a.To], a.Weight)
		}
	}

	return m
}

// Initial returns the arc matrix.
func (p *Problem) Initial() Matrix { return p.initial.Clone() }

// Forbidden reports whether some vertex is not at distance 0 from itself.
func (p *Problem) Forbidden(m Matrix) bool {
	for i := 0; i < m.N; i++ {
		if m.At(i, i) != 0 {
			return true
		}
	}

	return false
}

// IsSolution reports whether m satisfies the triangle inequality everywhere.
func (p *Problem) IsSolution(m Matrix) bool {
	if p.Forbidden(m) {
		return false
	}
	for i := 0; i < m.N; i++ {
		ri := m.Row(i)
		for k := 0; k < m.N; k++ {
			if ri[k] == Inf {
				continue
			}
			rk := m.Row(k)
			for j := 0; j < m.N; j++ {
				if add(ri[k], rk[j]) < ri[j] {
					return false
				}
			}
		}
	}

	return true
}

func (p *Problem) Ensure(m Matrix, workerID, total int) Matrix {
	out := m.Clone()
	p.EnsureInto(out, m, workerID, total)

	return out
}

func (p *Problem) EnsureInto(dst, _ Matrix, workerID, total int) {
	problem.ForEachOwned(dst.N, workerID, total, func(i int) {
		dst.D[i*dst.N+i] = 0
	})
}

func (p *Problem) Advance(m Matrix, workerID, total int) Matrix {
	out := m.Clone()
	p.AdvanceInto(out, m, workerID, total)

	return out
}

// AdvanceInto squares the owned rows of src into dst.
// Loop order is fixed (k then j) per row.
func (p *Problem) AdvanceInto(dst, src Matrix, workerID, total int) {
	problem.ForEachOwned(src.N, workerID, total, func(i int) {
		out := dst.Row(i)
		copy(out, src.Row(i))
		ri := src.Row(i)
		for k := 0; k < src.N; k++ {
			if ri[k] == Inf {
				continue
			}
			rk := src.Row(k)
			for j := 0; j < src.N; j++ {
				if c := add(ri[k], rk[j]); c < out[j] {
					out[j] = c
				}
			}
		}
	})
}

// Merge keeps the smaller distance per pair.
func (p *Problem) Merge(a, b Matrix) Matrix {
	out := a.Clone()
	for i, d := range b.D {
		out.D[i] = min(out.D[i], d)
	}

	return out
}

func (p *Problem) Equal(a, b Matrix) bool { return a.Equal(b) }

func (p *Problem) Clone(m Matrix) Matrix { return m.Clone() }
