// SPDX-License-Identifier: MIT
// Package: lvlattice/matching
//
// problem.go - stable marriage as a problem.Problem[Proposals].
//
// Contract:
//   - Forbidden: some man proposes to a woman who prefers another proposer.
//   - Ensure/EnsureInto: every owned forbidden man moves one position down
//     his list.
//   - Advance/AdvanceInto: identity.
//   - Merge: element-wise maximum.
//   - IsSolution: not forbidden.
//
// Complexity:
//   - O(n) per round per worker to find each woman's best proposer.

package matching

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlattice/problem"
)

// Problem is one stable-marriage instance with n men and n women.
// It is immutable after New and safe for concurrent use.
type Problem struct {
	n    int
	men  [][]int // men[m][k] is the k-th choice of man m
	rank [][]int // rank[w][m] is the position of man m in w's list
}

var (
	_ problem.Problem[Proposals] = (*Problem)(nil)
	_ problem.Merger[Proposals]  = (*Problem)(nil)
	_ problem.Equaler[Proposals] = (*Problem)(nil)
	_ problem.Cloner[Proposals]  = (*Problem)(nil)
	_ problem.InPlace[Proposals] = (*Problem)(nil)
)

// New validates both preference tables: equal sizes and every list a
// permutation of 0..n-1. The tables are copied.
func New(men, women [][]int) (*Problem, error) {
	if len(men) != len(women) {
		return nil, fmt.Errorf("New: %d men, %d women: %w", len(men), len(women), ErrSizeMismatch)
	}
	n := len(men)
	for m, list := range men {
		if !isPermutation(list, n) {
			return nil, fmt.Errorf("New: man %d: %w", m, ErrInvalidPreferences)
		}
	}
	rank := make([][]int, n)
	for w, list := range women {
		if !isPermutation(list, n) {
			return nil, fmt.Errorf("New: woman %d: %w", w, ErrInvalidPreferences)
		}
		rank[w] = make([]int, n)
		for k, m := range list {
			rank[w][m] = k
		}
	}

	p := &Problem{n: n, men: make([][]int, n), rank: rank}
	for m, list := range men {
		p.men[m] = slices.Clone(list)
	}

	return p, nil
}

func isPermutation(list []int, n int) bool {
	if len(list) != n {
		return false
	}
	seen := make([]bool, n)
	for _, x := range list {
		if x < 0 || x >= n || seen[x] {
			return false
		}
		seen[x] = true
	}

	return true
}

// Initial has every man propose to his first choice.
func (p *Problem) Initial() Proposals { return make(Proposals, p.n) }

// Wives returns the woman every man proposes to in s.
func (p *Problem) Wives(s Proposals) []int {
	out := make([]int, p.n)
	for m, k := range s {
		out[m] = p.men[m][k]
	}

	return out
}

// favourites returns, per woman, her preferred proposer in s or -1.
func (p *Problem) favourites(s Proposals) []int {
	best := make([]int, p.n)
	for w := range best {
		best[w] = -1
	}
	for m, k := range s {
		w := p.men[m][k]
		if b := best[w]; b < 0 || p.rank[w][m] < p.rank[w][b] {
			best[w] = m
		}
	}

	return best
}

// Forbidden reports whether some man is rejected in s.
func (p *Problem) Forbidden(s Proposals) bool {
	best := p.favourites(s)
	for m, k := range s {
		if best[p.men[m][k]] != m {
			return true
		}
	}

	return false
}

func (p *Problem) IsSolution(s Proposals) bool { return !p.Forbidden(s) }

func (p *Problem) Ensure(s Proposals, workerID, total int) Proposals {
	out := s.Clone()
	p.EnsureInto(out, s, workerID, total)

	return out
}

// EnsureInto moves every owned rejected man to his next choice.
func (p *Problem) EnsureInto(dst, src Proposals, workerID, total int) {
	best := p.favourites(src)
	problem.ForEachOwned(p.n, workerID, total, func(m int) {
		k := src[m]
		if best[p.men[m][k]] != m && k+1 < p.n {
			dst[m] = k + 1
		}
	})
}

func (p *Problem) Advance(s Proposals, _, _ int) Proposals { return s.Clone() }

func (p *Problem) AdvanceInto(_, _ Proposals, _, _ int) {}

// Merge keeps the later proposal per man.
func (p *Problem) Merge(a, b Proposals) Proposals {
	out := a.Clone()
	for m, k := range b {
		out[m] = max(out[m], k)
	}

	return out
}

func (p *Problem) Equal(a, b Proposals) bool { return slices.Equal(a, b) }

func (p *Problem) Clone(s Proposals) Proposals { return s.Clone() }
