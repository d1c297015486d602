package scan

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvlattice/problem"
)

// Problem is the inclusive scan of a fixed input.
type Problem struct {
	values []int64
}

var (
	_ problem.Problem[Partials] = (*Problem)(nil)
	_ problem.Merger[Partials]  = (*Problem)(nil)
	_ problem.Equaler[Partials] = (*Problem)(nil)
	_ problem.Cloner[Partials]  = (*Problem)(nil)
	_ problem.InPlace[Partials] = (*Problem)(nil)
)

// New copies values and rejects inputs whose running sum overflows.
func New(values []int64) (*Problem, error) {
	if _, err := Sequential(values); err != nil {
		return nil, err
	}

	return &Problem{values: slices.Clone(values)}, nil
}

// Initial gives every index the partial covering only itself.
func (p *Problem) Initial() Partials {
	s := Partials{Start: make([]int, len(p.values)), Sum: slices.Clone(p.values)}
	for i := range s.Start {
		s.Start[i] = i
	}

	return s
}

// Forbidden reports whether some partial starts outside [0, i].
func (p *Problem) Forbidden(s Partials) bool {
	for i, st := range s.Start {
		if !valid(st, i) {
			return true
		}
	}

	return false
}

func (p *Problem) IsSolution(s Partials) bool { return !p.Forbidden(s) && s.Done() }

func (p *Problem) Ensure(s Partials, workerID, total int) Partials {
	out := s.Clone()
	p.EnsureInto(out, s, workerID, total)

	return out
}

// EnsureInto resets every owned partial with an invalid start.
func (p *Problem) EnsureInto(dst, src Partials, workerID, total int) {
	problem.ForEachOwned(len(p.values), workerID, total, func(i int) {
		if !valid(src.Start[i], i) {
			dst.Start[i], dst.Sum[i] = i, p.values[i]
		}
	})
}

func (p *Problem) Advance(s Partials, workerID, total int) Partials {
	out := s.Clone()
	p.AdvanceInto(out, s, workerID, total)

	return out
}

// AdvanceInto joins every owned partial with its predecessor's partial.
func (p *Problem) AdvanceInto(dst, src Partials, workerID, total int) {
	problem.ForEachOwned(len(p.values), workerID, total, func(i int) {
		st := src.Start[i]
		if st == 0 {
			return
		}
		j := st - 1
		dst.Start[i] = src.Start[j]
		dst.Sum[i] = src.Sum[i] + src.Sum[j]
	})
}

// Merge keeps, per index, the valid partial with the smaller start.
func (p *Problem) Merge(a, b Partials) Partials {
	out := a.Clone()
	for i, st := range b.Start {
		if !valid(st, i) {
			continue
		}
		if cur := out.Start[i]; !valid(cur, i) || st < cur {
			out.Start[i], out.Sum[i] = st, b.Sum[i]
		}
	}

	return out
}

func valid(start, i int) bool { return start >= 0 && start <= i }

func (p *Problem) Equal(a, b Partials) bool {
	return slices.Equal(a.Start, b.Start) && slices.Equal(a.Sum, b.Sum)
}

func (p *Problem) Clone(s Partials) Partials { return s.Clone() }

// Sequential is the reference inclusive scan.
func Sequential(values []int64) ([]int64, error) {
	out := make([]int64, len(values))
	var acc int64
	for i, v := range values {
		if (v > 0 && acc > math.MaxInt64-v) || (v < 0 && acc < math.MinInt64-v) {
			return nil, fmt.Errorf("Sequential: index %d: %w", i, ErrOverflow)
		}
		acc += v
		out[i] = acc
	}

	return out, nil
}
