package scan

import (
	"errors"
	"slices"
)

// ErrOverflow is returned when the total sum does not fit in an int64.
var ErrOverflow = errors.New("scan: prefix sum overflows int64")

// Partials holds, per index i, the sum of the input over [Start[i], i].
type Partials struct {
	Start []int
	Sum   []int64
}

// Clone returns an independent copy.
func (p Partials) Clone() Partials {
	return Partials{Start: slices.Clone(p.Start), Sum: slices.Clone(p.Sum)}
}

// Done reports whether every partial starts at index 0.
func (p Partials) Done() bool {
	for _, s := range p.Start {
		if s != 0 {
			return false
		}
	}

	return true
}
