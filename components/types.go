package components

import (
	"errors"
	"slices"
)

// ErrNilGraph is returned when a nil edge list is passed.
var ErrNilGraph = errors.New("components: graph is nil")

// Labels holds the component label of every vertex.
type Labels []int

// Clone returns an independent copy.
func (l Labels) Clone() Labels { return slices.Clone(l) }

// Count returns the number of distinct labels.
func (l Labels) Count() int {
	seen := make(map[int]struct{}, len(l))
	for _, x := range l {
		seen[x] = struct{}{}
	}

	return len(seen)
}

// Members groups vertices by label, in ascending label then vertex order.
func (l Labels) Members() [][]int {
	byLabel := make(map[int][]int)
	for v, x := range l {
		byLabel[x] = append(byLabel[x], v)
	}
	keys := make([]int, 0, len(byLabel))
	for x := range byLabel {
		keys = append(keys, x)
	}
	slices.Sort(keys)

	out := make([][]int, 0, len(keys))
	for _, x := range keys {
		out = append(out, byLabel[x])
	}

	return out
}
