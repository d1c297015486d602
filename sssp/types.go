package sssp

import (
	"errors"
	"math"
	"slices"
)

// Inf marks a vertex the source cannot reach.
const Inf int64 = math.MaxInt64

var (
	// ErrNilGraph is returned when New gets a nil edge list.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceOutOfRange is returned when the source is not a vertex.
	ErrSourceOutOfRange = errors.New("sssp: source vertex out of range")
)

// Distances holds the best known distance from the source per vertex.
type Distances []int64

// Reachable reports whether v has a finite distance.
func (d Distances) Reachable(v int) bool { return d[v] != Inf }

// Clone returns an independent copy.
func (d Distances) Clone() Distances { return slices.Clone(d) }

// relax returns du+w, or Inf when du is Inf or the sum overflows.
func relax(du, w int64) int64 {
	if du == Inf || du > Inf-w {
		return Inf
	}

	return du + w
}
