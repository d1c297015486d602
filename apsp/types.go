package apsp

import (
	"errors"
	"math"
	"slices"
)

// Inf marks a pair with no path.
const Inf int64 = math.MaxInt64

// ErrNilGraph is returned when a nil edge list is passed.
var ErrNilGraph = errors.New("apsp: graph is nil")

// Matrix is a dense N×N distance matrix in row-major order.
type Matrix struct {
	N int
	D []int64
}

// NewMatrix returns an n×n matrix filled with Inf.
func NewMatrix(n int) Matrix {
	m := Matrix{N: n, D: make([]int64, n*n)}
	for i := range m.D {
		m.D[i] = Inf
	}

	return m
}

// At returns the distance from i to j.
func (m Matrix) At(i, j int) int64 { return m.D[i*m.N+j] }

// Row returns row i, sharing storage with m.
func (m Matrix) Row(i int) []int64 { return m.D[i*m.N : (i+1)*m.N] }

// Clone returns an independent copy.
func (m Matrix) Clone() Matrix { return Matrix{N: m.N, D: slices.Clone(m.D)} }

// Equal reports whether both matrices hold the same distances.
func (m Matrix) Equal(o Matrix) bool { return m.N == o.N && slices.Equal(m.D, o.D) }

// add is a+b saturating at Inf.
func add(a, b int64) int64 {
	if a == Inf || b == Inf || a > Inf-b {
		return Inf
	}

	return a + b
}
