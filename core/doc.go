// Package core defines the edge-list input model shared by every client
// problem of the lattice engine.
//
// A graph is a vertex count plus an ordered slice of weighted edges over
// dense vertex indices [0, VertexCount). The edge order is significant: it is
// the stable tie-break used by algorithms that must pick among equal weights
// (the minimum spanning forest picks the smaller edge index), so two runs on
// the same EdgeList always agree.
//
// EdgeList is a plain value type. It performs no locking: build it once,
// then share it read-only between workers. Derived views (Adjacency,
// Incoming) are computed on demand and never cached.
//
// Errors:
//
//	ErrNilEdgeList          - method called on or with a nil *EdgeList.
//	ErrNegativeVertexCount  - VertexCount < 0.
//	ErrVertexOutOfRange     - an edge endpoint is outside [0, VertexCount).
//	ErrNegativeWeight       - a negative weight where a client forbids it.
package core
