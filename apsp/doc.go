// Package apsp computes all-pairs shortest distances as a lattice-fixpoint
// problem: repeated min-plus squaring of a dense distance matrix, each
// worker squaring the rows it owns.
//
// The initial matrix holds the direct arc weights with an unset diagonal,
// so the first round is a repair that zeroes the owned diagonal entries.
// Every progress round doubles the number of hops the matrix accounts
// for; ⌈log₂(V-1)⌉ progress rounds reach the closure.
//
// Weights must be non-negative. Directed edge lists keep their direction.
// FloydWarshall is the sequential reference.
//
// Memory: one V×V int64 matrix per state copy.
package apsp
