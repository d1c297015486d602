// Package components labels the connected components of a graph as a
// lattice-fixpoint problem: min-label propagation with pointer jumping.
//
// State is a Labels vector. Every vertex starts as its own label and only
// ever lowers it, to a neighbour's label or to the label of its label. At
// the fixpoint every component carries the index of its smallest vertex,
// which is exactly what the sequential BFS reference produces.
//
// A vector is forbidden when some label is greater than its own index; the
// repair round clamps such labels. Directed edge lists are read as
// undirected, so the result is the weakly connected components.
package components
