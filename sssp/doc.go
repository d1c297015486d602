// Package sssp computes single-source shortest distances as a
// lattice-fixpoint problem: a pull-based Bellman-Ford where every worker
// relaxes the incoming arcs of the vertices it owns.
//
// State is a Distances vector with Inf for unreached vertices. A vector is
// forbidden while the source is not at distance 0; the repair round fixes
// that, progress rounds lower distances until no arc can relax. Distances
// only ever decrease, so the element-wise minimum is a valid merge.
//
// Weights must be non-negative. Directed edge lists keep their direction.
// Dijkstra is the sequential reference.
package sssp
