// Package mst computes a minimum spanning forest as a lattice-fixpoint
// problem (a parallel Borůvka) and ships Kruskal as the sequential reference.
//
// State is a Forest: a component label per vertex and an accepted flag per
// edge. A forest is forbidden while some accepted edge joins two different
// labels. Repair rounds propagate the minimum label along accepted edges
// (with pointer jumping); progress rounds let every component accept its
// lightest outgoing edge. Edges are totally ordered by (weight, index), so
// the spanning forest is unique and equals Kruskal's.
//
// Directed edge lists are read as undirected. Self-loops are ignored.
//
// Complexity per round: O(V+E) work per worker for Advance (every worker
// scans all edges, writes only for its own components) and O(deg) per owned
// vertex for Ensure.
package mst
