// Package matching solves stable marriage as a lattice-linear predicate:
// Gale–Shapley where every rejected man moves one step down his list per
// round, in parallel.
//
// State is a Proposals vector: the position in his preference list each
// man is currently proposing to. A vector is forbidden while some woman
// receives a proposal from a man she likes less than another proposer;
// the repair round advances exactly those men. Advance is the identity,
// since a vector that is not forbidden is already a stable matching.
//
// The fixpoint is the man-optimal stable matching, the one the sequential
// GaleShapley reference returns.
package matching
