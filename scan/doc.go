// Package scan computes inclusive prefix sums by pointer jumping, as a
// lattice-fixpoint problem.
//
// Every index i carries a partial: the sum of values[Start..i]. A progress
// round extends each owned partial by the partial that ends right before
// its start, which doubles the covered span, so ⌈log₂ n⌉ rounds finish.
// A partial with a start outside [0, i] is forbidden and reset by repair.
package scan
