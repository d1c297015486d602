package problem

import "errors"

// ErrNilProblem indicates that a nil Problem was passed where one is required.
var ErrNilProblem = errors.New("problem: nil problem")

// Problem is the capability set every lattice-fixpoint client implements.
//
// All methods may be called concurrently from several workers; Forbidden in
// particular is invoked every round and by the default merge, so it must be
// cheap and free of side effects. A Problem is shared by all workers and must
// not keep per-solve mutable state.
type Problem[S any] interface {
	// Forbidden reports whether s violates an invariant the problem requires.
	Forbidden(s S) bool

	// Ensure repairs the violations of s that fall into worker workerID's
	// partition (index % total == workerID) and returns the repaired state.
	Ensure(s S, workerID, total int) S

	// Advance makes monotone progress on worker workerID's partition.
	Advance(s S, workerID, total int) S

	// Initial returns the least element of the lattice.
	Initial() S

	// IsSolution reports whether s is both unforbidden and complete.
	IsSolution(s S) bool
}

// Merger is implemented by problems that combine candidate states with a
// policy richer than DefaultMerge (component-wise minimum, set union, ...).
// The engine folds candidates left to right over worker index, so Merge need
// not be associative or commutative.
type Merger[S any] interface {
	Merge(a, b S) S
}

// Equaler is implemented by problems that can compare two states cheaper or
// more precisely than reflect.DeepEqual.
type Equaler[S any] interface {
	Equal(a, b S) bool
}

// Cloner is implemented by problems whose state shares memory (slices, maps,
// pointers). With a Cloner the engine hands every worker a private copy, so
// Ensure and Advance may mutate their argument in place and return it.
type Cloner[S any] interface {
	Clone(s S) S
}

// InPlace is implemented by problems that support the barrier discipline.
//
// Both methods read freely from src (the state entering the round, never
// written during the round) and write only the elements of dst owned by
// workerID. Writes of different workers therefore never overlap and no
// locking is needed inside the problem.
type InPlace[S any] interface {
	EnsureInto(dst, src S, workerID, total int)
	AdvanceInto(dst, src S, workerID, total int)
}
