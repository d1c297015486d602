package problem

import "reflect"

// Funcs adapts plain functions to the Problem contract. It is handy for small
// problems and tests. The five required functions must be set; MergeFn,
// EqualFn and CloneFn are optional and fall back to DefaultMerge,
// reflect.DeepEqual and the identity respectively.
type Funcs[S any] struct {
	ForbiddenFn  func(s S) bool
	EnsureFn     func(s S, workerID, total int) S
	AdvanceFn    func(s S, workerID, total int) S
	InitialFn    func() S
	IsSolutionFn func(s S) bool

	MergeFn func(a, b S) S
	EqualFn func(a, b S) bool
	CloneFn func(s S) S
}

// Forbidden implements Problem.
func (f *Funcs[S]) Forbidden(s S) bool { return f.ForbiddenFn(s) }

// Ensure implements Problem.
func (f *Funcs[S]) Ensure(s S, workerID, total int) S { return f.EnsureFn(s, workerID, total) }

// Advance implements Problem.
func (f *Funcs[S]) Advance(s S, workerID, total int) S { return f.AdvanceFn(s, workerID, total) }

// Initial implements Problem.
func (f *Funcs[S]) Initial() S { return f.InitialFn() }

// IsSolution implements Problem.
func (f *Funcs[S]) IsSolution(s S) bool { return f.IsSolutionFn(s) }

// Merge implements Merger.
func (f *Funcs[S]) Merge(a, b S) S {
	if f.MergeFn == nil {
		return DefaultMerge[S](f, a, b)
	}

	return f.MergeFn(a, b)
}

// Equal implements Equaler.
func (f *Funcs[S]) Equal(a, b S) bool {
	if f.EqualFn == nil {
		return reflect.DeepEqual(a, b)
	}

	return f.EqualFn(a, b)
}

// Clone implements Cloner.
func (f *Funcs[S]) Clone(s S) S {
	if f.CloneFn == nil {
		return s
	}

	return f.CloneFn(s)
}
