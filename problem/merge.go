package problem

import "reflect"

// DefaultMerge is the merge policy applied when a problem does not implement
// Merger.
//
//   - Forbidden(a) && !Forbidden(b)  -> b
//   - !Forbidden(a) && Forbidden(b)  -> a
//   - otherwise                      -> b (deterministic tie-break)
//
// Complexity: two Forbidden evaluations.
func DefaultMerge[S any](p Problem[S], a, b S) S {
	fa, fb := p.Forbidden(a), p.Forbidden(b)
	if !fa && fb {
		return a
	}

	return b
}

// Merge combines two candidate states using the problem's Merger capability,
// falling back to DefaultMerge.
func Merge[S any](p Problem[S], a, b S) S {
	if m, ok := p.(Merger[S]); ok {
		return m.Merge(a, b)
	}

	return DefaultMerge(p, a, b)
}

// Fold merges candidates left to right: Merge(Merge(Merge(c0, c1), c2), ...).
// The order is fixed by slice position so that non-commutative overrides stay
// deterministic. Fold panics on an empty slice; the engine always has at
// least one worker.
func Fold[S any](p Problem[S], candidates []S) S {
	acc := candidates[0]
	for i := 1; i < len(candidates); i++ {
		acc = Merge(p, acc, candidates[i])
	}

	return acc
}

// Equal reports structural equality of two states, preferring the problem's
// Equaler capability over reflect.DeepEqual.
func Equal[S any](p Problem[S], a, b S) bool {
	if eq, ok := p.(Equaler[S]); ok {
		return eq.Equal(a, b)
	}

	return reflect.DeepEqual(a, b)
}

// Clone returns a private copy of s when the problem implements Cloner and s
// itself otherwise. The second result reports whether a real copy was made.
func Clone[S any](p Problem[S], s S) (S, bool) {
	if c, ok := p.(Cloner[S]); ok {
		return c.Clone(s), true
	}

	return s, false
}
