// Package problem defines the contract every lattice-fixpoint client implements
// and the default behavior the engine applies when a capability is absent.
//
// What & Why
//
//   - A Problem describes a monotone walk over a lattice of states S. The engine
//     never interprets S; it only asks the problem three questions per round:
//     is the state forbidden, how do I repair it (Ensure), how do I move it up
//     (Advance).
//
//   - Work is split across workers by the canonical round-robin partition:
//     worker w of n owns every index i with i % n == w. Ensure and Advance only
//     act on the caller's partition; see Owns and ForEachOwned.
//
// Contract
//
//   - Forbidden(s)        : true iff s violates a required invariant. Pure, cheap,
//     deterministic, safe for concurrent calls.
//   - Ensure(s, w, n)     : repairs violations inside partition w. Idempotent on a
//     partition without violations. Never decreases lattice order.
//   - Advance(s, w, n)    : monotone progress inside partition w. May introduce
//     violations that the next Ensure fixes.
//   - Initial()           : the unique least state.
//   - IsSolution(s)       : s is unforbidden and complete.
//
// Optional capabilities
//
//	Capabilities are discovered by type assertion, so a problem opts in simply by
//	declaring the method:
//
//	- Merger[S]   Merge(a, b S) S              override the merge policy.
//	- Equaler[S]  Equal(a, b S) bool           structural equality for no-progress detection.
//	- Cloner[S]   Clone(s S) S                 deep copy; workers may then mutate their copy.
//	- InPlace[S]  EnsureInto/AdvanceInto       partition writers for the barrier discipline.
//
// Default merge
//
//	DefaultMerge prefers whichever candidate is not forbidden and returns the
//	second argument when both agree. It is commutative up to that tie-break and
//	satisfies Merge(s, s) == s.
//
// Errors:
//
//	ErrNilProblem - a nil Problem was handed to a helper.
package problem
