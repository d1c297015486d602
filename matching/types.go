package matching

import (
	"errors"
	"slices"
)

var (
	// ErrSizeMismatch is returned when the two sides differ in size.
	ErrSizeMismatch = errors.New("matching: men and women differ in count")

	// ErrInvalidPreferences is returned when a preference list is not a
	// permutation of the other side.
	ErrInvalidPreferences = errors.New("matching: preference list is not a permutation")
)

// Proposals holds, per man, the index into his preference list of the
// woman he currently proposes to.
type Proposals []int

// Clone returns an independent copy.
func (p Proposals) Clone() Proposals { return slices.Clone(p) }
