// Package state provides the versioned, lock-protected holder of the engine's
// shared lattice state.
//
// Container[S] guards one value of type S behind a sync.RWMutex (many
// concurrent readers or one exclusive writer) and a monotone version counter
// that is incremented exactly once per successful write. The version is
// never decremented, so observers can tell rounds apart by version alone.
//
// Two access styles are supported:
//
//   - Self-locking: Load, Store, Update, Snapshot, Version.
//   - Explicit critical sections: AcquireRead/ReleaseRead and
//     AcquireWrite/ReleaseWrite bracket several Value calls (and, under write
//     access, a Commit) in one critical section.
//
// Never hold acquired access across a blocking rendezvous (for example a
// barrier wait): every other party that needs the lock would deadlock.
package state
