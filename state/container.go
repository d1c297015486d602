package state

import "sync"

// Snapshot is a value together with the version it was observed at.
type Snapshot[S any] struct {
	Value   S
	Version uint64
}

// Container holds the current state and its version.
// The zero value is ready to use and holds the zero S at version 0.
type Container[S any] struct {
	mu      sync.RWMutex
	value   S
	version uint64
}

// New returns a Container seeded with initial at version 1.
func New[S any](initial S) *Container[S] {
	return &Container[S]{value: initial, version: 1}
}

// Load returns the current value under a read lock.
func (c *Container[S]) Load() S {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value
}

// Store replaces the value under the write lock and returns the new version.
func (c *Container[S]) Store(v S) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.commitLocked(v)
}

// Update applies fn to the current value under the write lock, stores the
// result and returns the new version. fn must not touch the container.
func (c *Container[S]) Update(fn func(S) S) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.commitLocked(fn(c.value))
}

// Snapshot returns value and version read under the same read lock.
func (c *Container[S]) Snapshot() Snapshot[S] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot[S]{Value: c.value, Version: c.version}
}

// Version returns the current version.
func (c *Container[S]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.version
}

// AcquireRead takes shared access. Pair with ReleaseRead.
func (c *Container[S]) AcquireRead() { c.mu.RLock() }

// ReleaseRead releases shared access taken by AcquireRead.
func (c *Container[S]) ReleaseRead() { c.mu.RUnlock() }

// AcquireWrite takes exclusive access. Pair with ReleaseWrite.
func (c *Container[S]) AcquireWrite() { c.mu.Lock() }

// ReleaseWrite releases exclusive access taken by AcquireWrite.
func (c *Container[S]) ReleaseWrite() { c.mu.Unlock() }

// Value returns the current value without locking.
// The caller must hold read or write access.
func (c *Container[S]) Value() S { return c.value }

// Commit replaces the value and bumps the version without locking.
// The caller must hold write access.
func (c *Container[S]) Commit(v S) uint64 { return c.commitLocked(v) }

func (c *Container[S]) commitLocked(v S) uint64 {
	c.value = v
	c.version++

	return c.version
}
