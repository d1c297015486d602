package state_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvlattice/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContainer_VersionPerWrite checks that every write bumps the version by
// exactly one and reads never do.
func TestContainer_VersionPerWrite(t *testing.T) {
	c := state.New(10)
	require.Equal(t, uint64(1), c.Version())

	assert.Equal(t, uint64(2), c.Store(11))
	assert.Equal(t, 11, c.Load())
	assert.Equal(t, uint64(3), c.Update(func(v int) int { return v * 2 }))

	snap := c.Snapshot()
	assert.Equal(t, 22, snap.Value)
	assert.Equal(t, uint64(3), snap.Version)
	assert.Equal(t, uint64(3), c.Version(), "reads must not bump the version")
}

// TestContainer_ZeroValue verifies the zero Container is usable.
func TestContainer_ZeroValue(t *testing.T) {
	var c state.Container[string]
	assert.Equal(t, "", c.Load())
	assert.Equal(t, uint64(0), c.Version())
	assert.Equal(t, uint64(1), c.Store("x"))
}

// TestContainer_ExplicitSections exercises acquire/release with Value and Commit.
func TestContainer_ExplicitSections(t *testing.T) {
	c := state.New([]int{1, 2, 3})

	c.AcquireRead()
	first, last := c.Value()[0], c.Value()[2]
	c.ReleaseRead()
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)

	c.AcquireWrite()
	v := c.Commit([]int{4, 5, 6})
	c.ReleaseWrite()
	assert.Equal(t, uint64(2), v)
	assert.Equal(t, []int{4, 5, 6}, c.Load())
}

// TestContainer_ConcurrentWriters verifies that N concurrent Updates produce
// exactly N version transitions and no lost updates.
func TestContainer_ConcurrentWriters(t *testing.T) {
	c := state.New(0)
	const writers = 64
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			c.Update(func(v int) int { return v + 1 })
		}()
	}
	// Concurrent readers must observe monotone versions.
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		prev := uint64(0)
		for i := 0; i < 1000; i++ {
			cur := c.Version()
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	}()
	wg.Wait()
	readers.Wait()

	snap := c.Snapshot()
	assert.Equal(t, writers, snap.Value)
	assert.Equal(t, uint64(writers+1), snap.Version)
}
