package barrier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Sentinel errors returned by Barrier.
var (
	// ErrInvalidParties indicates a barrier was requested for fewer than one party.
	ErrInvalidParties = errors.New("barrier: parties must be >= 1")

	// ErrBroken indicates the current generation was broken by another party.
	ErrBroken = errors.New("barrier: broken")

	// ErrTimeout indicates AwaitTimeout elapsed before every party arrived.
	ErrTimeout = errors.New("barrier: timed out")

	// ErrResetWhileWaiting indicates Reset was called with parties still waiting.
	ErrResetWhileWaiting = errors.New("barrier: reset while parties are waiting")
)

// Action runs once per generation, in the last arriving party.
type Action func() error

// generation is one trip of the barrier. broken is written under Barrier.mu
// before done is closed, so waiters may read it after <-done without locking.
type generation struct {
	done   chan struct{}
	broken bool
}

func newGeneration() *generation {
	return &generation{done: make(chan struct{})}
}

// Barrier is a cyclic rendezvous for a fixed party count.
type Barrier struct {
	mu      sync.Mutex
	parties int
	arrived int
	action  Action
	gen     *generation
}

// New creates a Barrier for parties participants. action may be nil.
func New(parties int, action Action) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParties, parties)
	}

	return &Barrier{
		parties: parties,
		action:  action,
		gen:     newGeneration(),
	}, nil
}

// Parties returns the number of parties required to trip the barrier.
func (b *Barrier) Parties() int { return b.parties }

// Waiting returns the number of parties currently blocked in Await.
func (b *Barrier) Waiting() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.arrived
}

// Broken reports whether the current generation is broken.
func (b *Barrier) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.gen.broken
}

// Await blocks until all parties have arrived or ctx is done.
// If ctx ends first the generation is broken and context.Cause(ctx) is
// returned, so a context built with context.WithTimeoutCause(ctx, d,
// ErrTimeout) reports ErrTimeout.
func (b *Barrier) Await(ctx context.Context) error {
	return b.await(ctx.Done(), func() error { return context.Cause(ctx) })
}

// AwaitTimeout blocks until all parties have arrived or d elapses.
// On timeout the generation is broken and ErrTimeout is returned.
// A non-positive d waits without bound.
func (b *Barrier) AwaitTimeout(d time.Duration) error {
	if d <= 0 {
		return b.await(nil, nil)
	}
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	return b.await(ctx.Done(), func() error { return ErrTimeout })
}

// Break breaks the current generation, releasing every waiter with ErrBroken.
func (b *Barrier) Break() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.breakLocked()
}

// Reset starts a fresh, unbroken generation with zero arrivals.
func (b *Barrier) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.arrived > 0 {
		return fmt.Errorf("%w: %d waiting", ErrResetWhileWaiting, b.arrived)
	}
	b.gen = newGeneration()

	return nil
}

func (b *Barrier) await(cancel <-chan struct{}, cause func() error) error {
	b.mu.Lock()
	g := b.gen
	if g.broken {
		b.mu.Unlock()
		return ErrBroken
	}

	b.arrived++
	if b.arrived == b.parties {
		// Last party: run the action, then trip.
		err := b.runAction()
		if err != nil {
			b.breakLocked()
			b.mu.Unlock()
			return err
		}
		b.arrived = 0
		close(g.done)
		b.gen = newGeneration()
		b.mu.Unlock()

		return nil
	}
	b.mu.Unlock()

	select {
	case <-g.done:
		if g.broken {
			return ErrBroken
		}
		return nil
	case <-cancel:
		b.mu.Lock()
		defer b.mu.Unlock()
		// The barrier may have tripped or broken while we were waking up.
		if g != b.gen {
			if g.broken {
				return ErrBroken
			}
			return nil
		}
		if g.broken {
			return ErrBroken
		}
		b.breakLocked()

		return cause()
	}
}

// runAction executes the action, converting a panic into an error.
// Called with b.mu held.
func (b *Barrier) runAction() (err error) {
	if b.action == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("barrier: action panicked: %v", r)
		}
	}()

	return b.action()
}

// breakLocked marks the current generation broken and releases its waiters.
// The broken generation stays current until Reset.
func (b *Barrier) breakLocked() {
	if b.gen.broken {
		return
	}
	b.gen.broken = true
	b.arrived = 0
	close(b.gen.done)
}
