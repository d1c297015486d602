// Package pool runs a fixed set of long-lived worker goroutines, one per
// worker id, and dispatches one task to all of them at a time.
//
// Each worker owns a private task channel, so a dispatched function always
// runs with the same id on the same goroutine across rounds. Dispatch
// blocks until every worker has finished (a join), which is what makes the
// engine's rounds strictly sequential.
package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidSize indicates a pool size below one.
	ErrInvalidSize = errors.New("pool: size must be >= 1")

	// ErrClosed is returned by Dispatch after Shutdown started.
	ErrClosed = errors.New("pool: closed")

	// ErrShutdownTimeout indicates that workers were still busy when the
	// shutdown grace period elapsed; they are abandoned.
	ErrShutdownTimeout = errors.New("pool: workers still running after grace period")
)

// Task is the unit of work handed to every worker during one dispatch.
type Task func(workerID int) error

// PanicError carries a panic recovered from a Task.
type PanicError struct {
	Worker int
	Value  any
	Stack  []byte
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("pool: worker %d panicked: %v", e.Worker, e.Value)
}

// job is one dispatch as seen by a single worker.
type job struct {
	fn      Task
	errs    []error
	pending *atomic.Int32
	done    chan struct{} // closed by the last worker to finish
}

// Pool is a fixed-size worker pool. The zero value is not usable; create
// pools with New and release them with Shutdown.
type Pool struct {
	size   int
	tasks  []chan job
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex // serializes Dispatch
	closed atomic.Bool
	once   sync.Once
	result error
}

// New starts size worker goroutines.
func New(size int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	p := &Pool{
		size:   size,
		tasks:  make([]chan job, size),
		group:  g,
		ctx:    gctx,
		cancel: cancel,
	}
	for id := 0; id < size; id++ {
		p.tasks[id] = make(chan job, 1)
		g.Go(func() error { return p.work(gctx, id) })
	}

	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Dispatch runs fn once on every worker and waits for all of them. The
// returned slice has one entry per worker id; a nil entry means success.
// A panic inside fn is recovered into a *PanicError for that worker.
//
// If the pool is shut down while Dispatch waits, it returns ErrClosed
// without waiting for tasks still in flight and leaves nothing behind that
// waits for them.
func (p *Pool) Dispatch(fn Task) ([]error, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed.Load() {
		return nil, ErrClosed
	}

	j := job{fn: fn, errs: make([]error, p.size), pending: new(atomic.Int32), done: make(chan struct{})}
	j.pending.Store(int32(p.size))
	for id := range p.tasks {
		p.tasks[id] <- j
	}

	select {
	case <-j.done:
		return j.errs, nil
	case <-p.ctx.Done():
		return nil, ErrClosed
	}
}

// Shutdown stops all workers. It waits up to grace for running tasks and
// returns ErrShutdownTimeout if some are still busy, in which case they are
// abandoned. A non-positive grace waits without bound. Shutdown is
// idempotent; later calls return the first call's result.
func (p *Pool) Shutdown(grace time.Duration) error {
	p.once.Do(func() {
		p.closed.Store(true)
		p.cancel()

		done := make(chan error, 1)
		go func() { done <- p.group.Wait() }()

		if grace <= 0 {
			p.result = <-done
			return
		}

		timer := time.NewTimer(grace)
		defer timer.Stop()
		select {
		case p.result = <-done:
		case <-timer.C:
			p.result = fmt.Errorf("%w (%s)", ErrShutdownTimeout, grace)
		}
	})

	return p.result
}

// Closed reports whether Shutdown has been called.
func (p *Pool) Closed() bool { return p.closed.Load() }

func (p *Pool) work(ctx context.Context, id int) error {
	for {
		select {
		case j := <-p.tasks[id]:
			j.errs[id] = p.exec(id, j.fn)
			if j.pending.Add(-1) == 0 {
				close(j.done)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *Pool) exec(id int, fn Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Worker: id, Value: r, Stack: debug.Stack()}
		}
	}()

	return fn(id)
}
