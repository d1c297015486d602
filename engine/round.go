package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlattice/barrier"
	"github.com/katalvlaran/lvlattice/internal/pool"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/termination"
)

// round executes one round from s and returns the state published by it,
// or s when nothing was published.
func (e *Engine[S]) round(ctx context.Context, r *run[S], s S) (S, error) {
	start := time.Now()
	n := e.detector.Iterations() + 1

	ctx, span := tracer.Start(ctx, "engine.Round",
		trace.WithAttributes(attribute.Int("round", n)),
	)
	defer span.End()

	var forbidden bool
	if err := guard(func() { forbidden = e.problem.Forbidden(s) }); err != nil {
		return s, e.spanFail(span, e.fail(ctx, r, n, PhaseDetect, Coordinator, err))
	}

	phase := PhaseProgress
	if forbidden {
		phase = PhaseRepair
		r.repair++
	} else {
		r.progress++
	}
	span.SetAttributes(attribute.String("phase", string(phase)))

	var (
		m         S
		published bool
		err       error
	)
	if e.barrier != nil {
		m, published, err = e.barrierRound(ctx, r, n, phase, s)
	} else {
		m, published, err = e.mergeRound(ctx, r, n, phase, s)
	}
	if err != nil {
		return m, e.spanFail(span, err)
	}
	if !published {
		r.log.Debug("round abandoned", slog.Int("round", n), slog.String("reason", e.detector.Reason().String()))
		return m, nil
	}

	// Verdicts are recorded before the iteration is counted so that a
	// converging round is not reported as hitting the cap.
	if err = guard(func() { e.judge(r, n, s, m) }); err != nil {
		e.detector.Increment()
		return m, e.spanFail(span, e.fail(ctx, r, n, PhaseCheck, Coordinator, err))
	}
	e.detector.Increment()

	elapsed := time.Since(start)
	if e.cfg.Timed() && elapsed > e.cfg.Timeout && !e.detector.ShouldTerminate() {
		e.detector.ForceStop(termination.ReasonTimeout)
		r.log.Warn("round exceeded timeout",
			slog.Int("round", n),
			slog.Duration("duration", elapsed),
			slog.Duration("timeout", e.cfg.Timeout),
		)
	}

	recordRound(ctx, phase, elapsed)
	r.log.Debug("round complete",
		slog.Int("round", n),
		slog.String("phase", string(phase)),
		slog.Uint64("version", r.container.Version()),
		slog.Duration("duration", elapsed),
	)

	return m, nil
}

// judge applies the solution and no-progress checks to the round result m.
func (e *Engine[S]) judge(r *run[S], n int, s, m S) {
	p := e.problem
	forbidden := p.Forbidden(m)

	switch {
	case !forbidden && p.IsSolution(m):
		e.detector.MarkConverged(termination.ReasonConverged)
	case problem.Equal(p, m, s):
		if !forbidden {
			e.detector.MarkConverged(termination.ReasonNoProgress)
			return
		}
		e.detector.ForceStop(termination.ReasonStalled)
		r.log.Warn("repair made no progress", slog.Int("round", n))
	}
}

// mergeRound runs the merge discipline: every worker returns a candidate
// and the candidates are folded in worker order.
func (e *Engine[S]) mergeRound(ctx context.Context, r *run[S], n int, phase Phase, s S) (S, bool, error) {
	total := e.cfg.Workers
	candidates := make([]S, total)

	errs, err := e.pool.Dispatch(func(id int) error {
		if e.detector.ForceStopped() {
			candidates[id] = s
			return nil
		}
		in := s
		if e.cloner != nil {
			in = e.cloner.Clone(s)
		}
		if phase == PhaseRepair {
			candidates[id] = e.problem.Ensure(in, id, total)
		} else {
			candidates[id] = e.problem.Advance(in, id, total)
		}

		return nil
	})
	if err != nil {
		return s, false, e.dispatchFailed(r, err)
	}
	if id, werr := primary(errs); werr != nil {
		return s, false, e.fail(ctx, r, n, phase, id, werr)
	}
	if e.detector.ForceStopped() {
		return s, false, nil
	}

	var m S
	if err = guard(func() { m = problem.Fold(e.problem, candidates) }); err != nil {
		return s, false, e.fail(ctx, r, n, PhaseMerge, Coordinator, err)
	}
	r.container.Store(m)

	return m, true, nil
}

// barrierRound runs the barrier discipline: workers fill their partitions
// of a staged copy and the barrier action commits it.
func (e *Engine[S]) barrierRound(ctx context.Context, r *run[S], n int, phase Phase, s S) (S, bool, error) {
	total := e.cfg.Workers
	before := r.container.Version()

	var staged S
	if err := guard(func() { staged = e.cloner.Clone(s) }); err != nil {
		return s, false, e.fail(ctx, r, n, phase, Coordinator, err)
	}
	e.staged = staged

	errs, err := e.pool.Dispatch(func(id int) error {
		if err := e.fill(r, staged, phase, id, total); err != nil {
			e.barrier.Break()
			return err
		}

		return e.await(ctx)
	})
	if err != nil {
		return s, false, e.dispatchFailed(r, err)
	}

	committed := r.container.Version() > before
	if id, werr := primary(errs); werr != nil {
		switch {
		case ctx.Err() != nil:
			e.detector.ForceStop(termination.ReasonCanceled)
			return s, false, fmt.Errorf("engine: solve %s: %w", r.id, ctx.Err())
		case e.detector.ForceStopped() && !committed:
			return s, false, nil
		case !committed:
			return s, false, e.fail(ctx, r, n, phase, id, werr)
		}
	}

	return staged, true, nil
}

// fill writes worker id's partition of dst under shared access to the
// container, so no commit can interleave with the reads of src.
func (e *Engine[S]) fill(r *run[S], dst S, phase Phase, id, total int) (err error) {
	if e.detector.ForceStopped() {
		return nil
	}

	r.container.AcquireRead()
	defer r.container.ReleaseRead()
	defer func() {
		if v := recover(); v != nil {
			err = &pool.PanicError{Worker: id, Value: v, Stack: debug.Stack()}
		}
	}()

	src := r.container.Value()
	if phase == PhaseRepair {
		e.inplace.EnsureInto(dst, src, id, total)
	} else {
		e.inplace.AdvanceInto(dst, src, id, total)
	}

	return nil
}

// dispatchFailed handles a pool that was shut down under a running round.
func (e *Engine[S]) dispatchFailed(r *run[S], err error) error {
	e.detector.ForceStop(termination.ReasonExternal)
	if errors.Is(err, pool.ErrClosed) {
		return fmt.Errorf("engine: solve %s: %w", r.id, ErrClosed)
	}

	return fmt.Errorf("engine: solve %s: %w", r.id, err)
}

func (e *Engine[S]) await(ctx context.Context) error {
	if e.cfg.BarrierTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, e.cfg.BarrierTimeout, barrier.ErrTimeout)
		defer cancel()
	}

	return e.barrier.Await(ctx)
}

// commitStaged is the barrier action: it publishes the staged copy as the
// next version. It runs in the last arriving worker.
func (e *Engine[S]) commitStaged() error {
	c := e.container.Load()
	if c == nil {
		return errors.New("engine: no active run")
	}
	c.Store(e.staged)

	return nil
}

func (e *Engine[S]) spanFail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

// primary picks the error to report for a round: the first one by worker
// index that is not a mere consequence of a broken barrier.
func primary(errs []error) (int, error) {
	first := -1
	for id, err := range errs {
		if err == nil {
			continue
		}
		if first < 0 {
			first = id
		}
		if !errors.Is(err, barrier.ErrBroken) {
			return id, err
		}
	}
	if first < 0 {
		return Coordinator, nil
	}

	return first, errs[first]
}

// guard runs fn and converts a panic into an error.
func guard(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	fn()

	return nil
}
