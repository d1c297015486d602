package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvlattice/barrier"
	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/internal/pool"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/state"
	"github.com/katalvlaran/lvlattice/termination"
)

// Engine runs one Problem to a fixpoint with a fixed worker pool.
//
// Description:
//
//	An Engine owns its worker goroutines, its phase barrier and its
//	termination detector for its whole lifetime. Every Run seeds a fresh
//	state container, resets the detector and the barrier, and then executes
//	rounds until the detector says stop.
//
// Thread Safety:
//
//	Run calls are serialized. Stop, Stats and Snapshot may be called from
//	any goroutine, including while Run is executing.
type Engine[S any] struct {
	problem  problem.Problem[S]
	cloner   problem.Cloner[S]
	inplace  problem.InPlace[S]
	cfg      config.Config
	logger   *slog.Logger
	pool     *pool.Pool
	barrier  *barrier.Barrier
	detector *termination.Detector

	runMu     sync.Mutex
	container atomic.Pointer[state.Container[S]]
	staged    S // barrier discipline: the copy committed by the barrier action

	statsMu sync.RWMutex
	stats   Stats
}

// New validates cfg and starts an Engine for p.
//
// Inputs:
//
//	p - The problem to solve. Must not be nil.
//	cfg - Execution parameters; validated here.
//	opts - Optional settings such as WithLogger.
//
// Outputs:
//
//	*Engine[S] - A started engine; release it with Close.
//	error - problem.ErrNilProblem, a config sentinel, or ErrInPlaceRequired.
func New[S any](p problem.Problem[S], cfg config.Config, opts ...Option) (*Engine[S], error) {
	if p == nil {
		return nil, problem.ErrNilProblem
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	e := &Engine[S]{
		problem:  p,
		cfg:      cfg,
		logger:   newLogger(cfg.Logging, o.logger),
		detector: termination.New(cfg.IterationCap),
	}
	e.cloner, _ = p.(problem.Cloner[S])
	e.inplace, _ = p.(problem.InPlace[S])

	if cfg.Discipline == config.DisciplineBarrier {
		if e.cloner == nil || e.inplace == nil {
			return nil, fmt.Errorf("%w: %T", ErrInPlaceRequired, p)
		}
		b, err := barrier.New(cfg.Workers, e.commitStaged)
		if err != nil {
			return nil, err
		}
		e.barrier = b
	}

	wp, err := pool.New(cfg.Workers)
	if err != nil {
		return nil, err
	}
	e.pool = wp

	return e, nil
}

func newLogger(enabled bool, l *slog.Logger) *slog.Logger {
	if !enabled {
		return slog.New(slog.DiscardHandler)
	}
	if l == nil {
		return slog.Default()
	}

	return l
}

// Config returns the validated configuration.
func (e *Engine[S]) Config() config.Config { return e.cfg }

// Run drives initial to a fixpoint.
//
// Description:
//
//	Run always returns the last published state. The error is nil when the
//	run converged, exhausted its iteration cap, stalled, timed out or was
//	stopped with Stop; Stats tells these apart. A failing worker yields an
//	*ExecutionError and a cancelled ctx yields its error wrapped.
//
// Inputs:
//
//	ctx - Cancellation, observed between rounds and at the phase barrier.
//	initial - The state of version 1.
//
// Outputs:
//
//	S - The final state.
//	error - Non-nil on failure, cancellation or after Close.
func (e *Engine[S]) Run(ctx context.Context, initial S) (S, error) {
	if ctx == nil {
		return initial, ErrNilContext
	}

	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.pool.Closed() {
		return initial, ErrClosed
	}
	initMetrics(e.logger)

	r := &run[S]{
		id:        uuid.NewString()[:12],
		start:     time.Now(),
		container: state.New(initial),
	}
	e.container.Store(r.container)
	e.detector.Reset()
	if e.barrier != nil {
		if err := e.barrier.Reset(); err != nil {
			return initial, fmt.Errorf("engine: reset barrier: %w", err)
		}
	}
	r.log = e.logger.With(slog.String("solve_id", r.id))

	ctx, span := tracer.Start(ctx, "engine.Run",
		trace.WithAttributes(
			attribute.String("solve_id", r.id),
			attribute.Int("workers", e.cfg.Workers),
			attribute.String("discipline", string(e.cfg.Discipline)),
			attribute.Int("iteration_cap", e.cfg.IterationCap),
		),
	)
	defer span.End()

	r.log.Info("solve started",
		slog.Int("workers", e.cfg.Workers),
		slog.String("discipline", string(e.cfg.Discipline)),
		slog.Int("iteration_cap", e.cfg.IterationCap),
	)

	final, err := e.loop(ctx, r)

	st := e.publishStats(r)
	recordRun(ctx, st)
	span.SetAttributes(
		attribute.Int("iterations", st.Iterations),
		attribute.Bool("converged", st.Converged),
		attribute.String("reason", st.Reason.String()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Error("solve failed",
			slog.Int("iterations", st.Iterations),
			slog.String("reason", st.Reason.String()),
			slog.String("error", err.Error()),
		)

		return final, err
	}

	span.SetStatus(codes.Ok, "")
	r.log.Info("solve finished",
		slog.Int("iterations", st.Iterations),
		slog.Bool("converged", st.Converged),
		slog.String("reason", st.Reason.String()),
		slog.Uint64("version", st.Version),
		slog.Duration("duration", st.Duration),
	)

	return final, nil
}

// loop executes rounds until the detector says stop.
func (e *Engine[S]) loop(ctx context.Context, r *run[S]) (S, error) {
	s := r.container.Load()

	var done bool
	if err := guard(func() { done = e.problem.IsSolution(s) && !e.problem.Forbidden(s) }); err != nil {
		return s, e.fail(ctx, r, 0, PhaseCheck, Coordinator, err)
	}
	if done {
		e.detector.MarkConverged(termination.ReasonConverged)
		r.log.Debug("initial state is a solution")

		return s, nil
	}

	for !e.detector.ShouldTerminate() {
		if err := ctx.Err(); err != nil {
			e.detector.ForceStop(termination.ReasonCanceled)
			return s, fmt.Errorf("engine: solve %s: %w", r.id, err)
		}

		next, err := e.round(ctx, r, s)
		s = next
		if err != nil {
			return s, err
		}
	}

	return s, nil
}

// Stop asks a running Run to finish after the current round. It wakes
// workers blocked at the phase barrier. Stop has no effect on later runs.
func (e *Engine[S]) Stop() {
	e.detector.ForceStop(termination.ReasonExternal)
	if e.barrier != nil {
		e.barrier.Break()
	}
}

// Stats returns the statistics of the latest run, or of the run in
// progress once it has finished.
func (e *Engine[S]) Stats() Stats {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()

	return e.stats
}

// Snapshot returns the state currently published by the latest run and its
// version. ok is false before the first run.
func (e *Engine[S]) Snapshot() (snap state.Snapshot[S], ok bool) {
	c := e.container.Load()
	if c == nil {
		return snap, false
	}

	return c.Snapshot(), true
}

// Close stops any running run and shuts the worker pool down, waiting up to
// the configured shutdown grace. Workers still busy after that are
// abandoned and pool.ErrShutdownTimeout is returned wrapped.
func (e *Engine[S]) Close() error {
	e.Stop()
	if err := e.pool.Shutdown(e.cfg.ShutdownGrace); err != nil {
		return fmt.Errorf("engine: close: %w", err)
	}

	return nil
}

func (e *Engine[S]) publishStats(r *run[S]) Stats {
	st := Stats{
		SolveID:        r.id,
		Iterations:     e.detector.Iterations(),
		Converged:      e.detector.Converged(),
		ForceStopped:   e.detector.ForceStopped(),
		Reason:         e.detector.Reason(),
		RepairRounds:   r.repair,
		ProgressRounds: r.progress,
		Version:        r.container.Version(),
		Duration:       time.Since(r.start),
	}

	e.statsMu.Lock()
	e.stats = st
	e.statsMu.Unlock()

	return st
}

// fail records a failure that aborts the run.
func (e *Engine[S]) fail(ctx context.Context, r *run[S], round int, phase Phase, worker int, err error) error {
	e.detector.ForceStop(termination.ReasonWorkerFailure)
	recordFailure(ctx, phase)

	return &ExecutionError{SolveID: r.id, Round: round, Phase: phase, Worker: worker, Err: err}
}

// run is the per-Run bookkeeping.
type run[S any] struct {
	id        string
	start     time.Time
	container *state.Container[S]
	log       *slog.Logger
	repair    int
	progress  int
}
