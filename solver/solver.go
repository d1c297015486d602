package solver

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/engine"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/state"
)

// ErrClosed is returned by Solve after Shutdown.
var ErrClosed = errors.New("solver: closed")

// Option customizes a Solver.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the solver and its engine. It is used only
// when logging is enabled in the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Solver couples a Problem with a configured Engine.
type Solver[S any] struct {
	problem problem.Problem[S]
	engine  *engine.Engine[S]
	logger  *slog.Logger
	closed  atomic.Bool
}

// New validates cfg and builds a Solver for p. Every configuration error is
// reported here.
func New[S any](p problem.Problem[S], cfg config.Config, opts ...Option) (*Solver[S], error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	e, err := engine.New(p, cfg, engine.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.Logging {
		logger = o.logger
		if logger == nil {
			logger = slog.Default()
		}
	}

	return &Solver[S]{problem: p, engine: e, logger: logger}, nil
}

// Solve runs the engine from the problem's initial state and returns the
// final state. See engine.Engine.Run for the error contract.
func (s *Solver[S]) Solve(ctx context.Context) (S, error) {
	if s.closed.Load() {
		var zero S
		return zero, ErrClosed
	}

	final, err := s.engine.Run(ctx, s.problem.Initial())
	if errors.Is(err, engine.ErrClosed) {
		return final, ErrClosed
	}

	return final, err
}

// Stop asks a Solve in progress to finish after its current round.
func (s *Solver[S]) Stop() { s.engine.Stop() }

// Stats returns the statistics of the latest solve.
func (s *Solver[S]) Stats() engine.Stats { return s.engine.Stats() }

// Snapshot returns the state currently published by the latest solve.
func (s *Solver[S]) Snapshot() (state.Snapshot[S], bool) { return s.engine.Snapshot() }

// Shutdown releases the worker pool. It waits at most the configured
// shutdown grace; workers still running after that are abandoned and the
// fact is logged. Shutdown never fails and is safe to call more than once.
func (s *Solver[S]) Shutdown() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	if err := s.engine.Close(); err != nil {
		s.logger.Warn("solver shutdown abandoned running workers",
			slog.Duration("grace", s.engine.Config().ShutdownGrace),
			slog.String("error", err.Error()),
		)
	}
}

// Run solves p once with cfg and releases every resource before returning.
func Run[S any](ctx context.Context, p problem.Problem[S], cfg config.Config, opts ...Option) (S, engine.Stats, error) {
	s, err := New(p, cfg, opts...)
	if err != nil {
		var zero S
		return zero, engine.Stats{}, err
	}
	defer s.Shutdown()

	final, err := s.Solve(ctx)

	return final, s.Stats(), err
}
