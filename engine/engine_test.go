package engine_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/engine"
	"github.com/katalvlaran/lvlattice/internal/pool"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/termination"
)

// counter counts up to target; every worker proposes s+1.
func counter(target int) *problem.Funcs[int] {
	return &problem.Funcs[int]{
		ForbiddenFn:  func(s int) bool { return s < 0 },
		EnsureFn:     func(int, int, int) int { return 0 },
		AdvanceFn:    func(s, _, _ int) int { return min(s+1, target) },
		InitialFn:    func() int { return 0 },
		IsSolutionFn: func(s int) bool { return s == target },
		MergeFn:      func(a, b int) int { return max(a, b) },
	}
}

// prefixMax spreads s[0] to the right, one position per round.
type prefixMax struct{ n int }

func (prefixMax) Forbidden([]int) bool { return false }
func (prefixMax) Ensure(s []int, _, _ int) []int { return s }
func (prefixMax) Clone(s []int) []int { return append([]int(nil), s...) }
func (prefixMax) EnsureInto(dst, src []int, _, _ int) { copy(dst, src) }
func (prefixMax) Equal(a, b []int) bool { return slices.Equal(a, b) }

func (p prefixMax) Initial() []int {
	s := make([]int, p.n)
	s[0] = 5
	return s
}

func (prefixMax) IsSolution(s []int) bool {
	for _, v := range s {
		if v != s[0] {
			return false
		}
	}
	return true
}

func (p prefixMax) Advance(s []int, workerID, total int) []int {
	out := p.Clone(s)
	p.AdvanceInto(out, s, workerID, total)
	return out
}

func (prefixMax) AdvanceInto(dst, src []int, workerID, total int) {
	problem.ForEachOwned(len(src), workerID, total, func(i int) {
		if i > 0 {
			dst[i] = max(src[i-1], src[i])
		}
	})
}

func (prefixMax) Merge(a, b []int) []int {
	out := append([]int(nil), a...)
	for i := range out {
		out[i] = max(out[i], b[i])
	}
	return out
}

func newEngine[S any](t *testing.T, p problem.Problem[S], opts ...config.Option) *engine.Engine[S] {
	t.Helper()
	cfg, err := config.New(append([]config.Option{config.WithWorkers(4)}, opts...)...)
	require.NoError(t, err)
	e, err := engine.New[S](p, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestNew_Validation(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	_, err = engine.New[int](nil, cfg)
	assert.ErrorIs(t, err, problem.ErrNilProblem)

	_, err = engine.New[int](counter(5), config.Config{Workers: 0})
	assert.ErrorIs(t, err, config.ErrInvalidWorkers)

	barrierCfg, err := cfg.With(config.WithDiscipline(config.DisciplineBarrier))
	require.NoError(t, err)
	_, err = engine.New[int](counter(5), barrierCfg)
	assert.ErrorIs(t, err, engine.ErrInPlaceRequired)
}

// TestRun_Counter is the trivial counter scenario: five progress rounds.
func TestRun_Counter(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 8} {
		e := newEngine[int](t, counter(5), config.WithWorkers(workers))

		got, err := e.Run(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 5, got)

		st := e.Stats()
		assert.True(t, st.Converged)
		assert.False(t, st.ForceStopped)
		assert.Equal(t, termination.ReasonConverged, st.Reason)
		assert.Equal(t, 5, st.Iterations)
		assert.Equal(t, 5, st.ProgressRounds)
		assert.Zero(t, st.RepairRounds)
		assert.Equal(t, uint64(st.Iterations+1), st.Version)
		assert.Len(t, st.SolveID, 12)
	}
}

// TestRun_CounterDefaultMerge runs the plain counter: clamp when above the
// target, no Merger, so candidates are folded by the default policy.
func TestRun_CounterDefaultMerge(t *testing.T) {
	const target = 5
	p := &problem.Funcs[int]{
		ForbiddenFn:  func(s int) bool { return s > target },
		EnsureFn:     func(s, _, _ int) int { return min(s, target) },
		AdvanceFn:    func(s, _, _ int) int { return s + 1 },
		InitialFn:    func() int { return 0 },
		IsSolutionFn: func(s int) bool { return s == target },
	}
	e := newEngine[int](t, p, config.WithWorkers(2), config.WithIterationCap(100))

	got, err := e.Run(context.Background(), p.Initial())
	require.NoError(t, err)
	assert.Equal(t, target, got)
	st := e.Stats()
	assert.True(t, st.Converged)
	assert.Equal(t, termination.ReasonConverged, st.Reason)
	assert.Equal(t, 5, st.Iterations)

	got, err = e.Run(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, target, got)
	assert.Equal(t, 1, e.Stats().RepairRounds)
	assert.Equal(t, 1, e.Stats().Iterations)
}

func TestRun_RepairThenProgress(t *testing.T) {
	e := newEngine[int](t, counter(3))

	got, err := e.Run(context.Background(), -7)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	st := e.Stats()
	assert.Equal(t, 1, st.RepairRounds)
	assert.Equal(t, 3, st.ProgressRounds)
	assert.Equal(t, 4, st.Iterations)
}

func TestRun_InitialSolution(t *testing.T) {
	e := newEngine[int](t, counter(5))

	got, err := e.Run(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	st := e.Stats()
	assert.True(t, st.Converged)
	assert.Zero(t, st.Iterations)
	assert.Equal(t, uint64(1), st.Version)
}

// TestRun_IterationCap flips a boolean forever; the cap stops it after
// exactly ten rounds without convergence.
func TestRun_IterationCap(t *testing.T) {
	flip := &problem.Funcs[bool]{
		ForbiddenFn:  func(bool) bool { return false },
		EnsureFn:     func(s bool, _, _ int) bool { return s },
		AdvanceFn:    func(s bool, _, _ int) bool { return !s },
		InitialFn:    func() bool { return false },
		IsSolutionFn: func(bool) bool { return false },
	}
	e := newEngine[bool](t, flip, config.WithIterationCap(10))

	got, err := e.Run(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, got, "ten flips return to the start")

	st := e.Stats()
	assert.False(t, st.Converged)
	assert.Equal(t, 10, st.Iterations)
	assert.Equal(t, termination.ReasonIterationCap, st.Reason)
	assert.Equal(t, uint64(11), st.Version)
}

func TestRun_NoProgressAndStall(t *testing.T) {
	idle := &problem.Funcs[int]{
		ForbiddenFn:  func(int) bool { return false },
		EnsureFn:     func(s, _, _ int) int { return s },
		AdvanceFn:    func(s, _, _ int) int { return s },
		InitialFn:    func() int { return 0 },
		IsSolutionFn: func(int) bool { return false },
	}
	e := newEngine[int](t, idle)
	_, err := e.Run(context.Background(), 1)
	require.NoError(t, err)
	st := e.Stats()
	assert.True(t, st.Converged)
	assert.Equal(t, termination.ReasonNoProgress, st.Reason)
	assert.Equal(t, 1, st.Iterations)

	stuck := &problem.Funcs[int]{
		ForbiddenFn:  func(int) bool { return true },
		EnsureFn:     func(s, _, _ int) int { return s },
		AdvanceFn:    func(s, _, _ int) int { return s },
		InitialFn:    func() int { return 0 },
		IsSolutionFn: func(int) bool { return true },
	}
	e = newEngine[int](t, stuck)
	_, err = e.Run(context.Background(), 1)
	require.NoError(t, err)
	st = e.Stats()
	assert.False(t, st.Converged)
	assert.True(t, st.ForceStopped)
	assert.Equal(t, termination.ReasonStalled, st.Reason)
}

func TestRun_WorkerPanic(t *testing.T) {
	p := counter(5)
	p.AdvanceFn = func(s, workerID, _ int) int {
		if s == 2 && workerID == 1 {
			panic("worker exploded")
		}
		return s + 1
	}
	e := newEngine[int](t, p)

	got, err := e.Run(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, 2, got, "last published state")

	var xe *engine.ExecutionError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, 1, xe.Worker)
	assert.Equal(t, 3, xe.Round)
	assert.Equal(t, engine.PhaseProgress, xe.Phase)
	assert.ErrorIs(t, err, engine.ErrWorkerFailed)
	assert.NotErrorIs(t, err, engine.ErrCoordination)

	var pe *pool.PanicError
	assert.ErrorAs(t, err, &pe)

	st := e.Stats()
	assert.True(t, st.ForceStopped)
	assert.Equal(t, termination.ReasonWorkerFailure, st.Reason)
	assert.Equal(t, 2, st.Iterations)

	// the engine stays usable
	p.AdvanceFn = func(s, _, _ int) int { return min(s+1, 5) }
	got, err = e.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestRun_MergePanic(t *testing.T) {
	p := counter(5)
	p.MergeFn = func(int, int) int { panic("merge exploded") }
	e := newEngine[int](t, p)

	_, err := e.Run(context.Background(), 0)
	var xe *engine.ExecutionError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, engine.Coordinator, xe.Worker)
	assert.Equal(t, engine.PhaseMerge, xe.Phase)
	assert.ErrorIs(t, err, engine.ErrWorkerFailed)
}

func TestRun_Timeout(t *testing.T) {
	p := counter(100)
	p.AdvanceFn = func(s, _, _ int) int {
		time.Sleep(20 * time.Millisecond)
		return s + 1
	}
	e := newEngine[int](t, p, config.WithTimeout(time.Millisecond))

	got, err := e.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "the result of the slow round is kept")

	st := e.Stats()
	assert.True(t, st.ForceStopped)
	assert.False(t, st.Converged)
	assert.Equal(t, termination.ReasonTimeout, st.Reason)
	assert.Equal(t, 1, st.Iterations)
}

func TestRun_Canceled(t *testing.T) {
	e := newEngine[int](t, counter(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := e.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, got)
	assert.Equal(t, termination.ReasonCanceled, e.Stats().Reason)
}

func TestRun_ExternalStop(t *testing.T) {
	p := counter(100)
	var (
		e    *engine.Engine[int]
		once sync.Once
	)
	p.AdvanceFn = func(s, workerID, _ int) int {
		if s == 3 && workerID == 0 {
			once.Do(e.Stop)
		}
		return s + 1
	}
	e = newEngine[int](t, p)

	got, err := e.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "the interrupted round is discarded")

	st := e.Stats()
	assert.Equal(t, termination.ReasonExternal, st.Reason)
	assert.Equal(t, 3, st.Iterations)
	assert.False(t, st.Converged)
}

// TestRun_Disciplines checks that both disciplines reach the same fixpoint
// in the same number of rounds.
func TestRun_Disciplines(t *testing.T) {
	for _, d := range []config.Discipline{config.DisciplineMerge, config.DisciplineBarrier} {
		for _, workers := range []int{1, 3, 8} {
			e := newEngine[[]int](t, prefixMax{n: 8},
				config.WithDiscipline(d), config.WithWorkers(workers))

			got, err := e.Run(context.Background(), prefixMax{n: 8}.Initial())
			require.NoError(t, err, "%s/%d", d, workers)
			assert.Equal(t, []int{5, 5, 5, 5, 5, 5, 5, 5}, got)

			st := e.Stats()
			assert.True(t, st.Converged)
			assert.Equal(t, 7, st.Iterations, "%s/%d", d, workers)
			assert.Equal(t, uint64(8), st.Version)

			snap, ok := e.Snapshot()
			require.True(t, ok)
			assert.Equal(t, got, snap.Value)
			assert.Equal(t, st.Version, snap.Version)
		}
	}
}

type panickyInPlace struct{ prefixMax }

func (p panickyInPlace) AdvanceInto(dst, src []int, workerID, total int) {
	if workerID == 1 {
		panic("partition exploded")
	}
	p.prefixMax.AdvanceInto(dst, src, workerID, total)
}

type slowInPlace struct{ prefixMax }

func (p slowInPlace) AdvanceInto(dst, src []int, workerID, total int) {
	if workerID == 0 {
		time.Sleep(200 * time.Millisecond)
	}
	p.prefixMax.AdvanceInto(dst, src, workerID, total)
}

func TestRun_BarrierFailures(t *testing.T) {
	initial := prefixMax{n: 8}.Initial()

	e := newEngine[[]int](t, panickyInPlace{prefixMax{n: 8}},
		config.WithDiscipline(config.DisciplineBarrier))
	got, err := e.Run(context.Background(), initial)
	assert.Equal(t, initial, got)
	assert.ErrorIs(t, err, engine.ErrWorkerFailed)
	var xe *engine.ExecutionError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, 1, xe.Worker)

	e = newEngine[[]int](t, slowInPlace{prefixMax{n: 8}},
		config.WithDiscipline(config.DisciplineBarrier),
		config.WithBarrierTimeout(10*time.Millisecond))
	got, err = e.Run(context.Background(), initial)
	assert.Equal(t, initial, got)
	assert.ErrorIs(t, err, engine.ErrCoordination)
	assert.Equal(t, uint64(1), e.Stats().Version, "nothing committed")
}

func TestClose(t *testing.T) {
	cfg, err := config.New(config.WithWorkers(2))
	require.NoError(t, err)
	e, err := engine.New[int](counter(5), cfg)
	require.NoError(t, err)

	_, ok := e.Snapshot()
	assert.False(t, ok)

	require.NoError(t, e.Close())
	_, err = e.Run(context.Background(), 0)
	assert.True(t, errors.Is(err, engine.ErrClosed))
}
