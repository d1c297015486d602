package scan_test

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/scan"
	"github.com/katalvlaran/lvlattice/solver"
)

func TestNewOverflow(t *testing.T) {
	_, err := scan.New([]int64{math.MaxInt64, 1})
	assert.ErrorIs(t, err, scan.ErrOverflow)
	_, err = scan.New([]int64{math.MinInt64, -1})
	assert.ErrorIs(t, err, scan.ErrOverflow)
}

func TestEmpty(t *testing.T) {
	p, err := scan.New(nil)
	require.NoError(t, err)
	cfg, err := config.New(config.WithWorkers(2))
	require.NoError(t, err)

	s, st, err := solver.Run[scan.Partials](context.Background(), p, cfg)
	require.NoError(t, err)
	assert.Empty(t, s.Sum)
	assert.Equal(t, 0, st.Iterations)
	assert.True(t, st.Converged)
}

// TestLogRounds checks the doubling: eight values need three rounds.
func TestLogRounds(t *testing.T) {
	p, err := scan.New([]int64{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	cfg, err := config.New(config.WithWorkers(3))
	require.NoError(t, err)

	s, st, err := solver.Run[scan.Partials](context.Background(), p, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 6, 10, 15, 21, 28, 36}, s.Sum)
	assert.Equal(t, 3, st.Iterations)
	assert.True(t, s.Done())
}

func TestMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]int64, 300)
	for i := range values {
		values[i] = rng.Int63n(2001) - 1000
	}
	want, err := scan.Sequential(values)
	require.NoError(t, err)
	p, err := scan.New(values)
	require.NoError(t, err)

	for _, d := range []config.Discipline{config.DisciplineMerge, config.DisciplineBarrier} {
		for _, workers := range []int{1, 2, 3, 7, 8} {
			t.Run(fmt.Sprintf("%s/%d", d, workers), func(t *testing.T) {
				cfg, err := config.New(config.WithWorkers(workers), config.WithDiscipline(d))
				require.NoError(t, err)
				s, st, err := solver.Run[scan.Partials](context.Background(), p, cfg)
				require.NoError(t, err)
				assert.Equal(t, want, s.Sum)
				assert.Equal(t, 9, st.Iterations)
			})
		}
	}
}

func TestProblemContract(t *testing.T) {
	p, err := scan.New([]int64{4, 5, 6})
	require.NoError(t, err)

	bad := scan.Partials{Start: []int{0, 2, -1}, Sum: []int64{4, 99, 99}}
	assert.True(t, p.Forbidden(bad))
	assert.False(t, p.IsSolution(bad))

	fixed := p.Merge(p.Ensure(bad, 0, 2), p.Ensure(bad, 1, 2))
	assert.Equal(t, scan.Partials{Start: []int{0, 1, 2}, Sum: []int64{4, 5, 6}}, fixed)

	next := p.Advance(fixed, 1, 2)
	assert.Equal(t, []int{0, 0, 2}, next.Start)
	assert.Equal(t, []int64{4, 9, 6}, next.Sum)
	assert.Equal(t, []int{0, 1, 2}, fixed.Start, "Advance must not touch its input")

	// merge prefers the smaller start regardless of side
	assert.Equal(t, next, p.Merge(fixed, next))
	assert.Equal(t, next, p.Merge(next, fixed))
}
