package matching_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/matching"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/solver"
)

var (
	men = [][]int{
		{0, 1, 2},
		{1, 0, 2},
		{0, 1, 2},
	}
	women = [][]int{
		{1, 0, 2},
		{0, 1, 2},
		{0, 1, 2},
	}
)

func TestNewValidation(t *testing.T) {
	_, err := matching.New(men, women[:2])
	assert.ErrorIs(t, err, matching.ErrSizeMismatch)

	_, err = matching.New([][]int{{0, 0}, {0, 1}}, [][]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, matching.ErrInvalidPreferences)
	_, err = matching.New([][]int{{0, 1}, {1, 0}}, [][]int{{0, 1}, {2, 0}})
	assert.ErrorIs(t, err, matching.ErrInvalidPreferences)
	_, err = matching.GaleShapley([][]int{{0}}, [][]int{{0, 1}})
	assert.ErrorIs(t, err, matching.ErrInvalidPreferences)
}

func TestSmallInstance(t *testing.T) {
	p, err := matching.New(men, women)
	require.NoError(t, err)
	cfg, err := config.New(config.WithWorkers(2))
	require.NoError(t, err)

	s, st, err := solver.Run[matching.Proposals](context.Background(), p, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p.Wives(s))
	assert.Equal(t, 2, st.Iterations)
	assert.Equal(t, 2, st.RepairRounds)
	assert.Equal(t, 0, st.ProgressRounds)
}

func randomPrefs(rng *rand.Rand, n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = rng.Perm(n)
	}

	return out
}

// TestMatchesGaleShapley checks the man-optimal matching on random
// instances for several worker counts and both disciplines.
func TestMatchesGaleShapley(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 3; round++ {
		m, w := randomPrefs(rng, 30), randomPrefs(rng, 30)
		want, err := matching.GaleShapley(m, w)
		require.NoError(t, err)
		p, err := matching.New(m, w)
		require.NoError(t, err)

		for _, d := range []config.Discipline{config.DisciplineMerge, config.DisciplineBarrier} {
			for _, workers := range []int{1, 2, 4, 8} {
				t.Run(fmt.Sprintf("%d/%s/%d", round, d, workers), func(t *testing.T) {
					cfg, err := config.New(config.WithWorkers(workers), config.WithDiscipline(d))
					require.NoError(t, err)
					s, st, err := solver.Run[matching.Proposals](context.Background(), p, cfg)
					require.NoError(t, err)
					require.True(t, st.Converged)
					assert.Equal(t, want, p.Wives(s))
				})
			}
		}
	}
}

func TestProblemContract(t *testing.T) {
	p, err := matching.New(men, women)
	require.NoError(t, err)

	s := p.Initial()
	assert.True(t, p.Forbidden(s))

	// man 2 is owned by worker 0 of 2 and is the only one rejected
	assert.Equal(t, matching.Proposals{0, 0, 1}, p.Ensure(s, 0, 2))
	assert.Equal(t, s, p.Ensure(s, 1, 2))
	assert.Equal(t, s, p.Advance(s, 0, 1))

	assert.Equal(t, matching.Proposals{1, 2, 1}, p.Merge(matching.Proposals{1, 0, 1}, matching.Proposals{0, 2, 0}))
	assert.Equal(t, s, problem.Merge[matching.Proposals](p, s, s))
	assert.True(t, p.IsSolution(matching.Proposals{0, 0, 2}))
}
