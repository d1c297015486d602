package components_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/builder"
	"github.com/katalvlaran/lvlattice/components"
	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/engine"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/solver"
)

func solve(t *testing.T, el *core.EdgeList, workers int, d config.Discipline) (components.Labels, engine.Stats) {
	t.Helper()
	p, err := components.New(el)
	require.NoError(t, err)
	cfg, err := config.New(config.WithWorkers(workers), config.WithDiscipline(d), config.WithIterationCap(1000))
	require.NoError(t, err)

	l, st, err := solver.Run[components.Labels](context.Background(), p, cfg)
	require.NoError(t, err)
	require.True(t, st.Converged, "reason %s", st.Reason)

	return l, st
}

func TestNewValidation(t *testing.T) {
	_, err := components.New(nil)
	assert.ErrorIs(t, err, components.ErrNilGraph)
	_, err = components.BFS(nil)
	assert.ErrorIs(t, err, components.ErrNilGraph)

	_, err = components.New(&core.EdgeList{VertexCount: 1, Edges: []core.Edge{{From: 0, To: 3}}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestDisjointParts(t *testing.T) {
	el, err := builder.BuildEdgeList(nil, builder.Cycle(3), builder.Path(4), builder.Complete(2))
	require.NoError(t, err)
	el.AddVertices(1) // isolated

	l, _ := solve(t, el, 4, config.DisciplineMerge)
	assert.Equal(t, components.Labels{0, 0, 0, 3, 3, 3, 3, 7, 7, 9}, l)
	assert.Equal(t, 4, l.Count())
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5, 6}, {7, 8}, {9}}, l.Members())
}

// TestDirectedIsWeak checks that direction is ignored.
func TestDirectedIsWeak(t *testing.T) {
	el := &core.EdgeList{VertexCount: 4, Directed: true, Edges: []core.Edge{
		{From: 3, To: 2},
		{From: 1, To: 2},
	}}
	l, _ := solve(t, el, 2, config.DisciplineBarrier)
	assert.Equal(t, components.Labels{0, 1, 1, 1}, l)
}

// TestMatchesBFS compares against the sequential reference for several
// worker counts and both disciplines.
func TestMatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		el, err := builder.BuildEdgeList(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(60, 0.03),
		)
		require.NoError(t, err)
		want, err := components.BFS(el)
		require.NoError(t, err)

		for _, d := range []config.Discipline{config.DisciplineMerge, config.DisciplineBarrier} {
			for _, workers := range []int{1, 2, 3, 8} {
				t.Run(fmt.Sprintf("seed%d/%s/%d", seed, d, workers), func(t *testing.T) {
					got, _ := solve(t, el, workers, d)
					assert.Equal(t, want, got)
				})
			}
		}
	}
}

// TestLongPath shows pointer jumping: far fewer rounds than the diameter.
func TestLongPath(t *testing.T) {
	el, err := builder.BuildEdgeList(nil, builder.Path(64))
	require.NoError(t, err)

	l, st := solve(t, el, 4, config.DisciplineBarrier)
	assert.Equal(t, 1, l.Count())
	assert.Less(t, st.Iterations, 63)
}

func TestProblemContract(t *testing.T) {
	el, err := builder.BuildEdgeList(nil, builder.Path(4))
	require.NoError(t, err)
	p, err := components.New(el)
	require.NoError(t, err)

	s := p.Initial()
	assert.False(t, p.Forbidden(s))
	assert.False(t, p.IsSolution(s))

	bad := components.Labels{0, 3, 1, 2}
	assert.True(t, p.Forbidden(bad))
	fixed := problem.Fold[components.Labels](p, []components.Labels{
		p.Ensure(bad, 0, 2),
		p.Ensure(bad, 1, 2),
	})
	assert.Equal(t, components.Labels{0, 1, 1, 2}, fixed)
	assert.False(t, p.Forbidden(fixed))

	assert.Equal(t, components.Labels{0, 0, 1, 2}, p.Advance(s, 0, 1))
	assert.Equal(t, s, problem.Merge[components.Labels](p, s, s))
	assert.True(t, p.IsSolution(components.Labels{0, 0, 0, 0}))
}
