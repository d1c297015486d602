package sssp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/builder"
	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/core"
	"github.com/katalvlaran/lvlattice/engine"
	"github.com/katalvlaran/lvlattice/problem"
	"github.com/katalvlaran/lvlattice/solver"
	"github.com/katalvlaran/lvlattice/sssp"
)

func solve(t *testing.T, p *sssp.Problem, workers int, d config.Discipline) (sssp.Distances, engine.Stats) {
	t.Helper()
	cfg, err := config.New(config.WithWorkers(workers), config.WithDiscipline(d), config.WithIterationCap(1000))
	require.NoError(t, err)

	dist, st, err := solver.Run[sssp.Distances](context.Background(), p, cfg)
	require.NoError(t, err)
	require.True(t, st.Converged, "reason %s", st.Reason)

	return dist, st
}

func TestNewValidation(t *testing.T) {
	_, err := sssp.New(nil, 0)
	assert.ErrorIs(t, err, sssp.ErrNilGraph)

	el := &core.EdgeList{VertexCount: 2, Edges: []core.Edge{{From: 0, To: 1, Weight: -1}}}
	_, err = sssp.New(el, 0)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	el.Edges[0].Weight = 1
	_, err = sssp.New(el, 2)
	assert.ErrorIs(t, err, sssp.ErrSourceOutOfRange)
	_, err = sssp.Dijkstra(el, -1)
	assert.ErrorIs(t, err, sssp.ErrSourceOutOfRange)

	el.Edges[0].To = 5
	_, err = sssp.New(el, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestPath walks the distance frontier one hop per progress round after a
// single repair round for the source.
func TestPath(t *testing.T) {
	el, err := builder.BuildEdgeList(nil, builder.Path(5))
	require.NoError(t, err)
	p, err := sssp.New(el, 0)
	require.NoError(t, err)

	dist, st := solve(t, p, 2, config.DisciplineMerge)
	assert.Equal(t, sssp.Distances{0, 1, 2, 3, 4}, dist)
	assert.Equal(t, 5, st.Iterations)
	assert.Equal(t, 1, st.RepairRounds)
	assert.Equal(t, 4, st.ProgressRounds)
}

func TestUnreachable(t *testing.T) {
	el := &core.EdgeList{VertexCount: 4, Directed: true, Edges: []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 2, To: 0, Weight: 1},
		{From: 1, To: 3, Weight: 0},
	}}
	p, err := sssp.New(el, 0)
	require.NoError(t, err)

	dist, _ := solve(t, p, 3, config.DisciplineBarrier)
	assert.Equal(t, sssp.Distances{0, 7, sssp.Inf, 7}, dist)
	assert.False(t, dist.Reachable(2))
}

// TestMatchesDijkstra compares against the sequential reference on random
// graphs, directed and undirected, for several worker counts and both
// disciplines.
func TestMatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		for _, directed := range []bool{false, true} {
			el, err := builder.BuildEdgeList(
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithUniformWeight(0, 20),
					builder.WithDirected(directed),
				},
				builder.RandomSparse(50, 0.06),
			)
			require.NoError(t, err)

			want, err := sssp.Dijkstra(el, 0)
			require.NoError(t, err)
			p, err := sssp.New(el, 0)
			require.NoError(t, err)

			for _, d := range []config.Discipline{config.DisciplineMerge, config.DisciplineBarrier} {
				for _, workers := range []int{1, 2, 5, 8} {
					t.Run(fmt.Sprintf("seed%d/directed=%t/%s/%d", seed, directed, d, workers), func(t *testing.T) {
						got, _ := solve(t, p, workers, d)
						assert.Equal(t, want, got)
					})
				}
			}
		}
	}
}

func TestProblemContract(t *testing.T) {
	el, err := builder.BuildEdgeList(nil, builder.Cycle(6))
	require.NoError(t, err)
	p, err := sssp.New(el, 3)
	require.NoError(t, err)

	s := p.Initial()
	assert.True(t, p.Forbidden(s))
	assert.False(t, p.IsSolution(s))

	// only the owner of the source repairs
	assert.Equal(t, s, p.Ensure(s, 0, 2))
	fixed := p.Ensure(s, 1, 2)
	assert.Equal(t, int64(0), fixed[3])
	assert.False(t, p.Forbidden(fixed))

	// merge: identity, preference for the smaller distance
	assert.Equal(t, fixed, problem.Merge[sssp.Distances](p, fixed, fixed))
	assert.Equal(t, fixed, p.Merge(s, fixed))

	// Advance never raises a distance and leaves s untouched
	next := p.Advance(fixed, 0, 1)
	for v := range next {
		assert.LessOrEqual(t, next[v], fixed[v])
	}
	assert.Equal(t, sssp.Inf, fixed[2])
	assert.Equal(t, int64(1), next[2])
	assert.Equal(t, int64(1), next[4])
}
