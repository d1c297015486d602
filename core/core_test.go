package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/core"
)

func TestNewEdgeList(t *testing.T) {
	_, err := core.NewEdgeList(-1, false)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)

	el, err := core.NewEdgeList(3, true)
	require.NoError(t, err)
	assert.Equal(t, 3, el.VertexCount)
	assert.True(t, el.Directed)
	assert.Zero(t, el.EdgeCount())
}

func TestAddEdge(t *testing.T) {
	el, err := core.NewEdgeList(2, false)
	require.NoError(t, err)

	idx, err := el.AddEdge(0, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = el.AddEdge(0, 2, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = el.AddEdge(-1, 0, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	first := el.AddVertices(2)
	assert.Equal(t, 2, first)
	idx, err = el.AddEdge(first, first+1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []core.Edge{{0, 1, 7}, {2, 3, 3}}, el.Edges)
}

func TestValidate(t *testing.T) {
	var nilList *core.EdgeList
	assert.ErrorIs(t, nilList.Validate(), core.ErrNilEdgeList)

	tests := []struct {
		name string
		el   core.EdgeList
		want error
	}{
		{"empty", core.EdgeList{}, nil},
		{"negative n", core.EdgeList{VertexCount: -2}, core.ErrNegativeVertexCount},
		{"bad head", core.EdgeList{VertexCount: 2, Edges: []core.Edge{{0, 2, 1}}}, core.ErrVertexOutOfRange},
		{"bad tail", core.EdgeList{VertexCount: 2, Edges: []core.Edge{{-1, 1, 1}}}, core.ErrVertexOutOfRange},
		{"negative weight ok", core.EdgeList{VertexCount: 2, Edges: []core.Edge{{0, 1, -4}}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.el.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	neg := core.EdgeList{VertexCount: 2, Edges: []core.Edge{{0, 1, -4}}}
	assert.ErrorIs(t, neg.ValidateNonNegative(), core.ErrNegativeWeight)
}

func TestAdjacency(t *testing.T) {
	el := &core.EdgeList{
		VertexCount: 3,
		Edges:       []core.Edge{{0, 1, 5}, {1, 2, 6}, {2, 2, 1}},
	}

	adj := el.Adjacency()
	assert.Equal(t, []core.Arc{{To: 1, Weight: 5, Edge: 0}}, adj[0])
	assert.Equal(t, []core.Arc{{To: 0, Weight: 5, Edge: 0}, {To: 2, Weight: 6, Edge: 1}}, adj[1])
	assert.Equal(t, []core.Arc{{To: 1, Weight: 6, Edge: 1}, {To: 2, Weight: 1, Edge: 2}}, adj[2], "self-loop once")
	assert.Equal(t, adj, el.Incoming())
	assert.Equal(t, []int{1, 2, 2}, el.Degrees())

	el.Directed = true
	adj = el.Adjacency()
	in := el.Incoming()
	assert.Empty(t, in[0])
	assert.Equal(t, []core.Arc{{To: 0, Weight: 5, Edge: 0}}, in[1])
	assert.Equal(t, []core.Arc{{To: 2, Weight: 6, Edge: 1}}, adj[1])
	assert.Equal(t, []int{1, 1, 1}, el.Degrees())
}

func TestCloneAndUndirected(t *testing.T) {
	el := &core.EdgeList{VertexCount: 2, Edges: []core.Edge{{0, 1, 1}}, Directed: true}

	c := el.Clone()
	c.Edges[0].Weight = 99
	assert.Equal(t, int64(1), el.Edges[0].Weight)

	u := el.Undirected()
	assert.False(t, u.Directed)
	assert.True(t, el.Directed)

	var nilList *core.EdgeList
	assert.Nil(t, nilList.Clone())
}
