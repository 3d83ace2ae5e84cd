package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeAccumulatesParallelEdges(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 2))

	nbrs := g.Neighbors("a")
	assert.Equal(t, 3.0, nbrs["b"])
	assert.Equal(t, 3.0, g.TotalWeight())
}

func TestAddEdgeRejectsNonPositiveWeight(t *testing.T) {
	g := New()
	err := g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, err, ErrNonPositiveWeight)

	err = g.AddEdge("a", "b", -1)
	assert.ErrorIs(t, err, ErrNonPositiveWeight)
}

func TestSelfLoopCountsOnceInTotalWeightTwiceInDegree(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "a", 5))

	assert.Equal(t, 5.0, g.TotalWeight())
	assert.Equal(t, 10.0, g.Degree("a"))
	assert.Equal(t, 5.0, g.SelfLoopWeight("a"))
	assert.Equal(t, 1, g.NumEdges())
}

func TestHandshakeInvariant(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("c", "a", 3))
	require.NoError(t, g.AddEdge("c", "c", 4))

	sum := 0.0
	for _, v := range g.Vertices() {
		sum += g.Degree(v)
	}
	assert.InDelta(t, 2*g.TotalWeight(), sum, 1e-9)
}

func TestAddVertexIsolated(t *testing.T) {
	g := New()
	g.AddVertex("solo")
	assert.True(t, g.HasVertex("solo"))
	assert.Equal(t, 0.0, g.Degree("solo"))
	assert.Equal(t, 0, g.UnweightedDegree("solo"))
}

func TestVerticesPreserveInsertionOrder(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("z", "y", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))

	assert.Equal(t, []string{"z", "y", "a", "b"}, g.Vertices())
	assert.Equal(t, []string{"a", "b", "y", "z"}, g.SortedVertices())
}

func TestUnweightedDegreeDoublesSelfLoop(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))
	require.NoError(t, g.AddEdge("a", "a", 1))

	assert.Equal(t, 4, g.UnweightedDegree("a"))
}
