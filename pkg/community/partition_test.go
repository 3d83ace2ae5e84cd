package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsoph/community-loglike/pkg/graph"
)

func TestRenumberCanonicalizesInFirstSeenOrder(t *testing.T) {
	partition := Partition{"a": "x", "b": "y", "c": "x", "d": "z"}
	order := []string{"a", "b", "c", "d"}

	out := Renumber(partition, order)
	assert.Equal(t, Partition{"a": "0", "b": "1", "c": "0", "d": "2"}, out)
}

func TestInducedGraphSanityScenario(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("0", "1", 1))
	require.NoError(t, g.AddEdge("1", "2", 1))
	require.NoError(t, g.AddEdge("2", "3", 1))
	require.NoError(t, g.AddEdge("0", "2", 1))

	partition := Partition{"0": "A", "1": "A", "2": "B", "3": "B"}
	induced := InducedGraph(partition, g)

	assert.ElementsMatch(t, []string{"A", "B"}, induced.Vertices())
	assert.Equal(t, 1.0, induced.SelfLoopWeight("A"))
	assert.Equal(t, 1.0, induced.SelfLoopWeight("B"))
	assert.Equal(t, 2.0, induced.Neighbors("A")["B"])
}

func TestInducedGraphPreservesTotalWeightAfterRenumber(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddEdge("b", "c", 3))
	require.NoError(t, g.AddEdge("c", "a", 1))
	require.NoError(t, g.AddEdge("c", "c", 4))

	partition := Partition{"a": "X", "b": "X", "c": "Y"}
	renumbered := Renumber(partition, g.Vertices())
	induced := InducedGraph(renumbered, g)

	assert.InDelta(t, g.TotalWeight(), induced.TotalWeight(), 1e-9)
}
