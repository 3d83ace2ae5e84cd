package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsoph/community-loglike/pkg/graph"
)

func triangleGraph(t *testing.T, labels [3]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge(labels[0], labels[1], 1))
	require.NoError(t, g.AddEdge(labels[1], labels[2], 1))
	require.NoError(t, g.AddEdge(labels[2], labels[0], 1))
	return g
}

func sumDegrees(st *Status) float64 {
	seen := make(map[string]bool)
	total := 0.0
	for _, c := range st.Node2Com {
		if seen[c] {
			continue
		}
		seen[c] = true
		total += st.Degrees[c]
	}
	return total
}

func TestStatusHandshakeInvariantAtInit(t *testing.T) {
	g := triangleGraph(t, [3]string{"a", "b", "c"})
	st := NewStatus(g)
	assert.InDelta(t, 2*st.TotalWeight, sumDegrees(st), 1e-9)
}

func TestStatusHandshakeInvariantAfterSweep(t *testing.T) {
	g := triangleGraph(t, [3]string{"a", "b", "c"})
	st := NewStatus(g)
	require.NoError(t, OneLevel(st, "dcppm", nil, nil))
	assert.InDelta(t, 2*st.TotalWeight, sumDegrees(st), 1e-9)
}

func TestNewStatusWithPartitionRejectsMissingVertex(t *testing.T) {
	g := triangleGraph(t, [3]string{"a", "b", "c"})
	_, err := NewStatusWithPartition(g, Partition{"a": "0", "b": "0"})
	assert.ErrorIs(t, err, ErrMissingVertex)
}

func TestRemoveInsertRoundTrip(t *testing.T) {
	g := triangleGraph(t, [3]string{"a", "b", "c"})
	st := NewStatus(g)

	neigh := st.NeighborCommunities("a")
	oldCom := st.Node2Com["a"]
	kOld := neigh[oldCom]
	st.remove("a", oldCom, kOld)
	assert.Equal(t, sentinelCommunity, st.Node2Com["a"])

	st.insert("a", oldCom, kOld)
	assert.Equal(t, oldCom, st.Node2Com["a"])
	assert.InDelta(t, 2*st.TotalWeight, sumDegrees(st), 1e-9)
}
