package community

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsoph/community-loglike/pkg/graph"
)

func TestModularityMatchesDCPPMValueAtGammaOne(t *testing.T) {
	g := twoTriangles(t)
	partition := Partition{"0": "A", "1": "A", "2": "A", "3": "B", "4": "B", "5": "B"}

	mod, err := Modularity(g, partition, 1)
	require.NoError(t, err)

	st, err := NewStatusWithPartition(g, partition)
	require.NoError(t, err)
	value := DCPPM{}.Value(st, 1)

	assert.InDelta(t, value, mod, 1e-9)
	assert.InDelta(t, 0.5, mod, 1e-9)
}

func TestModularityRejectsEdgelessGraph(t *testing.T) {
	g := graph.New()
	g.AddVertex("a")
	_, err := Modularity(g, Partition{"a": "0"}, 1)
	assert.ErrorIs(t, err, ErrZeroEdges)
}

func TestEstimateMuWeightedCrossFraction(t *testing.T) {
	g := twoTriangles(t)
	require.NoError(t, addCrossEdge(g))

	partition := Partition{"0": "A", "1": "A", "2": "A", "3": "B", "4": "B", "5": "B"}
	mu, err := EstimateMu(g, partition, nil)
	require.NoError(t, err)

	// 6 intra-triangle edges weight 1 each plus 1 cross edge weight 1: mu = 1/7.
	assert.InDelta(t, 1.0/7.0, mu, 1e-9)
}

type stubOptimizer struct {
	called bool
	x0     float64
}

func (s *stubOptimizer) Refine(f func(mu float64) float64, x0, lo, hi float64) float64 {
	s.called = true
	s.x0 = x0
	// Probe a small neighborhood around x0 and return whichever in-bounds
	// candidate scores highest, standing in for a real derivative-free search.
	best, bestScore := x0, f(x0)
	for _, step := range []float64{-0.01, 0.01} {
		cand := x0 + step
		if cand < lo || cand > hi {
			continue
		}
		if score := f(cand); score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

func TestEstimateMuUsesOptimizerWhenProvided(t *testing.T) {
	g := twoTriangles(t)
	require.NoError(t, addCrossEdge(g))
	partition := Partition{"0": "A", "1": "A", "2": "A", "3": "B", "4": "B", "5": "B"}

	closedForm, err := EstimateMu(g, partition, nil)
	require.NoError(t, err)

	opt := &stubOptimizer{}
	refined, err := EstimateMu(g, partition, opt)
	require.NoError(t, err)

	assert.True(t, opt.called)
	assert.InDelta(t, closedForm, opt.x0, 1e-9)
	assert.GreaterOrEqual(t, refined, 0.0)
	assert.LessOrEqual(t, refined, 1.0)
}

func addCrossEdge(g *graph.Graph) error {
	return g.AddEdge("0", "3", 1)
}

func TestEstimateGammaUnknownModel(t *testing.T) {
	g := twoTriangles(t)
	partition := Partition{"0": "A", "1": "A", "2": "A", "3": "B", "4": "B", "5": "B"}
	_, err := EstimateGamma(g, partition, "not-a-model", nil)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestIlfrMuLogLikelihoodDefaultsToEstimateMu(t *testing.T) {
	g := twoTriangles(t)
	partition := Partition{"0": "A", "1": "A", "2": "A", "3": "B", "4": "B", "5": "B"}

	value, err := IlfrMuLogLikelihood(g, partition, nil)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(value) || math.IsInf(value, 0))

	mu, err := EstimateMu(g, partition, nil)
	require.NoError(t, err)
	explicit, err := IlfrMuLogLikelihood(g, partition, &mu)
	require.NoError(t, err)
	assert.InDelta(t, explicit, value, 1e-9)
}
