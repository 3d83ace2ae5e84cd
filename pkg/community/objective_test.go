package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupObjectiveKnownModels(t *testing.T) {
	for _, name := range []string{"ppm", "dcppm", "ilfr", "ilfrs"} {
		obj, err := LookupObjective(name)
		require.NoError(t, err)
		assert.Equal(t, name, obj.Name())
	}
}

func TestLookupObjectiveUnknownModel(t *testing.T) {
	_, err := LookupObjective("bogus")
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestSafeParDefaultsAndClamps(t *testing.T) {
	dcppm, _ := LookupObjective("dcppm")
	assert.InDelta(t, 1-minProbability, SafePar(dcppm, nil), 1e-12)
	assert.InDelta(t, 2.0, SafePar(dcppm, map[string]float64{"gamma": 2}), 1e-12)

	ilfr, _ := LookupObjective("ilfr")
	assert.InDelta(t, minProbability, SafePar(ilfr, map[string]float64{"mu": -5}), 1e-12)
	assert.InDelta(t, 1-minProbability, SafePar(ilfr, map[string]float64{"mu": 5}), 1e-12)
}

func TestSweepNeverDecreasesObjective(t *testing.T) {
	for _, model := range []string{"ppm", "dcppm", "ilfr", "ilfrs"} {
		g := ringOfTenWithChords(t)
		st := NewStatus(g)
		obj, err := LookupObjective(model)
		require.NoError(t, err)
		par := SafePar(obj, nil)

		before := obj.Value(st, par)
		require.NoError(t, OneLevel(st, model, nil, nil))
		after := obj.Value(st, par)

		assert.GreaterOrEqual(t, after, before-1e-9, "model %s", model)
	}
}
