package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityLevelString(t *testing.T) {
	assert.Equal(t, "level-0", CommunityLevel(0).String())
	assert.Equal(t, "level-3", CommunityLevel(3).String())
}

func TestBuildCommunitiesCoversEveryVertexAtEveryLevel(t *testing.T) {
	g := twoTriangles(t)
	dendro, err := GenerateDendrogram(g, nil, "dcppm", nil, nil)
	require.NoError(t, err)

	communities, members, err := BuildCommunities(dendro, g)
	require.NoError(t, err)

	for lvl := range dendro {
		partition, err := PartitionAtLevel(dendro, lvl)
		require.NoError(t, err)

		var atLevel []CommunityMember
		for _, m := range members {
			if m.Level == CommunityLevel(lvl) {
				atLevel = append(atLevel, m)
			}
		}
		assert.Len(t, atLevel, len(partition), "level %d should record every original vertex", lvl)
	}

	for _, c := range communities {
		if c.Level == 0 {
			assert.Positive(t, c.Size)
		}
	}
}

func TestBuildCommunitiesLevelZeroDegreeAndInternalWeightAreNonZero(t *testing.T) {
	g := twoTriangles(t)
	dendro, err := GenerateDendrogram(g, nil, "dcppm", nil, nil)
	require.NoError(t, err)

	communities, _, err := BuildCommunities(dendro, g)
	require.NoError(t, err)

	for _, c := range communities {
		assert.Greater(t, c.Degree, 0.0)
		assert.Greater(t, c.InternalWeight, 0.0)
	}
}

func TestBuildCommunitiesAssignsParentsBelowTopLevel(t *testing.T) {
	g := twoTriangles(t)
	dendro, err := GenerateDendrogram(g, nil, "dcppm", nil, nil)
	require.NoError(t, err)
	if len(dendro) < 2 {
		t.Skip("two disjoint triangles produce only one dendrogram level here")
	}

	communities, _, err := BuildCommunities(dendro, g)
	require.NoError(t, err)
	for _, c := range communities {
		if int(c.Level) < len(dendro)-1 {
			assert.NotEmpty(t, c.ParentID)
		}
	}
}
