package community

import (
	"strconv"

	"github.com/altsoph/community-loglike/pkg/graph"
)

// ===================================================
// Community Record Types
// Derived views over a Dendrogram: every level of a dendrogram is a
// partition, and every distinct label within a level is a community
// that can be reported on its own (size, internal weight, which
// coarser community it folds into at the next level up).
// ===================================================

// CommunityLevel identifies a dendrogram level: 0 is the finest
// partition (direct local moves over the input graph), and
// increasing levels are progressively coarser communities-of-
// communities.
type CommunityLevel int

// String renders the level as "level-N".
func (l CommunityLevel) String() string {
	return "level-" + strconv.Itoa(int(l))
}

// Community is one label within one dendrogram level, reported as a
// standalone record: how many original-graph vertices it contains,
// how much edge weight is internal to it at that level, and which
// community (if any) it is folded into at the next level up.
type Community struct {
	ID             string         `json:"id"`
	Level          CommunityLevel `json:"level"`
	ParentID       string         `json:"parentId"` // empty at the dendrogram's top level
	Size           int            `json:"size"`      // original-graph vertices it contains
	InternalWeight float64        `json:"internalWeight"`
	Degree         float64        `json:"degree"`
}

// CommunityMember records one original-graph vertex's assignment
// within one dendrogram level.
type CommunityMember struct {
	VertexID    string         `json:"vertexId"`
	CommunityID string         `json:"communityId"`
	Level       CommunityLevel `json:"level"`
}

// CommunityHierarchy is a community together with the subtree of
// communities it was assembled from at the level below.
type CommunityHierarchy struct {
	Root     Community             `json:"root"`
	Children []CommunityHierarchy `json:"children"`
}

// BuildCommunities derives a Community record for every label at
// every level of dendro, and a CommunityMember record for every
// original-graph vertex at every level. g is the graph dendro was
// computed over. Degree and InternalWeight at every level (including
// level 0) are read off a Status built fresh from that level's
// partition via NewStatusWithPartition, rather than reused from
// whatever Status the local-move sweep left behind — the sweep's
// Status is keyed by pre-Renumber labels and would not line up with
// dendro's renumbered community IDs.
func BuildCommunities(dendro Dendrogram, g *graph.Graph) ([]Community, []CommunityMember, error) {
	var communities []Community
	var members []CommunityMember

	level0 := dendro[0]
	level0Status, err := NewStatusWithPartition(g, level0)
	if err != nil {
		return nil, nil, err
	}
	seen := make(map[string]bool)
	for v, c := range level0 {
		if !seen[c] {
			seen[c] = true
			communities = append(communities, Community{
				ID:             c,
				Level:          0,
				Size:           int(level0Status.Com2Size[c]),
				InternalWeight: level0Status.Internals[c],
				Degree:         level0Status.Degrees[c],
			})
		}
		members = append(members, CommunityMember{VertexID: v, CommunityID: c, Level: 0})
	}
	assignParents(communities, dendro, 0)

	// Coarser levels: a label at level i folds into dendro[i+1][label].
	// currentGraph's vertices are dendro[lvl-1]'s codomain (the labels
	// level lvl's partition is defined over), mirroring how
	// GenerateDendrogram threads InducedGraph from one level to the next.
	currentGraph := InducedGraph(level0, g)
	for lvl := 1; lvl < len(dendro); lvl++ {
		levelPartition := dendro[lvl]
		levelStatus, err := NewStatusWithPartition(currentGraph, levelPartition)
		if err != nil {
			continue
		}

		fullPartition, err := PartitionAtLevel(dendro, lvl)
		if err != nil {
			continue
		}
		sizes := make(map[string]int)
		for _, c := range fullPartition {
			sizes[c]++
		}

		lvlSeen := make(map[string]bool)
		for _, c := range levelPartition {
			if lvlSeen[c] {
				continue
			}
			lvlSeen[c] = true
			communities = append(communities, Community{
				ID:             c,
				Level:          CommunityLevel(lvl),
				Size:           sizes[c],
				InternalWeight: levelStatus.Internals[c],
				Degree:         levelStatus.Degrees[c],
			})
		}
		for v, c := range fullPartition {
			members = append(members, CommunityMember{VertexID: v, CommunityID: c, Level: CommunityLevel(lvl)})
		}
		assignParents(communities, dendro, lvl)

		currentGraph = InducedGraph(levelPartition, currentGraph)
	}

	return communities, members, nil
}

// assignParents fills in ParentID for every Community at level lvl by
// looking up dendro[lvl+1], which maps that level's labels to the next
// level's labels; communities at the dendrogram's top level keep an
// empty ParentID.
func assignParents(communities []Community, dendro Dendrogram, lvl int) {
	if lvl+1 >= len(dendro) {
		return
	}
	next := dendro[lvl+1]
	for i := range communities {
		if communities[i].Level != CommunityLevel(lvl) {
			continue
		}
		if parent, ok := next[communities[i].ID]; ok {
			communities[i].ParentID = parent
		}
	}
}
