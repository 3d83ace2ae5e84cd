package community

import (
	"math/rand"

	"github.com/altsoph/community-loglike/pkg/graph"
)

// GenerateDendrogram finds communities in g and returns every level of
// the resulting dendrogram: level 0 holds the finest partition (direct
// local moves over g), and each subsequent level is the local-move
// result over the graph induced by contracting the previous level's
// communities. A level is appended only once its pass improves the
// objective by at least minGain over the previous level; the graph
// with no edges is a special case returning the single trivial
// partition "every vertex in its own community".
//
// partIn seeds the first level's local-move sweep if non-nil,
// otherwise every vertex starts in its own singleton community.
func GenerateDendrogram(g *graph.Graph, partIn Partition, model string, pars map[string]float64, rng *rand.Rand) (Dendrogram, error) {
	if g.NumEdges() == 0 {
		trivial := make(Partition, g.NumVertices())
		for _, v := range g.Vertices() {
			trivial[v] = v
		}
		return Dendrogram{trivial}, nil
	}

	obj, err := LookupObjective(model)
	if err != nil {
		return nil, err
	}
	par := SafePar(obj, pars)

	var st *Status
	if partIn != nil {
		st, err = NewStatusWithPartition(g, partIn)
		if err != nil {
			return nil, err
		}
	} else {
		st = NewStatus(g)
	}

	if err := OneLevel(st, model, pars, rng); err != nil {
		return nil, err
	}
	mod := obj.Value(st, par)
	partition := Renumber(st.Partition(), st.Graph.Vertices())

	dendro := Dendrogram{partition}
	currentGraph := InducedGraph(partition, st.Graph)
	rawNode2Node := composeRawNode2Node(partition, st.RawNode2Node)
	rawDegree := st.RawNode2Degree

	for {
		st = NewLevelStatus(currentGraph, rawNode2Node, rawDegree)
		if err := OneLevel(st, model, pars, rng); err != nil {
			return nil, err
		}
		newMod := obj.Value(st, par)
		if newMod-mod < minGain {
			break
		}
		partition = Renumber(st.Partition(), currentGraph.Vertices())
		dendro = append(dendro, partition)
		mod = newMod
		currentGraph = InducedGraph(partition, currentGraph)
		rawNode2Node = composeRawNode2Node(partition, rawNode2Node)
	}
	return dendro, nil
}

func composeRawNode2Node(partition Partition, prev map[string]string) map[string]string {
	out := make(map[string]string, len(prev))
	for r, n := range prev {
		out[r] = partition[n]
	}
	return out
}

// BestPartition runs GenerateDendrogram and lifts the result to its
// coarsest (highest-modularity) level, returning a single partition
// over g's original vertices.
func BestPartition(g *graph.Graph, partIn Partition, model string, pars map[string]float64, rng *rand.Rand) (Partition, error) {
	dendro, err := GenerateDendrogram(g, partIn, model, pars, rng)
	if err != nil {
		return nil, err
	}
	return PartitionAtLevel(dendro, len(dendro)-1)
}

// PartitionAtLevel composes dendro's partitions up to and including
// level, returning the assignment of every original-graph vertex
// (dendro[0]'s domain) to its community at that level. level must be
// in [0, len(dendro)-1].
func PartitionAtLevel(dendro Dendrogram, level int) (Partition, error) {
	if level < 0 || level >= len(dendro) {
		return nil, ErrMissingVertex
	}
	partition := make(Partition, len(dendro[0]))
	for v, c := range dendro[0] {
		partition[v] = c
	}
	for index := 1; index <= level; index++ {
		for v, c := range partition {
			next, ok := dendro[index][c]
			if !ok {
				return nil, ErrMissingVertex
			}
			partition[v] = next
		}
	}
	return partition, nil
}
