package community

import (
	"strconv"

	"github.com/altsoph/community-loglike/pkg/graph"
)

// Renumber canonicalizes partition's community labels to "0".."k-1",
// assigned in the order their original labels are first seen while
// scanning order. order should be the vertex order of the graph the
// partition describes (so the result is deterministic even though
// Partition is an unordered map).
func Renumber(partition Partition, order []string) Partition {
	next := make(map[string]string)
	count := 0
	out := make(Partition, len(partition))
	for _, v := range order {
		old, ok := partition[v]
		if !ok {
			continue
		}
		label, seen := next[old]
		if !seen {
			label = strconv.Itoa(count)
			next[old] = label
			count++
		}
		out[v] = label
	}
	return out
}

// InducedGraph builds the graph whose vertices are the distinct
// values of partition and whose edge weight between communities a and
// b is the sum of weights of edges (u,v) in g with partition[u]=a,
// partition[v]=b. Self-loops arise from intra-community edges and are
// preserved. Communities with no incident edges still appear as
// isolated vertices.
func InducedGraph(partition Partition, g *graph.Graph) *graph.Graph {
	out := graph.New()
	for _, v := range g.Vertices() {
		out.AddVertex(partition[v])
	}
	for _, e := range g.Edges() {
		com1 := partition[e.U]
		com2 := partition[e.V]
		// AddEdge errors only on non-positive weight, which g's own
		// construction already rejected for every edge it holds.
		_ = out.AddEdge(com1, com2, e.Weight)
	}
	return out
}
