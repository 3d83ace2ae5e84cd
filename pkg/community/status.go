package community

import "github.com/altsoph/community-loglike/pkg/graph"

// Partition assigns every vertex of a graph to a community label.
type Partition map[string]string

// Dendrogram is the sequence of partitions produced by one run of
// GenerateDendrogram, indexed from level 0 (the original graph) up to
// the coarsest induced graph.
type Dendrogram []Partition

// sentinelCommunity is the community a vertex is assigned to while it
// has been pulled out of its community and not yet re-inserted
// anywhere, mirroring the -1 sentinel of the reference algorithm. It
// is never exposed in a Partition returned to a caller.
const sentinelCommunity = "\x00removed"

// Status is the mutable bookkeeping an optimization pass sweeps over:
// per-vertex and per-community aggregates that let RemoveCost/AddCost
// be evaluated in O(1) rather than by rescanning the graph.
type Status struct {
	Graph *graph.Graph

	// TotalWeight is the graph's total edge weight (each edge, including
	// self-loops, counted once). Fixed for the lifetime of a Status.
	TotalWeight float64

	// Node2Com maps each current-level vertex to its community label.
	Node2Com Partition

	// Degrees maps a community label to the sum of the weighted degree
	// of its members.
	Degrees map[string]float64

	// GDegrees caches each vertex's own weighted degree.
	GDegrees map[string]float64

	// Internals maps a community label to the total weight of edges
	// with both endpoints inside it (self-loops counted fully, each
	// cross-endpoint edge counted once).
	Internals map[string]float64

	// Loops caches each vertex's self-loop weight (0 if none).
	Loops map[string]float64

	// RawNode2Node maps an original-graph vertex to the vertex of the
	// current (possibly contracted) level's graph that it has been
	// folded into.
	RawNode2Node map[string]string

	// RawNode2Degree caches each original-graph vertex's unweighted
	// degree (edge count, self-loop counted twice, as in
	// graph.UnweightedDegree). Computed once at
	// level 0 and carried unchanged through every later level.
	RawNode2Degree map[string]float64

	// Com2Size maps a community label to the number of original-graph
	// vertices it currently contains.
	Com2Size map[string]float64

	// Node2Size maps a current-level vertex to the number of
	// original-graph vertices folded into it.
	Node2Size map[string]float64
}

// NewStatus builds a Status for the base level: g is the original
// input graph, every vertex starts in its own singleton community,
// and provenance maps are the identity.
func NewStatus(g *graph.Graph) *Status {
	rawDegree := make(map[string]float64, g.NumVertices())
	rawNode2Node := make(map[string]string, g.NumVertices())
	for _, v := range g.Vertices() {
		rawDegree[v] = float64(g.UnweightedDegree(v))
		rawNode2Node[v] = v
	}
	return newLevelStatus(g, rawNode2Node, rawDegree)
}

// NewLevelStatus builds a Status for an induced (contracted) graph g,
// one level above the graph that produced rawNode2Node. rawNode2Node
// maps every original-graph vertex to its image in g (the caller
// composes the previous level's provenance with the partition that
// produced g). rawDegree is threaded through unchanged from level 0.
func NewLevelStatus(g *graph.Graph, rawNode2Node map[string]string, rawDegree map[string]float64) *Status {
	return newLevelStatus(g, rawNode2Node, rawDegree)
}

func newLevelStatus(g *graph.Graph, rawNode2Node map[string]string, rawDegree map[string]float64) *Status {
	st := &Status{
		Graph:          g,
		TotalWeight:    g.TotalWeight(),
		Node2Com:       make(Partition, g.NumVertices()),
		Degrees:        make(map[string]float64, g.NumVertices()),
		GDegrees:       make(map[string]float64, g.NumVertices()),
		Internals:      make(map[string]float64, g.NumVertices()),
		Loops:          make(map[string]float64, g.NumVertices()),
		RawNode2Node:   rawNode2Node,
		RawNode2Degree: rawDegree,
		Com2Size:       make(map[string]float64, g.NumVertices()),
		Node2Size:      make(map[string]float64, g.NumVertices()),
	}

	for _, r := range g.Vertices() {
		st.Node2Size[r] = 0
	}
	for _, n := range rawNode2Node {
		st.Node2Size[n]++
	}

	for _, v := range g.Vertices() {
		st.Node2Com[v] = v // singleton init: every vertex starts in its own community
		d := g.Degree(v)
		st.GDegrees[v] = d
		st.Degrees[v] = d
		st.Loops[v] = g.SelfLoopWeight(v)
		st.Com2Size[v] = st.Node2Size[v]

		internal := 0.0
		for nb, w := range g.Neighbors(v) {
			if nb == v {
				internal += w
			}
		}
		st.Internals[v] = internal
	}
	return st
}

// NewStatusWithPartition builds a Status for g directly from an
// externally supplied partition (which need not assign consecutive or
// singleton labels), used by the standalone analysis routines
// (EstimateGamma, EstimateMu, ModelLogLikelihood, Modularity) that
// score a given partition without running a local-move sweep.
// Returns ErrMissingVertex if partition does not cover every vertex of
// g.
func NewStatusWithPartition(g *graph.Graph, partition Partition) (*Status, error) {
	for _, v := range g.Vertices() {
		if _, ok := partition[v]; !ok {
			return nil, ErrMissingVertex
		}
	}

	st := &Status{
		Graph:          g,
		TotalWeight:    g.TotalWeight(),
		Node2Com:       make(Partition, g.NumVertices()),
		Degrees:        make(map[string]float64),
		GDegrees:       make(map[string]float64, g.NumVertices()),
		Internals:      make(map[string]float64),
		Loops:          make(map[string]float64, g.NumVertices()),
		RawNode2Node:   make(map[string]string, g.NumVertices()),
		RawNode2Degree: make(map[string]float64, g.NumVertices()),
		Com2Size:       make(map[string]float64),
		Node2Size:      make(map[string]float64, g.NumVertices()),
	}

	for _, v := range g.Vertices() {
		com := partition[v]
		st.Node2Com[v] = com
		st.RawNode2Node[v] = v
		st.RawNode2Degree[v] = float64(g.UnweightedDegree(v))
		st.Loops[v] = g.SelfLoopWeight(v)

		d := g.Degree(v)
		st.GDegrees[v] = d
		st.Degrees[com] += d

		inc := 0.0
		for nb, w := range g.Neighbors(v) {
			if partition[nb] != com {
				continue
			}
			if nb == v {
				inc += w
			} else {
				inc += w / 2
			}
		}
		st.Internals[com] += inc
	}

	for _, n := range st.RawNode2Node {
		st.Node2Size[n]++
	}
	for _, com := range st.Node2Com {
		st.Com2Size[com] = 0
	}
	for _, n := range st.RawNode2Node {
		st.Com2Size[st.Node2Com[n]] += st.Node2Size[n]
	}

	return st, nil
}

// NeighborCommunities returns, for vertex v, the total edge weight
// from v to each distinct community among v's neighbors (self-loops
// excluded). A community v has no neighbor currently in, including
// v's own, is simply absent from the result — callers that need v's
// weight into a specific community read the map with Go's natural
// zero default rather than relying on a seeded entry.
func (st *Status) NeighborCommunities(v string) map[string]float64 {
	weights := make(map[string]float64)
	for nb, w := range st.Graph.Neighbors(v) {
		if nb == v {
			continue
		}
		com := st.Node2Com[nb]
		weights[com] += w
	}
	return weights
}

// remove pulls v out of its current community, recording kVOld — the
// weight from v to that community (excluding v's self-loop) — which
// the caller must have obtained from NeighborCommunities before
// calling remove.
func (st *Status) remove(v, com string, kVOld float64) {
	st.Degrees[com] -= st.GDegrees[v]
	st.Degrees[sentinelCommunity] += st.GDegrees[v]
	st.Internals[com] -= kVOld + st.Loops[v]
	st.Com2Size[com] -= st.Node2Size[v]
	st.Node2Com[v] = sentinelCommunity
	st.Internals[sentinelCommunity] = st.Loops[v]
}

// insert places v (currently removed) into community com, given
// kVNew — the weight from v to com (excluding v's self-loop).
func (st *Status) insert(v, com string, kVNew float64) {
	st.Node2Com[v] = com
	st.Degrees[sentinelCommunity] -= st.GDegrees[v]
	st.Degrees[com] += st.GDegrees[v]
	st.Internals[com] += kVNew + st.Loops[v]
	st.Com2Size[com] += st.Node2Size[v]
}

// Partition returns a copy of the current vertex-to-community
// assignment, with the transient sentinel community never present
// (every vertex is always fully inserted between public calls).
func (st *Status) Partition() Partition {
	out := make(Partition, len(st.Node2Com))
	for v, c := range st.Node2Com {
		out[v] = c
	}
	return out
}
