// Package graph defines the undirected, weighted multigraph used as
// input to community detection: vertices identified by opaque string
// labels, edges carrying a positive weight, self-loops permitted.
//
// A Graph is a read-only view once built — algorithms in pkg/community
// never mutate it mid-sweep; building a new level's graph means
// constructing a new Graph via InducedGraph, not editing one in place.
package graph
