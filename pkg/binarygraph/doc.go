// Package binarygraph reads and writes the legacy fixed-width edge-list
// format used by the original community-detection command-line drivers:
// a flat sequence of little-endian uint32 words describing, per vertex,
// the cumulative degree up to and including that vertex, followed by the
// flat neighbor-index array those cumulative degrees index into.
package binarygraph
