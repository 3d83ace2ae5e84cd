// Package community implements multi-level agglomerative community
// detection over a weighted graph, generalized across four
// pluggable quality objectives (ppm, dcppm, ilfr, ilfrs). The
// algorithm alternates two phases until neither improves the chosen
// objective: a local-move sweep (OneLevel) that greedily relabels
// each vertex into whichever neighboring community most improves the
// objective, and a contraction step (InducedGraph) that folds each
// community into a single vertex of the next level's graph.
//
// Status is the mutable bookkeeping a sweep mutates in place;
// Objective is the strategy interface a model plugs its
// RemoveCost/AddCost/Value formulas into. GenerateDendrogram drives
// the full multi-level loop and returns every level it commits to;
// BestPartition lifts the result to a single flat partition of the
// original graph.
package community
