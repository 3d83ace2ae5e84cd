package community

import "errors"

var (
	// ErrZeroEdges is returned when a graph with no edges is passed to a
	// routine that requires a nonzero total weight to normalize against.
	ErrZeroEdges = errors.New("community: graph has no edges")

	// ErrMissingVertex is returned when a partition does not assign a
	// community to every vertex of the graph it describes.
	ErrMissingVertex = errors.New("community: partition missing a graph vertex")

	// ErrUnknownModel is returned when a model name does not match any
	// registered Objective.
	ErrUnknownModel = errors.New("community: unknown model")

	// ErrEmptyPartition is returned by ComparePartitions when given
	// partitions with no entries.
	ErrEmptyPartition = errors.New("community: partition is empty")

	// ErrPartitionSizeMismatch is returned when two partitions being
	// compared do not cover the same vertex set.
	ErrPartitionSizeMismatch = errors.New("community: partitions cover different vertex sets")
)
