package generator

import "errors"

// Sentinel errors for generator construction and Flow validation.
// Violations detected inside a graph itself (missing features, multiple
// node types) surface as wrapped mlgraph sentinels and still match via
// errors.Is.
var (
	// ErrNoGraphs indicates a nil or empty graph collection.
	ErrNoGraphs = errors.New("generator: graph collection is empty")

	// ErrGraphNil indicates a nil graph inside the collection.
	ErrGraphNil = errors.New("generator: nil graph in collection")

	// ErrFeatureDimMismatch indicates node feature dimensionality differing
	// across graphs in a padded collection.
	ErrFeatureDimMismatch = errors.New("generator: node feature dimensions differ across graphs")

	// ErrNoIlocs indicates an empty index selection passed to Flow.
	ErrNoIlocs = errors.New("generator: no graph ilocs supplied")

	// ErrIlocOutOfRange indicates a graph iloc outside the collection bounds.
	ErrIlocOutOfRange = errors.New("generator: graph iloc out of range")

	// ErrTargetLength indicates targets whose length differs from the ilocs.
	ErrTargetLength = errors.New("generator: targets must be the same length as graph ilocs")

	// ErrTargetRagged indicates target rows of differing widths.
	ErrTargetRagged = errors.New("generator: target rows must have equal width")

	// ErrBatchSize indicates a batch size below 1.
	ErrBatchSize = errors.New("generator: batch size must be a strictly positive integer")

	// ErrOptionViolation indicates a Flow option that is not supported by
	// the generator variant it was passed to.
	ErrOptionViolation = errors.New("generator: unsupported flow option")
)
