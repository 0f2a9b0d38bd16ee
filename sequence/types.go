// Package sequence declares the Sequence interface, the Batch payload and
// the sentinel errors shared by both sequence variants.
package sequence

import "errors"

// Sentinel errors for sequence construction and batch retrieval.
var (
	// ErrNoGraphs indicates an empty graph selection.
	ErrNoGraphs = errors.New("sequence: no graphs supplied")

	// ErrGraphNil indicates a nil graph inside the selection.
	ErrGraphNil = errors.New("sequence: nil graph in selection")

	// ErrBatchSize indicates a batch size below 1.
	ErrBatchSize = errors.New("sequence: batch size must be a strictly positive integer")

	// ErrTargetLength indicates targets whose length differs from the selection.
	ErrTargetLength = errors.New("sequence: targets length differs from selection")

	// ErrTargetRagged indicates target rows of differing widths.
	ErrTargetRagged = errors.New("sequence: target rows must have equal width")

	// ErrFeatureWidth indicates graphs whose node feature widths cannot be
	// stacked into a single batch tensor.
	ErrFeatureWidth = errors.New("sequence: node feature widths differ across selection")

	// ErrRaggedBatch indicates an unpadded batch grouping graphs of
	// different node counts; padding exists precisely to lift this limit.
	ErrRaggedBatch = errors.New("sequence: unpadded batch requires graphs of equal node count")

	// ErrBatchIndex indicates a batch index outside [0, Len()).
	ErrBatchIndex = errors.New("sequence: batch index out of range")
)

// Batch is one mini-batch of graph data in flat row-major form.
// Shape slices use the [k, n, …] convention documented in doc.go; a nil
// Targets means the sequence was built without targets, a nil Mask means
// the sequence is unpadded.
type Batch struct {
	Features       []float64
	FeatureShape   []int
	Adjacency      []float64
	AdjacencyShape []int
	Mask           []bool
	MaskShape      []int
	Targets        []float64
	TargetShape    []int
}

// Sequence is the batch-provider abstraction returned by the generators
// and consumed by a training, evaluation or prediction driver.
type Sequence interface {
	// Len returns the number of mini-batches per epoch.
	Len() int

	// Items returns the number of selected graphs.
	Items() int

	// Batch returns mini-batch i. Returns ErrBatchIndex outside [0, Len()).
	Batch(i int) (*Batch, error)

	// OnEpochEnd signals the end of an epoch; shuffling sequences reorder
	// their items here.
	OnEpochEnd()

	// Name returns the sequence name (generated when not supplied).
	Name() string
}
