// Package generator provides the data-generator adapters that feed graph
// collections into mini-batch training for graph classification models.
//
// 🚀 What is a generator?
//
//	A generator is bound to a fixed graph collection at construction and
//	validated there once: every graph must be ML-ready (features on every
//	node, consistent widths) and carry a single node type. The Flow method
//	then selects a working subset by positional index (ilocs), validates
//	the optional target array against it, and delegates batching to the
//	sequence package:
//	  • GraphGenerator       → sequence.GraphSequence (unpadded)
//	  • PaddedGraphGenerator → sequence.PaddedGraphSequence (padded+mask)
//
// Both components are pure validate-then-delegate: no state machine, no
// lifecycle beyond construction and repeated Flow calls, no retries.
// Every violation is detected eagerly and surfaced as a sentinel error
// with a message naming the offending value.
//
// Flow options follow the recorded-error pattern: an invalid value (e.g.
// WithBatchSize(0)) is stored inside the option set and surfaced when
// Flow runs, so option construction itself never panics.
//
// The two generators intentionally differ in one validation:
// PaddedGraphGenerator cross-checks node feature dimensionality across the
// whole collection at construction (padded batches stack all graphs into
// one tensor), while GraphGenerator only records the first graph's
// dimensionality (unpadded items each carry their own feature matrix).
package generator
