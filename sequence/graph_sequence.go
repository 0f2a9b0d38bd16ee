// File: graph_sequence.go
// Role: unpadded delivery — one feature matrix and one normalized
// adjacency per graph, stacked only when shapes already agree.
//
// Contract:
//   - Adjacency normalization is always symmetric for the unpadded variant.
//   - With batchSize > 1, every graph grouped into the same batch must have
//     the same node count (ErrRaggedBatch otherwise); batchSize == 1 never
//     fails this check.
//   - Item order is fixed; OnEpochEnd is a no-op.
package sequence

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/mlgraph"
)

// GraphSequence delivers a selected graph subset unpadded, one graph per
// item. It is the batch provider behind generator.GraphGenerator.Flow.
type GraphSequence struct {
	name      string
	batchSize int
	hasTarget bool
	targetW   int
	items     []item
}

// Compile-time interface conformance.
var _ Sequence = (*GraphSequence)(nil)

// NewGraphSequence builds an unpadded sequence over graphs.
// targets may be nil; otherwise it must hold one row per graph, all rows
// equally wide. batchSize must be ≥ 1. An empty name is replaced with a
// generated "seq-<uuid>" name.
// Returns ErrNoGraphs, ErrGraphNil, ErrBatchSize, ErrTargetLength,
// ErrTargetRagged or ErrRaggedBatch.
// Complexity: O(Σ n_i²) for adjacency normalization.
func NewGraphSequence(graphs []*mlgraph.Graph, targets [][]float64, batchSize int, name string) (*GraphSequence, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, batchSize)
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	targetW, err := validateTargets(len(graphs), targets)
	if err != nil {
		return nil, err
	}
	items, err := buildItems(graphs, targets, true)
	if err != nil {
		return nil, err
	}

	s := &GraphSequence{
		name:      defaultName(name, "seq"),
		batchSize: batchSize,
		hasTarget: targets != nil,
		targetW:   targetW,
		items:     items,
	}
	// Unpadded stacking is only defined over uniform shapes; verify every
	// batch group eagerly so Batch cannot fail mid-epoch.
	if batchSize > 1 {
		if err = s.checkGroups(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// checkGroups verifies node-count and feature-width uniformity inside each
// batch group.
func (s *GraphSequence) checkGroups() error {
	for b := 0; b < s.Len(); b++ {
		lo, hi := s.bounds(b)
		first := s.items[lo]
		for i := lo + 1; i < hi; i++ {
			if s.items[i].nodes != first.nodes || s.items[i].width != first.width {
				return fmt.Errorf("%w: batch %d mixes %dx%d and %dx%d feature matrices",
					ErrRaggedBatch, b, first.nodes, first.width, s.items[i].nodes, s.items[i].width)
			}
		}
	}

	return nil
}

// bounds returns the item range [lo, hi) of batch b.
func (s *GraphSequence) bounds(b int) (int, int) {
	lo := b * s.batchSize
	hi := lo + s.batchSize
	if hi > len(s.items) {
		hi = len(s.items)
	}

	return lo, hi
}

// Name returns the sequence name.
func (s *GraphSequence) Name() string { return s.name }

// Items returns the number of selected graphs.
func (s *GraphSequence) Items() int { return len(s.items) }

// Len returns the number of mini-batches per epoch.
func (s *GraphSequence) Len() int { return batchCount(len(s.items), s.batchSize) }

// BatchSize returns the configured batch size.
func (s *GraphSequence) BatchSize() int { return s.batchSize }

// OnEpochEnd is a no-op: the unpadded variant never shuffles.
func (s *GraphSequence) OnEpochEnd() {}

// Batch assembles mini-batch i. Shapes: Features [k,n,f],
// Adjacency [k,n,n], Targets [k,t] (nil without targets), Mask nil.
// Returns ErrBatchIndex outside [0, Len()).
// Complexity: O(k·n·(n+f))
func (s *GraphSequence) Batch(i int) (*Batch, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBatchIndex, i, s.Len())
	}
	lo, hi := s.bounds(i)
	k := hi - lo
	n, f := s.items[lo].nodes, s.items[lo].width

	b := &Batch{
		Features:       make([]float64, 0, k*n*f),
		FeatureShape:   []int{k, n, f},
		Adjacency:      make([]float64, 0, k*n*n),
		AdjacencyShape: []int{k, n, n},
	}
	if s.hasTarget {
		b.Targets = make([]float64, 0, k*s.targetW)
		b.TargetShape = []int{k, s.targetW}
	}
	for _, it := range s.items[lo:hi] {
		feats, _, _ := it.features.Data()
		adj, _, _ := it.adjacency.Data()
		b.Features = append(b.Features, feats...)
		b.Adjacency = append(b.Adjacency, adj...)
		if s.hasTarget {
			b.Targets = append(b.Targets, it.target...)
		}
	}

	return b, nil
}
