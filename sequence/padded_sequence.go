// File: padded_sequence.go
// Role: padded delivery — every batch is stacked into fixed-size tensors
// sized by the largest selected graph, with boolean masks flagging which
// rows are real nodes and which are padding.
//
// Contract:
//   - Feature widths must agree across the whole selection (stacking).
//   - Normalization mode (symmetric vs left) is fixed at construction.
//   - When shuffling is enabled, item order is permuted at OnEpochEnd with
//     a sequence-private seeded RNG: deterministic for a fixed seed.
package sequence

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlgen/matrix"
	"github.com/katalvlaran/lvlgen/mlgraph"
)

// PaddedParams configures NewPaddedGraphSequence. The generator layer
// always fills every field; direct users should start from
// DefaultPaddedParams, since the zero value selects left (one-sided)
// normalization rather than the symmetric default.
type PaddedParams struct {
	// Targets is the optional 2-D target array, one row per graph.
	Targets [][]float64

	// BatchSize is the number of graphs per mini-batch; must be ≥ 1.
	BatchSize int

	// Name is the optional sequence name; empty generates "padded-<uuid>".
	Name string

	// SymmetricNormalization selects D^{-1/2}(A+I)D^{-1/2} when true and
	// D^{-1}(A+I) when false.
	SymmetricNormalization bool

	// Shuffle permutes the item order at every OnEpochEnd.
	Shuffle bool

	// Seed seeds the shuffle RNG; ignored when Shuffle is false.
	Seed int64
}

// DefaultPaddedParams returns the baseline configuration the generator
// layer starts from: batch size 1, symmetric normalization, no shuffling,
// no targets, generated name.
func DefaultPaddedParams() PaddedParams {
	return PaddedParams{
		BatchSize:              1,
		SymmetricNormalization: true,
	}
}

// PaddedGraphSequence delivers a selected graph subset as padded, masked,
// fixed-size batches. It is the batch provider behind
// generator.PaddedGraphGenerator.Flow.
type PaddedGraphSequence struct {
	name      string
	batchSize int
	hasTarget bool
	targetW   int
	maxNodes  int
	width     int
	items     []item
	order     []int
	shuffle   bool
	rng       *rand.Rand
}

// Compile-time interface conformance.
var _ Sequence = (*PaddedGraphSequence)(nil)

// NewPaddedGraphSequence builds a padded sequence over graphs with the
// given parameters.
// Returns ErrNoGraphs, ErrGraphNil, ErrBatchSize, ErrTargetLength,
// ErrTargetRagged or ErrFeatureWidth.
// Complexity: O(Σ n_i²) for adjacency normalization.
func NewPaddedGraphSequence(graphs []*mlgraph.Graph, p PaddedParams) (*PaddedGraphSequence, error) {
	if p.BatchSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBatchSize, p.BatchSize)
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	targetW, err := validateTargets(len(graphs), p.Targets)
	if err != nil {
		return nil, err
	}
	items, err := buildItems(graphs, p.Targets, p.SymmetricNormalization)
	if err != nil {
		return nil, err
	}

	s := &PaddedGraphSequence{
		name:      defaultName(p.Name, "padded"),
		batchSize: p.BatchSize,
		hasTarget: p.Targets != nil,
		targetW:   targetW,
		width:     items[0].width,
		items:     items,
		order:     make([]int, len(items)),
		shuffle:   p.Shuffle,
	}
	for i, it := range items {
		if it.width != s.width {
			return nil, fmt.Errorf("%w: graph %d has width %d, graph 0 has %d",
				ErrFeatureWidth, i, it.width, s.width)
		}
		if it.nodes > s.maxNodes {
			s.maxNodes = it.nodes
		}
		s.order[i] = i
	}
	if p.Shuffle {
		s.rng = rand.New(rand.NewSource(p.Seed))
	}

	return s, nil
}

// Name returns the sequence name.
func (s *PaddedGraphSequence) Name() string { return s.name }

// Items returns the number of selected graphs.
func (s *PaddedGraphSequence) Items() int { return len(s.items) }

// Len returns the number of mini-batches per epoch.
func (s *PaddedGraphSequence) Len() int { return batchCount(len(s.items), s.batchSize) }

// BatchSize returns the configured batch size.
func (s *PaddedGraphSequence) BatchSize() int { return s.batchSize }

// MaxNodes returns the padded node dimension (largest selected graph).
func (s *PaddedGraphSequence) MaxNodes() int { return s.maxNodes }

// OnEpochEnd permutes the item order when shuffling is enabled.
// Deterministic for a fixed seed and call count.
func (s *PaddedGraphSequence) OnEpochEnd() {
	if !s.shuffle {
		return
	}
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
}

// Batch assembles mini-batch i in the current item order. Shapes:
// Features [k,N,f], Adjacency [k,N,N], Mask [k,N], Targets [k,t] (nil
// without targets), where N = MaxNodes().
// Returns ErrBatchIndex outside [0, Len()).
// Complexity: O(k·N·(N+f))
func (s *PaddedGraphSequence) Batch(i int) (*Batch, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBatchIndex, i, s.Len())
	}
	lo := i * s.batchSize
	hi := lo + s.batchSize
	if hi > len(s.items) {
		hi = len(s.items)
	}
	k, n, f := hi-lo, s.maxNodes, s.width

	b := &Batch{
		Features:       make([]float64, 0, k*n*f),
		FeatureShape:   []int{k, n, f},
		Adjacency:      make([]float64, 0, k*n*n),
		AdjacencyShape: []int{k, n, n},
		Mask:           make([]bool, 0, k*n),
		MaskShape:      []int{k, n},
	}
	if s.hasTarget {
		b.Targets = make([]float64, 0, k*s.targetW)
		b.TargetShape = []int{k, s.targetW}
	}
	for _, slot := range s.order[lo:hi] {
		it := s.items[slot]

		feats, err := matrix.PadRows(it.features, n)
		if err != nil {
			return nil, fmt.Errorf("sequence: item %d: %w", slot, err)
		}
		adj, err := matrix.PadSquare(it.adjacency, n)
		if err != nil {
			return nil, fmt.Errorf("sequence: item %d: %w", slot, err)
		}

		fdata, _, _ := feats.Data()
		adata, _, _ := adj.Data()
		b.Features = append(b.Features, fdata...)
		b.Adjacency = append(b.Adjacency, adata...)
		for r := 0; r < n; r++ {
			b.Mask = append(b.Mask, r < it.nodes)
		}
		if s.hasTarget {
			b.Targets = append(b.Targets, it.target...)
		}
	}

	return b, nil
}
