// File: padded_generator.go
// Role: the padded data generator — collection validation additionally
// cross-checks feature dimensionality, Flow additionally accepts
// normalization mode, shuffle flag and seed, and delegates to
// sequence.PaddedGraphSequence.
package generator

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/mlgraph"
	"github.com/katalvlaran/lvlgen/sequence"
)

// PaddedGraphGenerator is a data generator for graph classification whose
// batches resolve node-count differences by padding feature and adjacency
// tensors and supplying a boolean mask flagging real versus padding rows.
type PaddedGraphGenerator struct {
	graphs      []*mlgraph.Graph
	name        string
	featureSize int
}

// NewPaddedGraphGenerator validates the collection and binds the generator
// to it. On top of the unpadded variant's checks (non-nil, ML-ready,
// single node type) it requires identical node feature dimensionality
// across all graphs, since padded batches stack every graph into one
// tensor.
// Returns ErrNoGraphs, ErrGraphNil, ErrFeatureDimMismatch naming both
// widths, or the wrapped mlgraph sentinel of the first offending graph.
// Complexity: O(Σ V_i·log V_i)
func NewPaddedGraphGenerator(graphs []*mlgraph.Graph, opts ...GeneratorOption) (*PaddedGraphGenerator, error) {
	var cfg generatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateCollection(graphs); err != nil {
		return nil, err
	}

	featureSize := -1
	for i, g := range graphs {
		typ, err := g.UniqueNodeType()
		if err != nil {
			return nil, fmt.Errorf("generator: graph %d: %w", i, err)
		}
		dim := g.NodeFeatureSizes()[typ]
		if featureSize < 0 {
			featureSize = dim
			continue
		}
		if dim != featureSize {
			return nil, fmt.Errorf("%w: found %d vs %d (graph %d)",
				ErrFeatureDimMismatch, featureSize, dim, i)
		}
	}

	return &PaddedGraphGenerator{
		graphs:      graphs,
		name:        cfg.name,
		featureSize: featureSize,
	}, nil
}

// Name returns the generator's optional name.
func (g *PaddedGraphGenerator) Name() string { return g.name }

// NumGraphs returns the size of the bound collection.
func (g *PaddedGraphGenerator) NumGraphs() int { return len(g.graphs) }

// NodeFeatureSize returns the collection-wide feature dimensionality.
func (g *PaddedGraphGenerator) NodeFeatureSize() int { return g.featureSize }

// Flow creates a sequence object for training, evaluation or prediction
// over the graphs selected by ilocs, configured for batched, padded
// delivery.
//
// Options: WithTargets, WithBatchSize (≥ 1), WithFlowName,
// WithSymmetricNormalization (default true), WithShuffle(seed).
//
// Returns ErrNoIlocs, ErrIlocOutOfRange, ErrTargetLength, ErrTargetRagged,
// ErrBatchSize, or a sequence construction error.
// Complexity: O(Σ n_i²) over the selected graphs.
func (g *PaddedGraphGenerator) Flow(ilocs []int, opts ...FlowOption) (*sequence.PaddedGraphSequence, error) {
	cfg := gatherFlowOptions(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}

	selected, err := selectSubset(g.graphs, ilocs, cfg.targets)
	if err != nil {
		return nil, err
	}

	return sequence.NewPaddedGraphSequence(selected, sequence.PaddedParams{
		Targets:                cfg.targets,
		BatchSize:              cfg.batchSize,
		Name:                   cfg.name,
		SymmetricNormalization: cfg.symmetric,
		Shuffle:                cfg.shuffle,
		Seed:                   cfg.seed,
	})
}

// validateCollection runs the construction-time checks shared by both
// generator variants.
func validateCollection(graphs []*mlgraph.Graph) error {
	if len(graphs) == 0 {
		return ErrNoGraphs
	}
	for i, g := range graphs {
		if g == nil {
			return fmt.Errorf("%w: position %d", ErrGraphNil, i)
		}
		if err := g.CheckForML(); err != nil {
			return fmt.Errorf("generator: graph %d: %w", i, err)
		}
		if _, err := g.UniqueNodeType(); err != nil {
			return fmt.Errorf("generator: graph %d: %w", i, err)
		}
	}

	return nil
}

// selectSubset validates ilocs against the collection bounds and targets
// against the ilocs, then returns the selected graphs in iloc order.
func selectSubset(graphs []*mlgraph.Graph, ilocs []int, targets [][]float64) ([]*mlgraph.Graph, error) {
	if len(ilocs) == 0 {
		return nil, ErrNoIlocs
	}
	for _, iloc := range ilocs {
		if iloc < 0 || iloc >= len(graphs) {
			return nil, fmt.Errorf("%w: %d of %d", ErrIlocOutOfRange, iloc, len(graphs))
		}
	}
	if targets != nil {
		if len(targets) != len(ilocs) {
			return nil, fmt.Errorf("%w: found %d vs %d",
				ErrTargetLength, len(targets), len(ilocs))
		}
		width := len(targets[0])
		for i, row := range targets {
			if len(row) != width {
				return nil, fmt.Errorf("%w: row %d has %d values, row 0 has %d",
					ErrTargetRagged, i, len(row), width)
			}
		}
	}

	selected := make([]*mlgraph.Graph, len(ilocs))
	for i, iloc := range ilocs {
		selected[i] = graphs[iloc]
	}

	return selected, nil
}
