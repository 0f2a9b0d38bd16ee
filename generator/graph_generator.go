// File: graph_generator.go
// Role: the unpadded data generator — validate the collection once at
// construction, validate every Flow call, delegate batching to
// sequence.GraphSequence.
package generator

import (
	"fmt"

	"github.com/katalvlaran/lvlgen/mlgraph"
	"github.com/katalvlaran/lvlgen/sequence"
)

// GraphGenerator is a data generator for graph classification over a
// fixed collection of ML-ready, single-node-type graphs. It supplies the
// feature matrix and the (symmetric) normalized adjacency of each selected
// graph to a mini-batch model, unpadded.
//
// The feature dimensionality recorded at construction is taken from the
// first graph; the unpadded variant deliberately performs no cross-graph
// dimensionality check (each item carries its own feature matrix).
type GraphGenerator struct {
	graphs      []*mlgraph.Graph
	name        string
	featureSize int
}

// NewGraphGenerator validates the collection and binds the generator to it.
// Every graph must be non-nil, ML-ready (mlgraph.CheckForML) and carry a
// single node type (mlgraph.UniqueNodeType).
// Returns ErrNoGraphs, ErrGraphNil, or the wrapped mlgraph sentinel of the
// first offending graph.
// Complexity: O(Σ V_i·log V_i)
func NewGraphGenerator(graphs []*mlgraph.Graph, opts ...GeneratorOption) (*GraphGenerator, error) {
	var cfg generatorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateCollection(graphs); err != nil {
		return nil, err
	}

	// The first graph's unique type defines the recorded dimensionality.
	typ, err := graphs[0].UniqueNodeType()
	if err != nil {
		return nil, fmt.Errorf("generator: graph 0: %w", err)
	}

	return &GraphGenerator{
		graphs:      graphs,
		name:        cfg.name,
		featureSize: graphs[0].NodeFeatureSizes()[typ],
	}, nil
}

// Name returns the generator's optional name.
func (g *GraphGenerator) Name() string { return g.name }

// NumGraphs returns the size of the bound collection.
func (g *GraphGenerator) NumGraphs() int { return len(g.graphs) }

// NodeFeatureSize returns the feature dimensionality recorded from the
// first graph of the collection.
func (g *GraphGenerator) NodeFeatureSize() int { return g.featureSize }

// Flow creates a sequence object for training, evaluation or prediction
// over the graphs selected by ilocs.
//
// Supported options: WithTargets, WithBatchSize, WithFlowName.
// WithSymmetricNormalization and WithShuffle belong to the padded variant
// and are rejected with ErrOptionViolation.
//
// Returns ErrNoIlocs, ErrIlocOutOfRange, ErrTargetLength, ErrTargetRagged,
// ErrBatchSize, ErrOptionViolation, or a sequence construction error.
// Complexity: O(Σ n_i²) over the selected graphs.
func (g *GraphGenerator) Flow(ilocs []int, opts ...FlowOption) (*sequence.GraphSequence, error) {
	cfg := gatherFlowOptions(opts)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.setSymmetric {
		return nil, fmt.Errorf("%w: WithSymmetricNormalization on unpadded generator", ErrOptionViolation)
	}
	if cfg.setShuffle {
		return nil, fmt.Errorf("%w: WithShuffle on unpadded generator", ErrOptionViolation)
	}

	selected, err := g.selectGraphs(ilocs, cfg.targets)
	if err != nil {
		return nil, err
	}

	return sequence.NewGraphSequence(selected, cfg.targets, cfg.batchSize, cfg.name)
}

// selectGraphs validates ilocs and targets and returns the graph subset.
func (g *GraphGenerator) selectGraphs(ilocs []int, targets [][]float64) ([]*mlgraph.Graph, error) {
	return selectSubset(g.graphs, ilocs, targets)
}
