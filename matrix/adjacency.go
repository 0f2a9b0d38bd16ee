// File: adjacency.go
// Role: graph → dense adjacency ingestion.
//
// Determinism:
//   - Row/column order is the graph's sorted node order (mlgraph.Nodes()).
//   - Undirected graphs arrive pre-mirrored from mlgraph; no extra work here.
package matrix

import (
	"github.com/katalvlaran/lvlgen/mlgraph"
)

// AdjacencyOption configures adjacency extraction.
type AdjacencyOption func(*adjacencyConfig)

type adjacencyConfig struct {
	binary bool
}

// WithBinaryAdjacency writes 1 for every present edge instead of its weight.
func WithBinaryAdjacency() AdjacencyOption {
	return func(c *adjacencyConfig) { c.binary = true }
}

// Adjacency builds the dense adjacency matrix of g in sorted-node order.
// Edge weights are preserved unless WithBinaryAdjacency is supplied.
// Returns ErrGraphNil for a nil graph and ErrBadShape for an empty one.
// Complexity: O(V·log V + V²)
func Adjacency(g *mlgraph.Graph, opts ...AdjacencyOption) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var cfg adjacencyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Nodes()
	n := len(ids)
	a, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, from := range ids {
		for j, to := range ids {
			w, ok := g.EdgeWeight(from, to)
			if !ok {
				continue
			}
			if cfg.binary {
				w = 1
			}
			a.data[i*n+j] = w
		}
	}

	return a, nil
}
