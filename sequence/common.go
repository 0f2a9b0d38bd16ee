// File: common.go
// Role: shared construction helpers for both sequence variants —
// target validation and per-graph precomputation of feature and
// normalized-adjacency matrices.
package sequence

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlgen/matrix"
	"github.com/katalvlaran/lvlgen/mlgraph"
)

// item holds the precomputed tensors of one selected graph.
type item struct {
	features  *matrix.Dense // nodes × width
	adjacency *matrix.Dense // nodes × nodes, degree-normalized
	target    []float64     // nil when the sequence carries no targets
	nodes     int
	width     int
}

// validateTargets checks the optional target array against the selection:
// nil is allowed; otherwise one row per graph, all rows equally wide.
// Returns the target width (0 when targets is nil).
func validateTargets(graphs int, targets [][]float64) (int, error) {
	if targets == nil {
		return 0, nil
	}
	if len(targets) != graphs {
		return 0, fmt.Errorf("%w: %d targets vs %d graphs",
			ErrTargetLength, len(targets), graphs)
	}
	width := len(targets[0])
	for i, row := range targets {
		if len(row) != width {
			return 0, fmt.Errorf("%w: row %d has %d values, row 0 has %d",
				ErrTargetRagged, i, len(row), width)
		}
	}

	return width, nil
}

// buildItems precomputes, for every selected graph, its feature matrix and
// its degree-normalized adjacency. Construction fails eagerly on nil
// graphs or graphs whose features cannot be materialized.
func buildItems(graphs []*mlgraph.Graph, targets [][]float64, symmetric bool) ([]item, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	items := make([]item, len(graphs))
	for i, g := range graphs {
		if g == nil {
			return nil, fmt.Errorf("%w: position %d", ErrGraphNil, i)
		}
		rows, err := g.NodeFeatures(g.Nodes())
		if err != nil {
			return nil, fmt.Errorf("sequence: graph %d: %w", i, err)
		}
		feats, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("sequence: graph %d: %w", i, err)
		}
		adj, err := matrix.Adjacency(g)
		if err != nil {
			return nil, fmt.Errorf("sequence: graph %d: %w", i, err)
		}
		norm, err := matrix.NormalizeAdjacency(adj, symmetric)
		if err != nil {
			return nil, fmt.Errorf("sequence: graph %d: %w", i, err)
		}

		items[i] = item{
			features:  feats,
			adjacency: norm,
			nodes:     feats.Rows(),
			width:     feats.Cols(),
		}
		if targets != nil {
			items[i].target = targets[i]
		}
	}

	return items, nil
}

// batchCount returns ceil(items / batchSize).
func batchCount(items, batchSize int) int {
	return (items + batchSize - 1) / batchSize
}

// defaultName returns name unchanged, or prefix-<uuid> when empty.
func defaultName(name, prefix string) string {
	if name != "" {
		return name
	}

	return prefix + "-" + uuid.NewString()
}
