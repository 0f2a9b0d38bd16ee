// File: ml.go
// Role: machine-learning readiness checks and feature retrieval.
//
// These are the black-box validations the generator layer calls before
// delegating a collection to a sequence constructor.
package mlgraph

import "fmt"

// UniqueNodeType asserts the graph carries exactly one node type and
// returns it. A graph with zero nodes has no type and fails the same way.
// Returns ErrMultipleNodeTypes naming every type found.
// Complexity: O(V + T·log T)
func (g *Graph) UniqueNodeType() (string, error) {
	types := g.NodeTypes()
	if len(types) != 1 {
		return "", fmt.Errorf("%w: found %v", ErrMultipleNodeTypes, types)
	}

	return types[0], nil
}

// NodeFeatureSizes returns the feature width per node type.
// The width of a type is taken from its first node in sorted ID order;
// within-type inconsistencies are CheckForML's concern, not this query's.
// Complexity: O(V·log V)
func (g *Graph) NodeFeatureSizes() map[string]int {
	sizes := make(map[string]int)
	for _, id := range g.Nodes() {
		n := g.nodes[id]
		if _, seen := sizes[n.typ]; !seen {
			sizes[n.typ] = len(n.features)
		}
	}

	return sizes
}

// CheckForML verifies the graph is ready for machine learning:
// every node must carry a non-empty feature vector, and all nodes of the
// same type must share the same feature width.
// Returns ErrMissingFeatures or ErrFeatureWidth naming the offending node.
// Complexity: O(V·log V)
func (g *Graph) CheckForML() error {
	width := make(map[string]int)
	for _, id := range g.Nodes() {
		n := g.nodes[id]
		if len(n.features) == 0 {
			return fmt.Errorf("%w: node %q", ErrMissingFeatures, id)
		}
		if w, seen := width[n.typ]; seen {
			if w != len(n.features) {
				return fmt.Errorf("%w: node %q has %d, type %q has %d",
					ErrFeatureWidth, id, len(n.features), n.typ, w)
			}
		} else {
			width[n.typ] = len(n.features)
		}
	}

	return nil
}

// NodeFeatures returns one feature row per requested ID, in the order the
// IDs were supplied. Rows are copies; mutating them does not affect the
// graph. Returns ErrNodeNotFound for unknown IDs and ErrMissingFeatures
// for nodes without features.
// Complexity: O(len(ids)·F)
func (g *Graph) NodeFeatures(ids []string) ([][]float64, error) {
	rows := make([][]float64, len(ids))
	for i, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
		if len(n.features) == 0 {
			return nil, fmt.Errorf("%w: node %q", ErrMissingFeatures, id)
		}
		row := make([]float64, len(n.features))
		copy(row, n.features)
		rows[i] = row
	}

	return rows, nil
}
