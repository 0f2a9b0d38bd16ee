// File: graph.go
// Role: node/edge construction and deterministic topology queries.
//
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted lexicographically ascending.
package mlgraph

import (
	"fmt"
	"math"
	"sort"
)

// Name returns the graph's optional name (empty when unnamed).
func (g *Graph) Name() string { return g.name }

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool { return g.directed }

// AddNode registers a node with its type and feature vector.
// An empty nodeType is replaced by DefaultNodeType. The features slice is
// copied; a nil slice registers the node without features (rejected later
// by CheckForML).
// Returns ErrEmptyNodeID or ErrDuplicateNode on invalid input.
// Complexity: O(len(features))
func (g *Graph) AddNode(id, nodeType string, features []float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if nodeType == "" {
		nodeType = DefaultNodeType
	}

	var feats []float64
	if features != nil {
		feats = make([]float64, len(features))
		copy(feats, features)
	}
	g.nodes[id] = &node{typ: nodeType, features: feats}
	g.adjacency[id] = make(map[string]float64)

	return nil
}

// AddEdge connects two existing nodes with the given weight.
// Undirected graphs mirror the edge into both adjacency buckets.
// Returns ErrNodeNotFound when an endpoint is missing, ErrLoopNotAllowed
// for self-loops without WithLoops, ErrBadWeight for non-finite weights,
// and ErrDuplicateEdge when the pair is already connected.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %q→%q", ErrBadWeight, from, to)
	}
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("%w: %q→%q", ErrDuplicateEdge, from, to)
	}

	g.adjacency[from][to] = weight
	if !g.directed && from != to {
		g.adjacency[to][from] = weight
	}
	g.numEdges++

	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NumNodes returns the number of nodes. Complexity: O(1)
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges added via AddEdge. Mirrored
// undirected entries count once. Complexity: O(1)
func (g *Graph) NumEdges() int { return g.numEdges }

// Nodes returns all node IDs sorted ascending. Complexity: O(V·log V)
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Returns ErrNodeNotFound for unknown IDs. Complexity: O(d·log d)
func (g *Graph) Neighbors(id string) ([]string, error) {
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	out := make([]string, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// EdgeWeight returns the weight of the edge from→to and whether it exists.
// Complexity: O(1)
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	bucket, ok := g.adjacency[from]
	if !ok {
		return 0, false
	}
	w, ok := bucket[to]

	return w, ok
}

// NodeType returns the type of the given node.
// Returns ErrNodeNotFound for unknown IDs. Complexity: O(1)
func (g *Graph) NodeType(id string) (string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.typ, nil
}

// NodeTypes returns the distinct node types present, sorted ascending.
// Complexity: O(V + T·log T)
func (g *Graph) NodeTypes() []string {
	seen := make(map[string]struct{})
	for _, n := range g.nodes {
		seen[n.typ] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)

	return types
}
