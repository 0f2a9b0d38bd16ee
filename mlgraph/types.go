// Package mlgraph declares the Graph type, its construction options and
// the sentinel errors shared by the validation helpers.
package mlgraph

import "errors"

// DefaultNodeType is assigned to nodes added with an empty type string.
const DefaultNodeType = "default"

// Sentinel errors for graph construction and ML-readiness validation.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("mlgraph: node ID is empty")

	// ErrDuplicateNode indicates a node with the same ID was already added.
	ErrDuplicateNode = errors.New("mlgraph: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("mlgraph: node not found")

	// ErrDuplicateEdge indicates an edge between the endpoints already exists.
	ErrDuplicateEdge = errors.New("mlgraph: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted with loops disabled.
	ErrLoopNotAllowed = errors.New("mlgraph: self-loop not allowed")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("mlgraph: edge weight must be finite")

	// ErrMultipleNodeTypes indicates a graph carries more than one node type
	// where a single type is required.
	ErrMultipleNodeTypes = errors.New("mlgraph: graph has multiple node types")

	// ErrMissingFeatures indicates a node has no feature vector attached.
	ErrMissingFeatures = errors.New("mlgraph: node features missing")

	// ErrFeatureWidth indicates inconsistent feature dimensionality within a
	// node type.
	ErrFeatureWidth = errors.New("mlgraph: inconsistent feature width")
)

// node bundles the per-node payload: the node's type and its feature vector.
// A nil features slice means "no features"; CheckForML rejects such nodes.
type node struct {
	typ      string
	features []float64
}

// Option configures a Graph before any nodes are added.
type Option func(*Graph)

// WithName attaches a human-readable name to the graph.
func WithName(name string) Option {
	return func(g *Graph) { g.name = name }
}

// WithDirected sets the directedness of all edges (default: undirected).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph whose nodes carry a type and a feature vector.
//
// Construction is single-threaded: build the graph fully, then hand it to a
// generator. Mutation after a generator has been constructed from the graph
// is undefined behavior.
type Graph struct {
	name       string
	directed   bool
	allowLoops bool

	nodes map[string]*node
	// adjacency[(from)ID][(to)ID] = weight; undirected edges are mirrored.
	adjacency map[string]map[string]float64
	numEdges  int
}

// New creates an empty Graph with the given options.
// By default the graph is undirected, unnamed, and disallows self-loops.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:     make(map[string]*node),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
