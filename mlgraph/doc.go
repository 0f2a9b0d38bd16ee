// Package mlgraph provides the machine-learning-ready graph type consumed
// by the lvlgen generators: topology plus per-node feature vectors and
// node types.
//
// A Graph is built once (AddNode / AddEdge) and then treated as read-only
// by the rest of the pipeline; no internal locking is performed, matching
// the single-threaded construction model of dataset preparation.
//
// Determinism:
//
//   - Nodes(), NodeTypes() and Neighbors() return lexicographically sorted
//     results, so every matrix derived from a Graph has a stable row order.
//
// Validation surface used by the generators:
//
//	UniqueNodeType()   — asserts the graph carries exactly one node type
//	CheckForML()       — asserts every node has features of a consistent width
//	NodeFeatureSizes() — feature width per node type
//	NodeFeatures(ids)  — feature rows in caller-supplied order
//
// Errors:
//
//	ErrEmptyNodeID        - node ID is the empty string.
//	ErrDuplicateNode      - node already present.
//	ErrNodeNotFound       - referenced node does not exist.
//	ErrDuplicateEdge      - edge between the endpoints already present.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrBadWeight          - edge weight is NaN or ±Inf.
//	ErrMultipleNodeTypes  - more than one node type present.
//	ErrMissingFeatures    - a node carries no feature vector.
//	ErrFeatureWidth       - feature widths differ within a node type.
package mlgraph
