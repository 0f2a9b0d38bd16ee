// Package matrix provides the dense numeric primitives behind lvlgen's
// sequence layer: a row-major float64 matrix, adjacency extraction from an
// mlgraph.Graph, degree normalization, and zero-padding.
//
// 🚀 What lives here?
//
//   - Dense               — row-major storage with safe At/Set accessors
//   - FromRows            — build a Dense from [][]float64 feature rows
//   - Adjacency           — graph → dense adjacency in sorted-node order
//   - NormalizeAdjacency  — D^{-1/2}(A+I)D^{-1/2} or D^{-1}(A+I)
//   - PadSquare / PadRows — zero-padding for fixed-size batch tensors
//
// Numeric policy:
//
//   - Set rejects NaN and ±Inf; every value reachable from a Graph built
//     through mlgraph is already finite, so the guard only trips on direct
//     misuse of Dense.
//   - Zero-degree rows survive normalization as all-zero rows (no division
//     by zero, no NaN leakage into batches).
//
// Determinism:
//
//   - Adjacency row order is the graph's sorted node order.
//   - All kernels use fixed loop orders; no map iteration.
//
// Complexity quicksheet:
//   - NewDense: O(r·c) zero-init; At/Set: O(1); Clone: O(r·c)
//   - Adjacency: O(V·log V + V²); NormalizeAdjacency: O(n²); Pad*: O(n²)
package matrix
