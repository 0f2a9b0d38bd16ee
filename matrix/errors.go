// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with context via
// fmt.Errorf("…: %w", …)); tests match them with errors.Is. No kernel
// panics on user-triggered conditions.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged rows passed to FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but not supplied.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *mlgraph.Graph was passed to Adjacency.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrPadTooSmall indicates a padding target smaller than the input.
	ErrPadTooSmall = errors.New("matrix: pad target smaller than input")
)
