// File: normalize.go
// Role: degree normalization and zero-padding kernels.
//
// Contract:
//   - NormalizeAdjacency adds self-loops (A+I) before scaling, the form
//     GCN-style models expect.
//   - Symmetric mode: Â = D^{-1/2} (A+I) D^{-1/2}.
//   - Left (one-sided) mode: Â = D^{-1} (A+I).
//   - D is the diagonal degree matrix of A+I (row sums). Rows whose degree
//     is zero stay zero; no NaN is ever produced.
//
// Determinism:
//   - Fixed i→j loop order throughout.
package matrix

import (
	"fmt"
	"math"
)

// NormalizeAdjacency returns the degree-normalized adjacency of a, with
// self-loops added first. When symmetric is true the inverse square root
// of the degree is applied on both sides; otherwise the inverse degree is
// applied on the left only.
// Returns ErrNilMatrix for a nil input and ErrNonSquare for non-square
// input. The input matrix is not mutated.
// Complexity: O(n²)
func NormalizeAdjacency(a *Dense, symmetric bool) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, a.r, a.c)
	}

	n := a.r
	out := a.Clone()
	// Self-loops: A+I.
	for i := 0; i < n; i++ {
		out.data[i*n+i]++
	}

	// Row sums of A+I give the degree vector.
	degree := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += out.data[i*n+j]
		}
		degree[i] = sum
	}

	if symmetric {
		// scale[i] = d_i^{-1/2}; zero-degree rows keep scale 0.
		scale := make([]float64, n)
		for i, d := range degree {
			if d > 0 {
				scale[i] = 1 / math.Sqrt(d)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out.data[i*n+j] *= scale[i] * scale[j]
			}
		}

		return out, nil
	}

	// Left normalization: divide each row by its degree.
	for i := 0; i < n; i++ {
		if degree[i] == 0 {
			continue
		}
		inv := 1 / degree[i]
		for j := 0; j < n; j++ {
			out.data[i*n+j] *= inv
		}
	}

	return out, nil
}

// PadSquare zero-pads a square matrix to n×n, keeping the original block
// in the top-left corner.
// Returns ErrNilMatrix, ErrNonSquare, or ErrPadTooSmall when n is smaller
// than the input.
// Complexity: O(n²)
func PadSquare(a *Dense, n int) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, a.r, a.c)
	}
	if n < a.r {
		return nil, fmt.Errorf("%w: have %d rows, pad to %d", ErrPadTooSmall, a.r, n)
	}

	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*n:i*n+a.c], a.data[i*a.c:(i+1)*a.c])
	}

	return out, nil
}

// PadRows zero-pads a matrix to n rows, keeping its column count.
// Returns ErrNilMatrix or ErrPadTooSmall when n is smaller than the input.
// Complexity: O(n·c)
func PadRows(a *Dense, n int) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if n < a.r {
		return nil, fmt.Errorf("%w: have %d rows, pad to %d", ErrPadTooSmall, a.r, n)
	}

	out := &Dense{r: n, c: a.c, data: make([]float64, n*a.c)}
	copy(out.data, a.data)

	return out, nil
}
