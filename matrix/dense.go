// Package matrix: Dense is a concrete, row-major float64 matrix storing
// elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape unless rows and cols are both positive.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a non-empty slice of equally sized rows.
// Row contents are copied. Returns ErrBadShape for an empty input,
// ErrDimensionMismatch for ragged rows, and ErrNaNInf for non-finite values.
// Complexity: O(r·c)
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrBadShape)
	}
	width := len(rows[0])
	m, err := NewDense(len(rows), width)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrDimensionMismatch, i, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromRows", i, j, ErrNaNInf)
			}
			m.data[i*width+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1)
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1)
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1)
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange for invalid indices and ErrNaNInf for non-finite
// values. Complexity: O(1)
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of the given row.
// Returns ErrOutOfRange for invalid indices. Complexity: O(c)
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// Clone returns a deep copy independent of the original.
// Complexity: O(r·c)
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Data exposes the flat row-major backing slice as a copy, together with
// its shape. This is the hand-off format the sequence layer embeds into
// batches. Complexity: O(r·c)
func (m *Dense) Data() (values []float64, rows, cols int) {
	values = make([]float64, len(m.data))
	copy(values, m.data)

	return values, m.r, m.c
}
