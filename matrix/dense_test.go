package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/matrix"
)

// TestNewDense_Shape verifies shape validation and zero initialization.
func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestDense_AtSet covers bounds and the finite-value policy.
func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestFromRows covers construction, raggedness and NaN rejection.
func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows([][]float64{{1, math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_CloneAndData verifies deep-copy independence.
func TestDense_CloneAndData(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "Clone must not alias the original")

	data, r, cols := m.Data()
	require.Equal(t, []float64{1, 2, 3, 4}, data)
	require.Equal(t, 2, r)
	require.Equal(t, 2, cols)
	data[0] = 42
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "Data must return a copy")
}
