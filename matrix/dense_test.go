// Package matrix_test contains unit tests for the Dense WorkMatrix
// implementation in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matsum/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, -1)                     // attempt to create with negative dimensions
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFromRows validates construction from literal row data
// and rejection of ragged or empty input.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)       // valid rectangular input
	require.Equal(t, 3, m.Rows()) // three rows
	require.Equal(t, 2, m.Cols()) // two columns

	v, err := m.At(2, 1) // bottom-right element
	require.NoError(t, err)
	require.Equal(t, int32(6), v)

	_, err = matrix.NewDenseFromRows([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows) // uneven rows rejected

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // empty input rejected

	_, err = matrix.NewDenseFromRows([][]int32{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // zero-width rows rejected
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                                // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	_, err = m.At(0, 2)                                 // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(2, 0, 123)                              // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds

	err = m.Set(0, -1, 456)                             // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // expect ErrIndexOutOfBounds
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 789)  // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)            // retrieve the set element
	require.NoError(t, err)           // assert At() succeeded
	require.Equal(t, int32(789), val) // assert retrieved value matches set value
}

// TestRowSum verifies the 64-bit row accumulation and its bounds checking.
func TestRowSum(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int32{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
	require.NoError(t, err)

	want := []uint64{3, 7, 11, 15} // expected per-row sums
	for i, w := range want {
		s, rerr := m.RowSum(i)
		require.NoError(t, rerr)
		require.Equal(t, w, s, "row %d sum mismatch", i)
	}

	_, err = m.RowSum(4) // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.RowSum(-1) // negative row index
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSumMatchesRowSums asserts Sum() equals the fold of all RowSum() values.
func TestSumMatchesRowSums(t *testing.T) {
	m, err := matrix.Random(50, 20, matrix.DefaultSeed)
	require.NoError(t, err)

	var total uint64
	for i := 0; i < m.Rows(); i++ {
		s, rerr := m.RowSum(i)
		require.NoError(t, rerr)
		total += s
	}
	require.Equal(t, m.Sum(), total) // whole-matrix sum equals fold of rows
}

// TestRandomDeterminism ensures the same seed reproduces the same matrix
// and a different seed produces a different one.
func TestRandomDeterminism(t *testing.T) {
	a, err := matrix.Random(10, 10, 42)
	require.NoError(t, err)
	b, err := matrix.Random(10, 10, 42)
	require.NoError(t, err)
	c, err := matrix.Random(10, 10, 43)
	require.NoError(t, err)

	require.Equal(t, a.Sum(), b.Sum()) // identical seeds agree
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			require.Equal(t, av, bv, "element (%d,%d) differs across identical seeds", i, j)
			require.GreaterOrEqual(t, av, int32(0)) // values are non-negative
		}
	}
	require.NotEqual(t, a.Sum(), c.Sum()) // different seed diverges
}

// TestRandomInvalidDimensions ensures Random delegates shape validation.
func TestRandomInvalidDimensions(t *testing.T) {
	_, err := matrix.Random(0, 10, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 1, 2)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	_ = clone.Set(0, 0, 3)

	origVal, err := m.At(0, 0)         // retrieve original matrix element
	require.NoError(t, err)            // assert At() succeeded on original
	require.Equal(t, int32(1), origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0)     // retrieve clone's element
	require.NoError(t, err)             // assert At() succeeded on clone
	require.Equal(t, int32(3), cloneVal) // expect clone reflects its own write
}

// TestStringRendersRows sanity-checks the debug rendering.
func TestStringRendersRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]int32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
