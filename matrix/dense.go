package matrix

import (
	"fmt"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, row-major matrix of int32 values, storing elements
// in a flat slice for performance and cache friendliness. It is the
// WorkMatrix of the reduction engine: populated once, then read
// concurrently by workers.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int32 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]int32, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix from literal row data.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Prepare): allocate flat slice and copy row by row.
// Stage 3 (Finalize): return new Dense or a sentinel error.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]int32) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	// Validate rectangularity
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}

	// Copy row data into flat storage
	data := make([]int32, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Set must not be called concurrently with a reduction run over m.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// RowSum accumulates one row into a uint64.
// This is the inner loop of every reduction worker; it performs no locking
// and relies on the matrix being read-only for its duration.
// Stage 1 (Validate): bounds check on row.
// Stage 2 (Execute): fold cols elements into a 64-bit accumulator.
// Complexity: O(c).
func (m *Dense) RowSum(row int) (uint64, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("RowSum", row, 0, ErrIndexOutOfBounds)
	}

	// Fold the row; widen each element before adding
	var acc uint64
	base := row * m.c
	for j := 0; j < m.c; j++ {
		acc += uint64(m.data[base+j])
	}

	return acc, nil
}

// Sum accumulates every element into a uint64.
// This is the sequential baseline any parallel reduction must reproduce.
// Complexity: O(r*c).
func (m *Dense) Sum() uint64 {
	var acc uint64
	for _, v := range m.data {
		acc += uint64(v)
	}

	return acc
}

// Clone returns a deep copy of the Dense matrix.
// The returned matrix is independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]int32, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%d", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
