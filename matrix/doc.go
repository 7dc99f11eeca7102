// Package matrix provides the dense integer WorkMatrix consumed by the
// reduction engine.
//
// What:
//
//   - Dense: a row-major matrix of int32 values backed by one flat slice,
//     with bounds-checked At/Set and deep Clone.
//   - Random: deterministic pseudo-random population from an explicit seed.
//   - RowSum / Sum: 64-bit accumulation over one row or the whole matrix.
//
// Why:
//
//   - The unit of work in a reduction run is one row; RowSum is the inner
//     loop every worker executes.
//   - Sum is the sequential baseline that any parallel run must reproduce,
//     regardless of strategy or worker count.
//   - Elements are int32 but accumulators are uint64, so a full 1000×100
//     matrix of maximal values cannot overflow.
//
// Concurrency:
//
//	Dense performs no locking. It is safe for concurrent use only while
//	no goroutine writes to it; the reduction engine relies on exactly
//	this read-only discipline during a run.
//
// Complexity:
//
//   - Rows, Cols, At, Set: O(1).
//   - RowSum: O(cols). Sum, Clone, Random: O(rows*cols).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrIndexOutOfBounds: a row or column index is outside valid range.
//   - ErrRaggedRows: literal row data with differing lengths.
package matrix
