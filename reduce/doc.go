// Package reduce sums a work matrix in parallel under one of two
// load-balancing disciplines.
//
// What:
//
//   - Reduce(m, opts) partitions the rows of a matrix.Dense across a fixed
//     pool of workers and folds them into one gross sum.
//   - Static strategy: worker tid claims rows tid, tid+N, tid+2N, … with no
//     coordination at all.
//   - Dynamic strategy: workers pull rows one at a time from a shared,
//     mutex-guarded counter; a fast worker simply claims more rows.
//   - Observer: a seam for worker start/end notifications, kept out of the
//     hot loop and serialized independently of the work-distribution lock.
//
// Why:
//
//   - Static costs nothing in synchronization but fixes the assignment up
//     front; dynamic adapts to uneven per-row cost at the price of one
//     short critical section per row.
//   - Either way the result is identical: every row is claimed exactly
//     once, so the gross sum equals the sequential fold regardless of
//     strategy or worker count.
//
// Concurrency:
//
//	The matrix is read-only for the duration of a run and shared without
//	locks. The claim counter is the only shared mutable state and is
//	touched exclusively under its own mutex, held for O(1) work; row
//	summation always happens outside it. Per-worker tallies live in
//	disjoint slots owned by their worker and are read only after the
//	join barrier. A run always completes; there is no cancellation path.
//
// Complexity:
//
//	Time: O(rows*cols / workers) plus O(rows) claim overhead in dynamic
//	mode. Memory: O(workers).
//
// Errors:
//
//   - ErrNilMatrix: no work matrix supplied.
//   - ErrWorkerCount: requested worker count below 1.
//   - ErrBadStrategy: strategy value outside {Static, Dynamic}.
package reduce
