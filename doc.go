// Package matsum is an in-memory parallel reduction engine: it sums the
// entries of a fixed-size integer matrix with a pool of workers under one
// of two load-balancing disciplines.
//
// 🚀 What is matsum?
//
//	A small, focused library that brings together:
//		• matrix/ — a dense, row-major integer WorkMatrix with bounds-checked
//		  access, deterministic pseudo-random population, and row/whole sums
//		• reduce/ — the reduction engine: static (stride) and dynamic
//		  (shared-counter) partitioning, per-worker private accumulators,
//		  join-before-aggregate, and an Observer seam for status events
//		• cmd/matsum — a demo CLI mirroring the classic reduce exercise:
//		  pick a strategy, pick a worker count, watch the workers report
//
// ✨ Why choose matsum?
//
//   - Deterministic results – gross sum is independent of strategy and
//     worker count, guaranteed by exactly-once row coverage
//   - Rock-solid guarantees – the only shared mutable state is a single
//     mutex-guarded claim counter; everything else is worker-private
//   - Clear seams – status reporting is an interface, never baked into the
//     hot loop; zap-backed and io.Writer-backed observers included
//
// Quick sketch of a dynamic run with 3 workers over 6 rows:
//
//	counter: 6 → 5 → 4 → 3 → 2 → 1 → 0
//	W0: rows 5, 2        W1: rows 4, 1        W2: rows 3, 0
//
// Any worker may claim any remaining row; only the multiset of claimed
// rows is guaranteed, and it is always {0,…,rows-1} exactly once each.
//
//	go get github.com/katalvlaran/matsum
package matsum
