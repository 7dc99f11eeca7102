// Package reduce defines core types, options, and sentinel errors
// for the reduction engine of github.com/katalvlaran/matsum.
package reduce

import (
	"errors"
	"fmt"
)

// Sentinel errors for reduction runs. Callers match them via errors.Is.
var (
	// ErrNilMatrix indicates that a nil work matrix was passed to Reduce.
	ErrNilMatrix = errors.New("reduce: work matrix is nil")

	// ErrWorkerCount indicates a worker count below 1. A degenerate request
	// is rejected rather than treated as an empty run, so a miscomputed
	// caller value surfaces at the call boundary instead of yielding a
	// silent zero result.
	ErrWorkerCount = errors.New("reduce: worker count must be at least 1")

	// ErrBadStrategy indicates a Strategy value outside {Static, Dynamic}.
	ErrBadStrategy = errors.New("reduce: unknown balancing strategy")
)

// Strategy selects how rows are assigned to workers.
type Strategy int

const (
	// Static pre-assigns rows by stride: worker tid takes rows
	// tid, tid+N, tid+2N, … — no shared state, no locking.
	Static Strategy = iota

	// Dynamic hands out rows one at a time from a shared mutex-guarded
	// counter; any worker may claim any remaining row.
	Dynamic
)

// String implements fmt.Stringer for logs and flags.
func (s Strategy) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// DefaultWorkers is the worker count used when the caller does not choose
// one, matching the classic two-thread default of the original exercise.
const DefaultWorkers = 2

// Options configures a reduction run.
//
// Fields:
//   - Workers    — requested worker count; must be ≥ 1 (ErrWorkerCount
//     otherwise). Clamped down to MaxWorkers before launch.
//   - Strategy   — Static or Dynamic row assignment.
//   - MaxWorkers — upper bound on spawned workers; 0 (or negative) means
//     "detected hardware parallelism" (runtime.NumCPU). The clamp never
//     lowers the pool below one worker.
//   - Observer   — sink for worker start/end events; nil means no events.
//     Purely observational: the gross sum never depends on it.
//
// Example:
//
//	opts := reduce.DefaultOptions()
//	opts.Strategy = reduce.Dynamic
//	opts.Workers = 8
//
//	res, err := reduce.Reduce(m, opts)
type Options struct {
	Workers    int
	Strategy   Strategy
	MaxWorkers int
	Observer   Observer
}

// DefaultOptions returns Options with default settings:
// Workers=DefaultWorkers, Strategy=Static, MaxWorkers=0 (hardware bound),
// Observer=nil (no events).
func DefaultOptions() Options {
	return Options{
		Workers:  DefaultWorkers,
		Strategy: Static,
	}
}

// WorkerStat is one worker's finalized tally. During a run the slot is
// owned and mutated exclusively by its worker; it is read only after the
// join barrier.
type WorkerStat struct {
	// ID identifies the worker in [0, workers).
	ID int

	// Rows counts the rows this worker claimed and summed.
	Rows int

	// Sum is the worker's private 64-bit partial sum.
	Sum uint64
}

// Result is the immutable outcome of one reduction run.
type Result struct {
	// GrossSum is the unsigned sum of all per-worker partial sums. It
	// equals the sequential sum of every matrix entry.
	GrossSum uint64

	// RowsProcessed is the total of all per-worker row counts. It equals
	// the matrix row count for every completed run.
	RowsProcessed int

	// PerWorker holds each worker's finalized tally, indexed by worker id.
	PerWorker []WorkerStat
}
