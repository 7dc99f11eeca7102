package reduce

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matsum/matrix"
)

// Reduce sums every entry of m with a pool of workers under the strategy
// chosen in opts, and reports the gross sum together with per-worker
// tallies.
//
// Stage 1 (Validate): reject nil matrix, Workers < 1, unknown strategy.
// Stage 2 (Prepare): clamp the pool to the parallelism bound; build a
// fresh claim counter when the strategy is Dynamic.
// Stage 3 (Execute): launch one goroutine per worker, each looping
// claim→sum into its private slot until its share is exhausted.
// Stage 4 (Finalize): wait for every worker (hard join barrier), then
// fold the finalized slots into a Result.
//
// The gross sum is independent of both the strategy and the worker count:
// each row of m is summed by exactly one worker exactly once. m must not
// be mutated while Reduce runs; no other restriction applies to sharing it.
//
// A run always completes — there is no cancellation or partial-result path.
// Complexity: O(rows*cols) total work, O(workers) extra memory.
func Reduce(m *matrix.Dense, opts Options) (Result, error) {
	// Validate the caller contract up front
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if opts.Workers < 1 {
		return Result{}, ErrWorkerCount
	}
	if opts.Strategy != Static && opts.Strategy != Dynamic {
		return Result{}, ErrBadStrategy
	}

	// Clamp the pool: never above the parallelism bound, never below 1
	workers := clampWorkers(opts.Workers, opts.MaxWorkers)

	// Nil observer means no events
	obs := opts.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	// The counter is built fresh for every call and shared only by this
	// run's workers, so a stale counter can never leak into a later run.
	rows := m.Rows()
	var counter *rowCounter
	if opts.Strategy == Dynamic {
		counter = newRowCounter(rows)
	}

	// One slot per worker; slot tid is owned exclusively by worker tid
	// until the join barrier below.
	stats := make([]WorkerStat, workers)

	var g errgroup.Group
	for tid := 0; tid < workers; tid++ {
		var claim claimFunc
		if opts.Strategy == Dynamic {
			claim = dynamicClaims(counter)
		} else {
			claim = staticClaims(tid, workers, rows)
		}

		slot := &stats[tid]
		id := tid
		g.Go(func() error {
			runWorker(m, id, claim, slot, obs)

			return nil // the worker loop has no error state
		})
	}

	// Join barrier: no slot is read until every worker has terminated.
	_ = g.Wait()

	return aggregate(stats), nil
}

// runWorker drives one worker from its start notification through claim→sum
// repetition to its end notification. The slot is private to this worker;
// the loop never blocks except inside claim (dynamic mode) and the
// observer's own serialization.
func runWorker(m *matrix.Dense, id int, claim claimFunc, slot *WorkerStat, obs Observer) {
	slot.ID = id
	obs.WorkerStarted(id)

	for {
		row, ok := claim()
		if !ok {
			break // share exhausted; drain to the end notification
		}

		// Summation happens outside any lock. Claimers only yield rows
		// inside the matrix, so RowSum cannot fail here.
		sum, _ := m.RowSum(row)
		slot.Sum += sum
		slot.Rows++
	}

	obs.WorkerFinished(*slot)
}

// aggregate folds finalized worker slots into a Result. Pure function over
// immutable data; callers guarantee the join barrier has passed.
func aggregate(stats []WorkerStat) Result {
	res := Result{PerWorker: stats}
	for _, s := range stats {
		res.GrossSum += s.Sum
		res.RowsProcessed += s.Rows
	}

	return res
}

// clampWorkers bounds the pool size. A non-positive bound means "detected
// hardware parallelism"; the result is always at least 1.
func clampWorkers(requested, bound int) int {
	if bound <= 0 {
		bound = runtime.NumCPU()
	}
	if requested > bound {
		requested = bound
	}
	if requested < 1 {
		requested = 1
	}

	return requested
}
