package reduce

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Observer consumes worker lifecycle events. Events are observational
// only: the reduction result never depends on what an Observer does, and
// a slow Observer can delay workers but not corrupt the sum.
//
// Implementations must be safe for concurrent use; every worker calls
// both methods from its own goroutine.
type Observer interface {
	// WorkerStarted fires once per worker, before its first claim.
	WorkerStarted(id int)

	// WorkerFinished fires once per worker with its finalized tally,
	// after its last claim and before the worker terminates.
	WorkerFinished(stat WorkerStat)
}

// NopObserver discards all events. It is the Observer used when
// Options.Observer is nil.
type NopObserver struct{}

// WorkerStarted discards the event.
func (NopObserver) WorkerStarted(int) {}

// WorkerFinished discards the event.
func (NopObserver) WorkerFinished(WorkerStat) {}

// WriterObserver prints human-readable start/end lines to one io.Writer.
// A dedicated mutex serializes whole lines so concurrent workers never
// interleave output. The mutex is deliberately separate from the claim
// counter's lock: a write may be slow, while claims must stay O(1).
type WriterObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterObserver returns a WriterObserver emitting to w.
func NewWriterObserver(w io.Writer) *WriterObserver {
	return &WriterObserver{w: w}
}

// WorkerStarted prints a single start line under the output lock.
func (o *WriterObserver) WorkerStarted(id int) {
	o.mu.Lock()
	fmt.Fprintf(o.w, "Worker %d starting\n", id)
	o.mu.Unlock()
}

// WorkerFinished prints a single end line with the final tally under the
// output lock.
func (o *WriterObserver) WorkerFinished(stat WorkerStat) {
	o.mu.Lock()
	fmt.Fprintf(o.w, "Worker %d ending rows=%d sum=%d\n", stat.ID, stat.Rows, stat.Sum)
	o.mu.Unlock()
}

// ZapObserver emits structured worker events through a zap logger.
// zap serializes its own writes, so no extra lock is needed here.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver returns a ZapObserver emitting through log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

// WorkerStarted logs the start event with the worker id.
func (o *ZapObserver) WorkerStarted(id int) {
	o.log.Info("worker starting", zap.Int("worker_id", id))
}

// WorkerFinished logs the end event with the worker's finalized tally.
func (o *ZapObserver) WorkerFinished(stat WorkerStat) {
	o.log.Info("worker ending",
		zap.Int("worker_id", stat.ID),
		zap.Int("rows_processed", stat.Rows),
		zap.Uint64("partial_sum", stat.Sum),
	)
}
