package reduce

import "sync"

// rowCounter is the shared work counter of the dynamic strategy: a
// monotonically decreasing count of unclaimed rows behind a dedicated
// mutex. It must never be read or written outside claim().
//
// A counter serves exactly one run. Reduce constructs a fresh one per
// call, so reuse across runs cannot occur.
type rowCounter struct {
	mu        sync.Mutex
	remaining int // rows not yet claimed; counts down to 0
}

// newRowCounter returns a counter over row indices [0, rows).
func newRowCounter(rows int) *rowCounter {
	return &rowCounter{remaining: rows}
}

// claim atomically hands out one remaining row index, descending from
// rows-1 to 0, or reports ok=false once every row has been claimed.
// The lock covers only the read-decrement-read sequence; summing the
// claimed row is the caller's business and happens outside the lock.
// Across all claimants the yielded indices form the exact set
// {0, …, rows-1} with no repeats and no omissions.
// Complexity: O(1) per call.
func (c *rowCounter) claim() (row int, ok bool) {
	c.mu.Lock()
	if c.remaining == 0 {
		c.mu.Unlock()

		return 0, false
	}
	c.remaining--
	row = c.remaining
	c.mu.Unlock()

	return row, true
}
