package reduce

// claimFunc yields the next row index for one worker, or ok=false once the
// worker's share of the matrix is exhausted. Each worker holds its own
// claimFunc; the two strategies differ only in how this function is built.
type claimFunc func() (row int, ok bool)

// staticClaims builds the lock-free claimer of the static strategy: worker
// tid walks rows tid, tid+workers, tid+2·workers, … strictly ascending,
// computed purely from its own id. Workers with tid ≥ rows claim nothing
// and finish immediately with zero rows; that is not an error.
// Complexity: O(1) per claim, zero synchronization.
func staticClaims(tid, workers, rows int) claimFunc {
	next := tid // private cursor, never shared

	return func() (int, bool) {
		if next >= rows {
			return 0, false
		}
		row := next
		next += workers

		return row, true
	}
}

// dynamicClaims builds the claimer of the dynamic strategy: every call is
// an atomic pull from the shared counter. No ordering is guaranteed across
// workers — any worker may claim any remaining row, which is exactly what
// lets a fast worker absorb more of the load.
func dynamicClaims(c *rowCounter) claimFunc {
	return c.claim
}
