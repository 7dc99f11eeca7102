package matrix

import (
	"math/rand"
)

// DefaultSeed matches the classic exercise this engine descends from,
// which seeded its generator with 0x1234 before filling the work matrix.
const DefaultSeed int64 = 0x1234

// Random creates an r×c Dense matrix populated with pseudo-random
// non-negative int32 values drawn from a generator seeded with seed.
// The same (rows, cols, seed) triple always produces the same matrix,
// which keeps reduction runs reproducible across processes.
// Stage 1 (Validate): delegate shape validation to NewDense.
// Stage 2 (Execute): fill every element from a private rand.Rand.
// Complexity: O(r*c) time and memory.
func Random(rows, cols int, seed int64) (*Dense, error) {
	// Allocate the zeroed matrix, validating dimensions
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	// Private generator; the global source is never touched
	rng := rand.New(rand.NewSource(seed))
	for i := range m.data {
		m.data[i] = rng.Int31() // non-negative by construction
	}

	return m, nil
}
