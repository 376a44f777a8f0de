package draftorder

import (
	"math/rand"
	"time"
)

// Source produces values in [0, 1). It is the injected randomness for
// Shuffle: tests pass a seeded source, production code a time-seeded one.
type Source func() float64

// NewSeededSource returns a deterministic linear-congruential Source. Two
// sources built from the same seed produce identical sequences, so shuffles
// are reproducible across runs.
func NewSeededSource(seed int64) Source {
	s := seed
	return func() float64 {
		s = (s*1103515245 + 12345) & 0x7fffffff
		return float64(s) / float64(0x7fffffff)
	}
}

// NewRandomSource returns a Source backed by math/rand seeded once from the
// wall clock.
func NewRandomSource() Source {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return rng.Float64
}
