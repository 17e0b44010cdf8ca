package core

import (
	"math/rand"
	"time"
)

// Ms converts a millisecond count to a Duration. Content durations are
// stored as milliseconds to match the host UI's tick units.
func Ms(ms int64) time.Duration { return time.Duration(ms) * time.Millisecond }

// =============================================================================
// RAND - Injected randomness source
// =============================================================================

// Rand is the only randomness the engine ever sees. Transforms take it as an
// input so a tick or action is a pure function of (state, input, rand) and
// test runs are reproducible from a seed.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

// NewRand returns a seeded Rand backed by math/rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
