package allocator

import "math/rand"

// Source supplies the random draws the engines make. *rand.Rand satisfies it.
// Intn must return a value in [0, n) and is only called with n > 0.
type Source interface {
	Intn(n int) int
}

// NewSource returns a math/rand source seeded with seed. Two runs over the
// same rosters with the same seed produce identical schedules.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
