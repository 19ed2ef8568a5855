package core

import "golang.org/x/exp/rand"

// RNG is a thin convenience wrapper around x/exp/rand for deterministic seeding.
// It is not safe for concurrent use; owners serialize access.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(uint64(seed)))}
}

// Intn returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.Intn(2) == 1
}
