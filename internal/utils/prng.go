// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so the whole simulation can run from one seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator with the given seed.
// A zero seed is replaced with the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [min, min+span).
func (s *PRNGService) Range(min, span float64) float64 {
	return min + s.rng.Float64()*span
}
