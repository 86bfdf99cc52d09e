// Package random provides the pseudo-random sources injected into generators.
package random

import (
	"math/rand"
	"sync"
	"time"

	"wozmarket/config"
	"wozmarket/internal/domain/service"
)

// Source is a mutex-guarded *rand.Rand, so a debounce timer and the caller
// can share one source.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ service.RandomSource = (*Source)(nil)

// New returns a source seeded with seed; seed 0 seeds from the clock.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewFromConfig builds the source from catalog.seed.
func NewFromConfig(cfg *config.Config) service.RandomSource {
	var seed int64
	if cfg.Catalog != nil {
		seed = cfg.Catalog.Seed
	}

	return New(seed)
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

// Float64 returns a uniform float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}
