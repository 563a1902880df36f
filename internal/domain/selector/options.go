package selector

import "math/rand"

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithSeed makes selection deterministic for a given seed.
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible rotations
	}
}

// WithRand sets the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithMaxAttempts bounds the recency retry loop.
func WithMaxAttempts(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithMinDistance sets how many trailing rotation slots a map must avoid.
// The value is clamped per pick against the current rotation length.
func WithMinDistance(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.minDistance = n
		}
	}
}
