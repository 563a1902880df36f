// Package selector picks one layer at random from a candidate pool while
// avoiding maps that appeared too recently in the rotation.
package selector

import (
	"math/rand"
	"time"

	"github.com/bsubei/squadrot/internal/domain/layer"
)

// Default selection configuration constants.
const (
	// DefaultMaxAttempts bounds the retry loop before a pick degrades to
	// best effort.
	DefaultMaxAttempts = 100
	// DefaultMinDistance is how many trailing slots a map must stay out of.
	DefaultMinDistance = 2
)

// Selector draws layers uniformly at random with bounded recency retries.
type Selector struct {
	rng         *rand.Rand
	maxAttempts int
	minDistance int
}

// New creates a Selector with configuration options. Without WithSeed or
// WithRand the selector is time-seeded.
func New(opts ...Option) *Selector {
	s := &Selector{
		maxAttempts: DefaultMaxAttempts,
		minDistance: DefaultMinDistance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // shuffle quality randomness, not crypto
	}
	return s
}

// Pick returns one random layer from pool whose map does not appear in the
// trailing recency window of rotation. When every attempt within the budget
// collides it degrades to best effort: the last candidate is returned with
// degraded=true instead of failing the run. An empty pool is a caller bug
// and returns ErrEmptyPool.
func (s *Selector) Pick(pool []layer.Layer, rotation []layer.Layer) (chosen layer.Layer, degraded bool, err error) {
	if len(pool) == 0 {
		return layer.Layer{}, false, ErrEmptyPool
	}

	window := recencyWindow(rotation, s.minDistance)

	var candidate layer.Layer
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		candidate = pool[s.rng.Intn(len(pool))]
		if !mapInWindow(candidate, window) {
			return candidate, false, nil
		}
	}
	return candidate, true, nil
}

// recencyWindow returns the trailing slots of the rotation the next map must
// avoid. The distance clamps to [1, len(rotation)]; a zero or oversized
// configured distance is corrected rather than failing the run.
func recencyWindow(rotation []layer.Layer, distance int) []layer.Layer {
	if len(rotation) == 0 {
		return nil
	}
	if distance < 1 {
		distance = 1
	}
	if distance > len(rotation) {
		distance = len(rotation)
	}
	return rotation[len(rotation)-distance:]
}

func mapInWindow(candidate layer.Layer, window []layer.Layer) bool {
	for _, prev := range window {
		if candidate.Map() == prev.Map() {
			return true
		}
	}
	return false
}
