package apusim

import (
	"errors"
	"math/rand"
	"time"
)

// TimedRandom resamples a value from a fixed candidate set at a fixed time
// interval, emulating instrument noise on an otherwise stable reading.
type TimedRandom struct {
	interval   time.Duration
	candidates []float64

	// internal state
	sinceLast time.Duration
	current   float64
}

// NewTimedRandom returns a sampler over the given candidates which
// resamples every interval. The first candidate is selected until the first
// resample occurs. Errors on an empty candidate set.
func NewTimedRandom(interval time.Duration, candidates []float64) (*TimedRandom, error) {
	if len(candidates) == 0 {
		return nil, errors.New("candidates must not be empty")
	}

	cs := make([]float64, len(candidates))
	copy(cs, candidates)

	return &TimedRandom{
		interval:   interval,
		candidates: cs,
		current:    cs[0],
	}, nil
}

// Update accumulates elapsed time and selects a new candidate by uniform
// random index once the interval has passed, resetting the accumulator.
// Overshooting the interval within one tick still triggers only a single
// resample.
func (t *TimedRandom) Update(r *rand.Rand, delta time.Duration) {
	t.sinceLast += delta
	if t.sinceLast >= t.interval {
		t.current = t.candidates[r.Intn(len(t.candidates))]
		t.sinceLast = 0
	}
}

// CurrentValue returns the last selected candidate without side effects.
func (t *TimedRandom) CurrentValue() float64 {
	return t.current
}
