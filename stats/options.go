package stats

import "math/rand"

// CenterMode selects the point statistic bootstrapped by Bootstrap.
type CenterMode int

const (
	CenterMedian CenterMode = iota
	CenterMax
	CenterMean
)

type settings struct {
	mode       CenterMode
	iterations int
	rng        *rand.Rand
}

func defaultSettings() settings {
	return settings{
		mode:       CenterMedian,
		iterations: 1000,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Option configures a Bootstrap call.
type Option func(*settings)

// WithMode selects which statistic (median/max/mean) is bootstrapped.
func WithMode(mode CenterMode) Option {
	return func(s *settings) { s.mode = mode }
}

// WithIterations overrides the resample count (default 1000).
func WithIterations(n int) Option {
	return func(s *settings) { s.iterations = n }
}

// WithRand injects a seeded RNG so resampling is reproducible.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewSource(seed)) }
}
