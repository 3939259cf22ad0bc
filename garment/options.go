package garment

import "math/rand"

// Option customizes a Garment before it is built.
type Option func(*settings)

type settings struct {
	sex               *string
	size              string
	sink              *Sink
	seeds             []Seed
	precisionDecimals int
	rng               *rand.Rand
	verbose           bool
}

func defaultSettings() settings {
	return settings{size: "L", precisionDecimals: 6, rng: rand.New(rand.NewSource(1))}
}

// WithSex overrides sex derivation from the garment's authored name.
func WithSex(sex string) Option {
	return func(s *settings) { s.sex = &sex }
}

// WithSize selects a size from the factor table (default "L").
func WithSize(size string) Option {
	return func(s *settings) { s.size = size }
}

// WithSink fixes the sink instead of sampling one randomly.
func WithSink(sink Sink) Option {
	return func(s *settings) { s.sink = &sink }
}

// WithSeeds fixes the per-part seeds instead of sampling them randomly.
func WithSeeds(seeds []Seed) Option {
	return func(s *settings) { s.seeds = seeds }
}

// WithPrecisionDecimals overrides the segment-matching tolerance decimals
// (default 6, matching the vertex-key precision).
func WithPrecisionDecimals(decimals int) Option {
	return func(s *settings) { s.precisionDecimals = decimals }
}

// WithRand provides an explicit RNG for sink/seed/point sampling. Panics
// on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("garment: WithRand(nil)")
	}
	return func(s *settings) { s.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(s *settings) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithVerbose enables warning-level logging for ambiguous opposing-joint
// resolution and sex-derivation fallback.
func WithVerbose(v bool) Option {
	return func(s *settings) { s.verbose = v }
}
