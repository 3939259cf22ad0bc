// Package garment builds the size/sex-adjusted geometric model of a
// clothing item: every part's outline scaled to millimetres, its cached
// area, area-proportional random sampling of sinks and sensor locations,
// one random tessellation seed per part, and opposing-segment resolution
// across joints.
//
// Random-number state is threaded explicitly via functional options
// (WithSeed/WithRand) so two garments built with the same seed sample
// identically; nothing in this package touches a global RNG.
package garment
