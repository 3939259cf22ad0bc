// Package config holds the fixed experiment-domain constants: the
// size/sex scaling factor table, the millimetre-per-unit conversion, the
// allowed node-distance and joint-radius domains, and the Monte-Carlo
// sample counts.
package config
