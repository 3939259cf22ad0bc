// Package stats computes bootstrap center/confidence-interval estimates
// over a sample array, the statistical backbone of every reported metric
// in an experiment's result object.
//
// Bootstrap resamples with replacement `iterations` times (default
// 1000), takes the chosen center statistic of each resample, and reports
// the 2.5th/97.5th percentile of the resample centers as the 95%
// confidence interval. Percentile computation uses linear interpolation
// between closest ranks. RNG state is threaded via WithSeed/WithRand so
// aggregation is reproducible.
package stats
