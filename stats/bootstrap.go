package stats

import "sort"

// percentileCuts is the fixed percentile set reported alongside the
// bootstrap center/CI. The 50th is omitted; it duplicates the default
// median center.
var percentileCuts = [6]float64{5, 10, 25, 75, 90, 95}

// Result is the bootstrap center/CI estimate for one sample array:
// the center statistic, its 95% CI bounds, the sample's raw percentile
// set and its mean.
type Result struct {
	Center      float64
	LowCI       float64
	HighCI      float64
	Percentiles [6]float64
	Mean        float64
}

// sentinelResult is the empty-input value: every field -1.
func sentinelResult() Result {
	r := Result{Center: -1, LowCI: -1, HighCI: -1, Mean: -1}
	for i := range r.Percentiles {
		r.Percentiles[i] = -1
	}
	return r
}

// Bootstrap computes the center statistic selected by WithMode (median by
// default) over sample, plus its 95% bootstrap confidence interval from
// WithIterations resamples-with-replacement (1000 by default), plus the
// sample's raw 5/10/25/75/90/95 percentiles and mean.
//
// Returns ErrEmptySample for a zero-length sample; use BootstrapOrSentinel
// for the -1-sentinel behaviour instead.
func Bootstrap(sample []float64, opts ...Option) (Result, error) {
	if len(sample) == 0 {
		return Result{}, ErrEmptySample
	}
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	center := centerOf(sample, cfg.mode)

	centers := make([]float64, cfg.iterations)
	resample := make([]float64, len(sample))
	n := len(sample)
	for i := 0; i < cfg.iterations; i++ {
		for j := 0; j < n; j++ {
			resample[j] = sample[cfg.rng.Intn(n)]
		}
		centers[i] = centerOf(resample, cfg.mode)
	}
	sort.Float64s(centers)

	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)

	result := Result{
		Center: center,
		LowCI:  percentile(centers, 2.5),
		HighCI: percentile(centers, 97.5),
		Mean:   meanOf(sample),
	}
	for i, p := range percentileCuts {
		result.Percentiles[i] = percentile(sorted, p)
	}
	return result, nil
}

// BootstrapOrSentinel is Bootstrap, but returns the -1-filled sentinel
// Result instead of an error for a zero-length sample. Callers that
// assemble result records wholesale (where a statistic with zero
// successful trials must still produce a value) use this form so the
// sentinel propagates into the record.
func BootstrapOrSentinel(sample []float64, opts ...Option) Result {
	result, err := Bootstrap(sample, opts...)
	if err != nil {
		return sentinelResult()
	}
	return result
}

func centerOf(xs []float64, mode CenterMode) float64 {
	switch mode {
	case CenterMax:
		return maxOf(xs)
	case CenterMean:
		return meanOf(xs)
	default:
		return medianOf(xs)
	}
}

func medianOf(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, v := range xs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func meanOf(xs []float64) float64 {
	var sum float64
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// percentile computes the p-th percentile (0-100) of an already-sorted
// slice using linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
