package report

import (
	"math/rand"
	"time"
)

// Generate produces the scenario's report rows starting at start. The
// output is deterministic for a given seed.
//
// The smoothed compression-ratio series is one continuous sequence across
// every compressing interval; no-compression periods splice in a fixed 1.0
// without consuming from it, so disabling compression mid-run does not
// shift the ratios of later periods.
func Generate(s Scenario, start time.Time) ([]Row, []float64) {
	rng := rand.New(rand.NewSource(s.Seed)) //nolint:gosec // synthetic data, reproducibility wanted

	smoothedCount := 0
	for _, p := range s.Periods {
		if !p.NoCompression {
			smoothedCount += s.Intervals(p)
		}
	}
	smoothed := smoothedRatios(rng, smoothedCount, s.BaseRatio, s.RatioRandomness, s.Smoothing)

	ratios := make([]float64, 0, s.TotalIntervals())
	next := 0
	for _, p := range s.Periods {
		n := s.Intervals(p)
		if p.NoCompression {
			for range n {
				ratios = append(ratios, 1.0)
			}
			continue
		}
		ratios = append(ratios, smoothed[next:next+n]...)
		next += n
	}

	rows := make([]Row, 0, len(ratios))
	interval := time.Duration(s.IntervalSeconds) * time.Second
	var totalUncompressed, totalCompressed float64
	i := 0
	for _, p := range s.Periods {
		base := p.RateKBps * float64(s.IntervalSeconds)
		for range s.Intervals(p) {
			noise := uniform(rng, -s.DataRandomness, s.DataRandomness)
			uncompressed := base * (1 + noise)
			compressed := uncompressed / ratios[i]

			totalUncompressed += uncompressed
			totalCompressed += compressed
			rows = append(rows, Row{
				Name:         s.Name,
				Timestamp:    start.Add(time.Duration(i) * interval),
				Compressed:   totalCompressed,
				Uncompressed: totalUncompressed,
			})
			i++
		}
	}
	return rows, ratios
}

// smoothedRatios generates a time-correlated ratio series: each value
// blends the previous one with a fresh randomized ratio, so transitions
// stay gradual.
func smoothedRatios(rng *rand.Rand, n int, base, randomness, smoothing float64) []float64 {
	ratios := make([]float64, 0, n)
	prev := base
	for i := range n {
		factor := uniform(rng, 1-randomness, 1+randomness)
		ratio := base * factor
		if i > 0 {
			ratio = smoothing*prev + (1-smoothing)*base*factor
		}
		ratios = append(ratios, ratio)
		prev = ratio
	}
	return ratios
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
