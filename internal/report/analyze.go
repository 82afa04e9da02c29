package report

import (
	"fmt"
	"time"
)

// Filter selects rows by instance name and an optional time window.
// Zero Start/End leave that side unbounded.
type Filter struct {
	Name  string
	Start time.Time
	End   time.Time
}

// FilterRows returns the rows matching the filter, in input order.
func FilterRows(rows []Row, f Filter) []Row {
	var out []Row
	for _, r := range rows {
		if f.Name != "" && r.Name != f.Name {
			continue
		}
		if !f.Start.IsZero() && r.Timestamp.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && r.Timestamp.After(f.End) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Sample is a per-interval view derived from adjacent rows: write rates in
// KB per minute and the rate-based compression ratio
// (compressed rate / uncompressed rate).
type Sample struct {
	Timestamp        time.Time
	UncompressedRate float64
	CompressedRate   float64
	Ratio            float64
}

// Rates differentiates running totals into per-minute rates. The first row
// has no predecessor and contributes no sample.
func Rates(rows []Row) []Sample {
	if len(rows) < 2 {
		return nil
	}
	samples := make([]Sample, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		dt := rows[i].Timestamp.Sub(rows[i-1].Timestamp).Seconds()
		if dt <= 0 {
			continue
		}
		u := (rows[i].Uncompressed - rows[i-1].Uncompressed) / dt * 60
		c := (rows[i].Compressed - rows[i-1].Compressed) / dt * 60
		s := Sample{Timestamp: rows[i].Timestamp, UncompressedRate: u, CompressedRate: c}
		if u != 0 {
			s.Ratio = c / u
		}
		samples = append(samples, s)
	}
	return samples
}

// Stats holds min/max/mean over a series.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// SeriesStats computes stats over a value series.
func SeriesStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	st := Stats{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
	}
	st.Mean = sum / float64(len(values))
	return st
}

// Summary aggregates a filtered report for display.
type Summary struct {
	Name              string    `json:"name"`
	Rows              int       `json:"rows"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	TotalUncompressed float64   `json:"total_uncompressed_kb"`
	TotalCompressed   float64   `json:"total_compressed_kb"`
	UncompressedRate  Stats     `json:"uncompressed_rate_kb_per_min"`
	CompressedRate    Stats     `json:"compressed_rate_kb_per_min"`
	Ratio             Stats     `json:"compression_ratio"`
}

// Summarize computes a Summary over rows that already passed filtering.
// skipInitial drops the leading rate samples, which are noisy right after
// a report starts.
func Summarize(rows []Row, skipInitial int) (Summary, error) {
	if len(rows) == 0 {
		return Summary{}, fmt.Errorf("no rows to summarize")
	}

	first, last := rows[0], rows[len(rows)-1]
	sum := Summary{
		Name:              first.Name,
		Rows:              len(rows),
		Start:             first.Timestamp,
		End:               last.Timestamp,
		TotalUncompressed: last.Uncompressed,
		TotalCompressed:   last.Compressed,
	}

	samples := Rates(rows)
	if skipInitial > 0 {
		if skipInitial >= len(samples) {
			samples = nil
		} else {
			samples = samples[skipInitial:]
		}
	}
	if len(samples) == 0 {
		return sum, nil
	}

	u := make([]float64, len(samples))
	c := make([]float64, len(samples))
	ratios := make([]float64, len(samples))
	for i, s := range samples {
		u[i] = s.UncompressedRate
		c[i] = s.CompressedRate
		ratios[i] = s.Ratio
	}
	sum.UncompressedRate = SeriesStats(u)
	sum.CompressedRate = SeriesStats(c)
	sum.Ratio = SeriesStats(ratios)
	return sum, nil
}
