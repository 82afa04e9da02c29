package report

import (
	"math"
	"testing"
	"time"
)

// steadyRows builds rows with a constant uncompressed rate of 600 KB per
// 300s interval (120 KB/min) and a fixed 2:1 compression.
func steadyRows(name string, n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Name:         name,
			Timestamp:    testStart.Add(time.Duration(i) * 300 * time.Second),
			Uncompressed: float64(i+1) * 600,
			Compressed:   float64(i+1) * 300,
		}
	}
	return rows
}

func TestFilterRows_byName(t *testing.T) {
	rows := append(steadyRows("vm-1", 3), steadyRows("vm-2", 2)...)
	got := FilterRows(rows, Filter{Name: "vm-2"})
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Name != "vm-2" {
			t.Errorf("row name = %q, want vm-2", r.Name)
		}
	}
}

func TestFilterRows_timeWindow(t *testing.T) {
	rows := steadyRows("vm-1", 10)
	f := Filter{
		Name:  "vm-1",
		Start: rows[2].Timestamp,
		End:   rows[5].Timestamp,
	}
	got := FilterRows(rows, f)
	if len(got) != 4 {
		t.Fatalf("rows = %d, want 4 (window is inclusive)", len(got))
	}
	if !got[0].Timestamp.Equal(rows[2].Timestamp) || !got[3].Timestamp.Equal(rows[5].Timestamp) {
		t.Error("window bounds not respected")
	}
}

func TestFilterRows_noMatch(t *testing.T) {
	rows := steadyRows("vm-1", 3)
	if got := FilterRows(rows, Filter{Name: "vm-9"}); got != nil {
		t.Errorf("expected no rows, got %d", len(got))
	}
}

func TestRates_steadyInput(t *testing.T) {
	rows := steadyRows("vm-1", 5)
	samples := Rates(rows)
	if len(samples) != 4 {
		t.Fatalf("samples = %d, want 4", len(samples))
	}
	for i, s := range samples {
		if math.Abs(s.UncompressedRate-120) > 1e-9 {
			t.Errorf("sample %d uncompressed rate = %g, want 120", i, s.UncompressedRate)
		}
		if math.Abs(s.CompressedRate-60) > 1e-9 {
			t.Errorf("sample %d compressed rate = %g, want 60", i, s.CompressedRate)
		}
		if math.Abs(s.Ratio-0.5) > 1e-9 {
			t.Errorf("sample %d ratio = %g, want 0.5", i, s.Ratio)
		}
	}
}

func TestRates_tooFewRows(t *testing.T) {
	if got := Rates(steadyRows("vm-1", 1)); got != nil {
		t.Errorf("expected nil, got %d samples", len(got))
	}
}

func TestSummarize(t *testing.T) {
	rows := steadyRows("vm-1", 10)
	sum, err := Summarize(rows, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Name != "vm-1" || sum.Rows != 10 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.TotalUncompressed != 6000 || sum.TotalCompressed != 3000 {
		t.Errorf("totals = %g/%g, want 6000/3000", sum.TotalUncompressed, sum.TotalCompressed)
	}
	if math.Abs(sum.Ratio.Mean-0.5) > 1e-9 {
		t.Errorf("ratio mean = %g, want 0.5", sum.Ratio.Mean)
	}
	if math.Abs(sum.UncompressedRate.Min-120) > 1e-9 {
		t.Errorf("rate min = %g, want 120", sum.UncompressedRate.Min)
	}
}

func TestSummarize_skipConsumesAllSamples(t *testing.T) {
	rows := steadyRows("vm-1", 3)
	sum, err := Summarize(rows, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Totals still come from the rows; rate stats have no surviving
	// samples and stay zero.
	if sum.Rows != 3 || sum.TotalUncompressed != 1800 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.UncompressedRate != (Stats{}) || sum.Ratio != (Stats{}) {
		t.Errorf("expected zero stats, got rate=%+v ratio=%+v", sum.UncompressedRate, sum.Ratio)
	}
}

func TestSummarize_empty(t *testing.T) {
	if _, err := Summarize(nil, 0); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSummarize_generatedNoCompressionWindow(t *testing.T) {
	s := smallScenario()
	rows, _ := Generate(s, testStart)

	// Restrict to the middle no-compression period; the rate-based ratio
	// should sit at 1.0 except for the boundary sample.
	start := rows[13].Timestamp
	end := rows[17].Timestamp
	window := FilterRows(rows, Filter{Name: s.Name, Start: start, End: end})
	sum, err := Summarize(window, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sum.Ratio.Mean-1.0) > 1e-6 {
		t.Errorf("ratio mean in no-compression window = %g, want 1.0", sum.Ratio.Mean)
	}
}
