package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mwrona/comprep/internal/report"
)

// writeReportCSV writes a steady two-instance report: "alpha" accumulates
// 600 KB uncompressed and 300 KB compressed per 5-minute interval, "beta"
// half of that.
func writeReportCSV(t *testing.T, n int) (path string, start time.Time) {
	t.Helper()
	start = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	var rows []report.Row
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * 5 * time.Minute)
		rows = append(rows,
			report.Row{Name: "alpha", Timestamp: ts, Uncompressed: float64(i+1) * 600, Compressed: float64(i+1) * 300},
			report.Row{Name: "beta", Timestamp: ts, Uncompressed: float64(i+1) * 300, Compressed: float64(i+1) * 150},
		)
	}

	path = filepath.Join(t.TempDir(), "report.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := report.Write(f, rows); err != nil {
		t.Fatal(err)
	}
	return path, start
}

func TestReport_jsonSummary(t *testing.T) {
	path, start := writeReportCSV(t, 10)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", path, "--name", "alpha", "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	var sum report.Summary
	if err := json.Unmarshal(buf.Bytes(), &sum); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if sum.Name != "alpha" {
		t.Errorf("name = %q, want %q", sum.Name, "alpha")
	}
	if sum.Rows != 10 {
		t.Errorf("rows = %d, want 10", sum.Rows)
	}
	if !sum.Start.Equal(start) {
		t.Errorf("start = %v, want %v", sum.Start, start)
	}
	if sum.TotalUncompressed != 6000 {
		t.Errorf("total uncompressed = %g, want 6000", sum.TotalUncompressed)
	}
	// Steady accumulation: 600 KB per 5 min is 120 KB/min, ratio 0.5.
	if math.Abs(sum.UncompressedRate.Mean-120) > 1e-9 {
		t.Errorf("uncompressed rate mean = %g, want 120", sum.UncompressedRate.Mean)
	}
	if math.Abs(sum.Ratio.Mean-0.5) > 1e-9 {
		t.Errorf("ratio mean = %g, want 0.5", sum.Ratio.Mean)
	}
}

func TestReport_table(t *testing.T) {
	path, _ := writeReportCSV(t, 6)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"report", path, "--name", "beta"})
	if err := root.Execute(); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"beta", "total uncompressed", "compression ratio", "KB/min"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReport_timeWindow(t *testing.T) {
	path, start := writeReportCSV(t, 10)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{
		"report", path,
		"--name", "alpha",
		"--start", start.Add(10 * time.Minute).Format(report.TimestampLayout),
		"--end", start.Add(30 * time.Minute).Format(report.TimestampLayout),
		"--json",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	var sum report.Summary
	if err := json.Unmarshal(buf.Bytes(), &sum); err != nil {
		t.Fatal(err)
	}
	// Inclusive window: rows at +10, +15, +20, +25, +30 minutes.
	if sum.Rows != 5 {
		t.Errorf("rows = %d, want 5", sum.Rows)
	}
}

func TestReport_unknownName(t *testing.T) {
	path, _ := writeReportCSV(t, 4)

	root := newRootCmd()
	root.SetArgs([]string{"report", path, "--name", "gamma"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown instance name")
	}
}

func TestReport_badTimestampFlag(t *testing.T) {
	path, _ := writeReportCSV(t, 4)

	root := newRootCmd()
	root.SetArgs([]string{"report", path, "--name", "alpha", "--start", "2024-03-01"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for malformed --start")
	}
	if !strings.Contains(err.Error(), report.TimestampLayout) {
		t.Errorf("error should show the expected format, got: %v", err)
	}
}
