// Package report generates and summarizes compression report CSVs: running
// totals of compressed and uncompressed data per instance, sampled at a
// fixed interval. Generation is scenario-driven and deterministic under a
// seed; analysis differentiates the totals back into rates.
package report
