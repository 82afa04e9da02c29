package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/report"
	"github.com/mwrona/comprep/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file.csv>",
		Short: "Summarize a compression report",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
	cmd.Flags().StringP("name", "n", "", "Instance name to filter on (required)")
	cmd.Flags().StringP("start", "s", "", `Start timestamp, e.g. "Jan 01, 2024, 12:00:00 PM"`)
	cmd.Flags().StringP("end", "e", "", "End timestamp (same format)")
	cmd.Flags().Int("skip-initial", 2, "Leading rate samples to drop as noise")
	cmd.Flags().Bool("json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")
	skipInitial, _ := cmd.Flags().GetInt("skip-initial")
	asJSON, _ := cmd.Flags().GetBool("json")

	f, err := os.Open(args[0]) //nolint:gosec // user-provided report path
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := report.Read(f)
	if err != nil {
		return err
	}

	filter := report.Filter{Name: name}
	if filter.Start, err = parseTimestampFlag(startStr, "start"); err != nil {
		return err
	}
	if filter.End, err = parseTimestampFlag(endStr, "end"); err != nil {
		return err
	}

	filtered := report.FilterRows(rows, filter)
	if len(filtered) == 0 {
		return fmt.Errorf("no rows match name %q in the given time range", name)
	}

	sum, err := report.Summarize(filtered, skipInitial)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	tbl := ui.NewPlain(out)
	tbl.Row("name", sum.Name)
	tbl.Row("rows", sum.Rows)
	tbl.Row("window", fmt.Sprintf("%s to %s",
		sum.Start.Format(report.TimestampLayout), sum.End.Format(report.TimestampLayout)))
	tbl.Row("total uncompressed", fmt.Sprintf("%.2f KB", sum.TotalUncompressed))
	tbl.Row("total compressed", fmt.Sprintf("%.2f KB", sum.TotalCompressed))
	tbl.Row("uncompressed rate", statsLine(sum.UncompressedRate, "KB/min"))
	tbl.Row("compressed rate", statsLine(sum.CompressedRate, "KB/min"))
	tbl.Row("compression ratio", statsLine(sum.Ratio, ""))
	return tbl.Flush()
}

func statsLine(st report.Stats, unit string) string {
	s := fmt.Sprintf("min %.4f, max %.4f, mean %.4f", st.Min, st.Max, st.Mean)
	if unit != "" {
		s += " " + unit
	}
	return s
}

func parseTimestampFlag(v, label string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(report.TimestampLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s: expected format %q: %w", label, report.TimestampLayout, err)
	}
	return t, nil
}
