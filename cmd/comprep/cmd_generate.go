package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/report"
	"github.com/mwrona/comprep/internal/ui"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic compression report CSV",
		RunE:  runGenerate,
	}
	cmd.Flags().String("scenario", "", "Scenario YAML file (default: built-in 16h scenario)")
	cmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
	cmd.Flags().String("name", "", "Override the instance name")
	cmd.Flags().Int64("seed", -1, "Override the random seed")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	outPath, _ := cmd.Flags().GetString("out")
	name, _ := cmd.Flags().GetString("name")
	seed, _ := cmd.Flags().GetInt64("seed")

	s := report.Default()
	if scenarioPath != "" {
		var err error
		s, err = report.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
	}
	if name != "" {
		s.Name = name
	}
	if seed >= 0 {
		s.Seed = seed
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(s.Periods))
	rows, ratios := report.Generate(s, time.Now())

	offset := 0
	for i, p := range s.Periods {
		offset += s.Intervals(p)
		progress.Done(fmt.Sprintf("period %d: %gh @ %g KB/s (%d rows)", i+1, p.Hours, p.RateKBps, offset))
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" && outPath != "-" {
		f, err := os.Create(outPath) //nolint:gosec // user-provided output path
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	if err := report.Write(w, rows); err != nil {
		return err
	}

	st := report.SeriesStats(ratios)
	progress.Log("Compression ratio across %d intervals: min %.4f, max %.4f, mean %.4f (base %g)",
		len(ratios), st.Min, st.Max, st.Mean, s.BaseRatio)
	if outPath != "" && outPath != "-" {
		progress.Log("Report written to %s (%d rows)", outPath, len(rows))
	}
	return nil
}
