package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var header = []string{"Name", "timestamp", "compressed", "uncompressed"}

// sizes are written with thousands grouping and two decimals, matching the
// report format consumed by the project's visualization tooling.
var sizePrinter = message.NewPrinter(language.English)

// Write encodes rows as report CSV.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Name,
			r.Timestamp.Format(TimestampLayout),
			sizePrinter.Sprintf("%.2f", r.Compressed),
			sizePrinter.Sprintf("%.2f", r.Uncompressed),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read decodes report CSV content.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("reading CSV: empty input")
	}
	if err := checkHeader(recs[0]); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(recs)-1)
	for i, rec := range recs[1:] {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(rec []string) error {
	if len(rec) != len(header) {
		return fmt.Errorf("CSV header has %d columns, want %d", len(rec), len(header))
	}
	for i, h := range header {
		if rec[i] != h {
			return fmt.Errorf("CSV header column %d is %q, want %q", i+1, rec[i], h)
		}
	}
	return nil
}

func parseRecord(rec []string) (Row, error) {
	if len(rec) != len(header) {
		return Row{}, fmt.Errorf("has %d columns, want %d", len(rec), len(header))
	}
	ts, err := time.Parse(TimestampLayout, rec[1])
	if err != nil {
		return Row{}, fmt.Errorf("bad timestamp %q: %w", rec[1], err)
	}
	compressed, err := parseSize(rec[2])
	if err != nil {
		return Row{}, fmt.Errorf("bad compressed value %q: %w", rec[2], err)
	}
	uncompressed, err := parseSize(rec[3])
	if err != nil {
		return Row{}, fmt.Errorf("bad uncompressed value %q: %w", rec[3], err)
	}
	return Row{Name: rec[0], Timestamp: ts, Compressed: compressed, Uncompressed: uncompressed}, nil
}

func parseSize(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
