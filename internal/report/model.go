package report

import "time"

// TimestampLayout is the report's timestamp format, e.g.
// "Jan 01, 2024, 12:00:00 PM".
const TimestampLayout = "Jan 02, 2006, 03:04:05 PM"

// Row is one report sample: running totals, in KB, of compressed and
// uncompressed data written for a named instance.
type Row struct {
	Name         string
	Timestamp    time.Time
	Compressed   float64
	Uncompressed float64
}
