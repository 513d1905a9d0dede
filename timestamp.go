package chat2pdf

import (
	"math"
	"time"
)

// timestampLayout renders as "2023-11-14, 22:13:20".
const timestampLayout = "2006-01-02, 15:04:05"

// Convertible timestamp bounds in seconds since the Unix epoch
// (year 1 through year 9999). Values outside render as empty rather
// than producing nonsense dates; the bounds also keep the float64 to
// int64 conversion safe.
const (
	minUnixSeconds = -62135596800
	maxUnixSeconds = 253402300799
)

// FormatTimestamp converts seconds since the Unix epoch to a local
// date-time string. Absent (nil), non-finite, or out-of-range values
// yield an empty string; formatting never fails document generation.
func FormatTimestamp(ts *float64) string {
	if ts == nil {
		return ""
	}
	v := *ts
	if math.IsNaN(v) || v < minUnixSeconds || v > maxUnixSeconds {
		return ""
	}

	sec, frac := math.Modf(v)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second))).Local()
	return t.Format(timestampLayout)
}
