// Package format holds the small display formatters shared by the CLI and the
// details table.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatMillis renders d as whole milliseconds, truncated, with an "ms"
// suffix. Negative durations are clamped to zero.
func FormatMillis(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// FormatSpeedup renders how many times faster run is than baseline, e.g.
// "3.42x". It returns "-" when either duration is not positive.
func FormatSpeedup(baseline, run time.Duration) string {
	if baseline <= 0 || run <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(baseline)/float64(run))
}
