// Package format provides display formatting helpers shared by the CLI
// and TUI presentation layers.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders a duration as fractional seconds, the unit the
// per-strategy report uses.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f sec", d.Seconds())
}

// FormatCount renders a non-negative integer with comma thousands
// separators (10000000 -> "10,000,000").
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return FormatCount(n/1000) + fmt.Sprintf(",%03d", n%1000)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// FormatSpeedup renders the ratio of a baseline duration to a measured
// duration ("2.41x"). A zero measurement yields "n/a" rather than an
// infinity.
func FormatSpeedup(baseline, measured time.Duration) string {
	if measured <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", float64(baseline)/float64(measured))
}
