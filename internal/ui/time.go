package ui

import (
	"fmt"
	"time"
)

// TimestampLayout is how absolute times are printed.
const TimestampLayout = "2006-01-02 15:04"

// FormatTimestamp prints t in local time, or "-" for the zero time.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(TimestampLayout)
}

// FormatRelative describes then relative to now, like "in 2d" or "3h ago".
func FormatRelative(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	if then.After(now) {
		return "in " + FormatDurationShort(then.Sub(now))
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
