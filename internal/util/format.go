package util

import (
	"fmt"
	"time"
)

// FormatMillis renders a script-relative time for traces and the timeline
// dump, e.g. "1250ms"
func FormatMillis(ms int64) string {
	return fmt.Sprintf("%dms", ms)
}

// FormatDuration renders a wall-clock duration compactly: "1.5s", "250ms"
func FormatDuration(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// Pluralize appends "s" for counts other than one
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
