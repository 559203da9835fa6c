package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "XhMM", e.g. "6h30". Negative
// durations carry a leading minus: "-1h15".
func FormatDuration(d time.Duration) string {
	negative := d < 0
	if negative {
		d = -d
	}

	totalMinutes := int(d.Round(time.Minute) / time.Minute)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	result := fmt.Sprintf("%dh%02d", hours, minutes)
	if negative {
		return "-" + result
	}
	return result
}

// HoursToDuration converts a fractional hour count (e.g. 7.5) to a Duration.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
