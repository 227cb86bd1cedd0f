package output

import (
	"fmt"
	"time"
)

// FormatOffset describes d relative to now, e.g. "3h ago" or "in 9d".
func FormatOffset(d time.Duration) string {
	switch {
	case d == 0:
		return "now"
	case d < 0:
		return formatDuration(-d) + " ago"
	default:
		return "in " + formatDuration(d)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}

	if d < 24*time.Hour {
		hours := int(d.Hours())
		mins := int(d.Minutes()) % 60

		if mins == 0 {
			return fmt.Sprintf("%dh", hours)
		}

		return fmt.Sprintf("%dh%dm", hours, mins)
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24

	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}

	return fmt.Sprintf("%dd%dh", days, hours)
}
