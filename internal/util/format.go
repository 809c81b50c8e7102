package util

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// displayLocation is the zone used for every formatted timestamp.
var displayLocation = time.Local

// FormatDistance formats a distance in kilometers for display.
// "Starting point", "850 m", "3.4 km", "34 km"
func FormatDistance(km float64) string {
	switch {
	case km == 0:
		return "Starting point"
	case km < 1:
		return fmt.Sprintf("%d m", int(km*1000))
	case km < 10:
		return fmt.Sprintf("%.1f km", km)
	default:
		return fmt.Sprintf("%d km", int(km))
	}
}

// FormatMeters formats a distance in meters using FormatDistance.
func FormatMeters(m float64) string {
	return FormatDistance(m / 1000)
}

// FormatDuration formats minutes spent at a stop.
// "Passing through", "45 min", "1 hr", "2 hrs", "1h 30m"
func FormatDuration(mins int) string {
	switch {
	case mins <= 0:
		return "Passing through"
	case mins < 60:
		return fmt.Sprintf("%d min", mins)
	case mins == 60:
		return "1 hr"
	case mins%60 == 0:
		return fmt.Sprintf("%d hrs", mins/60)
	default:
		return fmt.Sprintf("%dh %dm", mins/60, mins%60)
	}
}

// FormatTime formats an epoch-millisecond timestamp as "03:04 PM".
func FormatTime(ms int64) string {
	return toTime(ms).Format("03:04 PM")
}

// FormatDateTime formats an epoch-millisecond timestamp as "Mon, Jan 2 • 03:04 PM".
func FormatDateTime(ms int64) string {
	return toTime(ms).Format("Mon, Jan 2 • 03:04 PM")
}

// FormatShortDate formats an epoch-millisecond timestamp as "Jan 2, 2006".
func FormatShortDate(ms int64) string {
	return toTime(ms).Format("Jan 2, 2006")
}

// FormatAgo returns a relative description such as "3 weeks ago".
func FormatAgo(ms int64, now time.Time) string {
	if ms <= 0 {
		return "—"
	}
	return humanize.RelTime(toTime(ms), now, "ago", "from now")
}

// FormatCoordinate formats a latitude/longitude pair with five decimals.
func FormatCoordinate(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}

// FormatCount formats a count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func toTime(ms int64) time.Time {
	return time.UnixMilli(ms).In(displayLocation)
}
