package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km   float64
		want string
	}{
		{0, "Starting point"},
		{0.25, "250 m"},
		{0.5, "500 m"},
		{1, "1.0 km"},
		{3.4, "3.4 km"},
		{9.96, "10.0 km"},
		{10, "10 km"},
		{34.6, "34 km"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.km), "km=%v", tt.km)
	}
}

func TestFormatMeters(t *testing.T) {
	assert.Equal(t, "450 m", FormatMeters(450))
	assert.Equal(t, "2.5 km", FormatMeters(2500))
	assert.Equal(t, "Starting point", FormatMeters(0))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "Passing through"},
		{5, "5 min"},
		{59, "59 min"},
		{60, "1 hr"},
		{75, "1h 15m"},
		{120, "2 hrs"},
		{135, "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.mins), "mins=%d", tt.mins)
	}
}

func TestFormatTimestamps(t *testing.T) {
	prev := displayLocation
	displayLocation = time.UTC
	t.Cleanup(func() { displayLocation = prev })

	// 2025-01-04 06:20:00 UTC
	ms := int64(1735971600000)
	assert.Equal(t, "06:20 AM", FormatTime(ms))
	assert.Equal(t, "Sat, Jan 4 • 06:20 AM", FormatDateTime(ms))
	assert.Equal(t, "Jan 4, 2025", FormatShortDate(ms))
}

func TestFormatAgo(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	then := now.Add(-3 * 24 * time.Hour).UnixMilli()
	assert.Equal(t, "3 days ago", FormatAgo(then, now))
	assert.Equal(t, "—", FormatAgo(0, now))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "Parant...", TruncateString("Paranthe Wali Gali", 9))
	assert.Equal(t, "Pa", TruncateString("Paranthe", 2))
	assert.Equal(t, "Resort –...", TruncateString("Resort – Candolim", 11))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,234", FormatCount(1234))
}
