package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusKnown(t *testing.T) {
	tests := []struct {
		status Status
		known  bool
	}{
		{StatusHealthy, true},
		{StatusWarning, true},
		{StatusFailing, true},
		{Status("degraded"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.known, tt.status.Known())
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc3339", "2026-08-30T10:00:00Z", true},
		{"rfc3339 with nanos", "2026-08-30T10:00:00.123456Z", true},
		{"naive iso", "2026-08-30T10:00:00", true},
		{"space separated", "2026-08-30 10:00:00", true},
		{"garbage", "not-a-time", false},
		{"empty", "", false},
		{"partial", "2026-08-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseTime(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:05", FormatClock("2026-08-30T10:05:00Z"))
	assert.Equal(t, "unknown", FormatClock("garbage"))
	assert.Equal(t, "unknown", FormatClock(""))
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"seconds ago", "2026-08-30T11:59:40Z", "just now"},
		{"minutes ago", "2026-08-30T11:42:00Z", "18m ago"},
		{"hours ago", "2026-08-30T09:00:00Z", "3h ago"},
		{"days ago", "2026-08-27T12:00:00Z", "3d ago"},
		{"malformed", "yesterday-ish", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAge(tt.input, now))
		})
	}
}
