package api

import (
	"strconv"
	"time"
)

// Status is the health classification reported for a data source.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusWarning Status = "warning"
	StatusFailing Status = "failing"
)

// Known reports whether the status is one of the three defined values.
// Anything else came from a newer or misbehaving backend and is counted
// separately rather than dropped.
func (s Status) Known() bool {
	switch s {
	case StatusHealthy, StatusWarning, StatusFailing:
		return true
	}
	return false
}

// Severity classifies an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Source is a monitored data source as returned by GET /data-sources.
type Source struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Status  Status `json:"status"`
	LastRun string `json:"lastRun"`
}

// Alert is a recent data-quality alert as returned by GET /alerts.
type Alert struct {
	ID        int      `json:"id"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	CreatedAt string   `json:"created_at"`
}

// TrendPoint is one sample of the null-rate/freshness time series as
// returned by GET /metrics/null-rate.
type TrendPoint struct {
	Label            string  `json:"t"`
	NullRate         float64 `json:"nullRate"`
	FreshnessMinutes float64 `json:"freshnessMin"`
}

// Health is the backend liveness document from GET /health.
type Health struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// timeLayouts are the timestamp formats the backend has been observed to emit.
// The Python service sends naive ISO timestamps with a literal Z appended, so
// RFC3339 with and without sub-second precision both occur.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime parses a backend timestamp string.
// Returns the zero time and false when the value is malformed.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClock renders a backend timestamp as a short HH:MM clock label,
// or "unknown" when the value cannot be parsed. Rendering must never fail
// on malformed upstream data.
func FormatClock(s string) string {
	t, ok := ParseTime(s)
	if !ok {
		return "unknown"
	}
	return t.Format("15:04")
}

// FormatAge renders a backend timestamp as a rough relative age ("3m ago"),
// or "unknown" when the value cannot be parsed.
func FormatAge(s string, now time.Time) string {
	t, ok := ParseTime(s)
	if !ok {
		return "unknown"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return formatUnits(int(d.Minutes()), "m")
	case d < 24*time.Hour:
		return formatUnits(int(d.Hours()), "h")
	default:
		return formatUnits(int(d.Hours()/24), "d")
	}
}

func formatUnits(n int, unit string) string {
	if n < 1 {
		n = 1
	}
	return strconv.Itoa(n) + unit + " ago"
}
