package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlens/tlens/internal/api"
)

func TestViewWhileInitializing(t *testing.T) {
	m := NewModel(newMockState(1), time.Second)

	out := m.View()
	assert.Contains(t, out, "loading dashboard")
	assert.NotContains(t, out, "Data Sources", "panels are hidden until the initial load finishes")
}

func TestViewAfterLoad(t *testing.T) {
	m := loadedModel(t, 1)

	out := m.View()
	assert.Contains(t, out, "tlens")
	assert.Contains(t, out, "mock mode")
	assert.Contains(t, out, "Data Sources")
	assert.Contains(t, out, "Orders DB")
	assert.Contains(t, out, "Recent Alerts")
	assert.Contains(t, out, "Null Rate / Freshness")
	assert.Contains(t, out, "healthy")
	assert.Contains(t, out, "q quit")
}

func TestViewEmptyCollections(t *testing.T) {
	s := NewState(Options{Mode: ModeRemote, Backend: &stubBackend{}})
	require.NoError(t, s.Initialize(context.Background()))
	m := NewModel(s, time.Second)
	m.initializing = false

	out := m.View()
	assert.Contains(t, out, "no sources")
	assert.Contains(t, out, "no recent alerts")
	assert.Contains(t, out, "no trend data")
	assert.Contains(t, out, "0 healthy")
}

func TestViewLoadErrorRibbon(t *testing.T) {
	m := loadedModel(t, 2)
	m.loadErr = &api.LoadError{Feed: api.FeedAlerts, Cause: assert.AnError}

	out := m.View()
	assert.Contains(t, out, "alerts fetch failed")
	assert.Contains(t, out, "press r to retry")
	assert.Contains(t, out, "Data Sources", "surviving data still renders under the error ribbon")
}

func TestViewMalformedTimestampRendersUnknown(t *testing.T) {
	s := NewState(Options{Mode: ModeMock})
	s.applySources([]api.Source{
		{ID: "1", Name: "Orders DB", Type: "postgres", Status: api.StatusHealthy, LastRun: "not-a-timestamp"},
	})
	s.applyAlerts([]api.Alert{
		{ID: 1, Severity: api.SeverityHigh, Message: "Orders freshness > 60 min", CreatedAt: ""},
	})
	m := NewModel(s, time.Second)
	m.initializing = false

	out := m.View()
	assert.Contains(t, out, "unknown", "bad timestamps degrade to a placeholder, never a panic")
}

func TestViewUnknownStatusSummary(t *testing.T) {
	s := NewState(Options{Mode: ModeMock})
	s.applySources([]api.Source{
		{ID: "1", Name: "Orders DB", Status: api.Status("degraded"), LastRun: "2026-08-30T11:00:00Z"},
	})
	m := NewModel(s, time.Second)
	m.initializing = false

	out := m.View()
	assert.Contains(t, out, "1 unknown", "unrecognized statuses get their own bucket")
}

func TestViewQuitting(t *testing.T) {
	m := loadedModel(t, 3)
	m.quitting = true

	assert.Empty(t, m.View())
}

func TestViewHelpOverlay(t *testing.T) {
	m := loadedModel(t, 3)
	m.showHelp = true

	out := m.View()
	assert.Contains(t, out, "Keyboard shortcuts")
	assert.NotContains(t, out, "Data Sources")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a-much-...", truncate("a-much-longer-name", 10))
	assert.Equal(t, "abc", truncate("abc", 3))
}
