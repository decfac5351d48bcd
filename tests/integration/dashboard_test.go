package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustlens/tlens/internal/api"
	"github.com/trustlens/tlens/internal/config"
	"github.com/trustlens/tlens/internal/dashboard"
)

// newAPIServer serves a minimal TrustLens API for end-to-end runs.
func newAPIServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"service":"trustlens-api","time":"2026-08-30T12:00:00Z"}`))
	})
	mux.HandleFunc("/data-sources", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Orders DB","type":"postgres","status":"healthy","lastRun":"2026-08-30T11:55:00Z"},
			{"id":"2","name":"Users API","type":"api","status":"warning","lastRun":"2026-08-30T11:40:00Z"},
			{"id":"3","name":"Inventory S3","type":"s3","status":"failing","lastRun":"bad-timestamp"}
		]`))
	})
	mux.HandleFunc("/alerts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"severity":"high","message":"Inventory sync delayed","created_at":"2026-08-30T11:50:00Z"}
		]`))
	})
	mux.HandleFunc("/metrics/null-rate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"t":"11:58","nullRate":4.2,"freshnessMin":12},
			{"t":"11:59","nullRate":4.9,"freshnessMin":14},
			{"t":"12:00","nullRate":5.1,"freshnessMin":15}
		]`))
	})
	return httptest.NewServer(mux)
}

func TestRemoteDashboardEndToEnd(t *testing.T) {
	srv := newAPIServer()
	defer srv.Close()

	// Config file pointing at the test server
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tlens.yaml")
	content := `
mode: remote
api_base: ` + srv.URL + `
rotate_interval: 2s
alert_limit: 10
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.ModeRemote, cfg.Mode)
	assert.Equal(t, 2*time.Second, cfg.RotateInterval)

	// Health probe
	client := api.New(cfg.APIBase)
	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, health.OK)
	assert.Equal(t, "trustlens-api", health.Service)

	// Full load through the dashboard state
	state := dashboard.NewState(dashboard.Options{
		Mode:        dashboard.ModeRemote,
		Backend:     client,
		AlertLimit:  cfg.AlertLimit,
		TrendWindow: cfg.TrendWindow,
		TrendLength: cfg.TrendPoints,
	})
	require.NoError(t, state.Initialize(context.Background()))

	assert.Len(t, state.Sources(), 3)
	assert.Len(t, state.Alerts(), 1)
	assert.Len(t, state.Trend(), 3)
	assert.Equal(t, dashboard.Counts{Healthy: 1, Warning: 1, Failing: 1, Total: 3}, state.Counts())

	// Trend rotation keeps whatever window the backend returned
	state.RotateTrend()
	trend := state.Trend()
	require.Len(t, trend, 3)
	assert.Equal(t, 4.9, trend[0].NullRate, "oldest point was dropped")

	// Refresh re-fetches sources and alerts, leaves the trend alone
	require.NoError(t, state.Refresh(context.Background()))
	assert.Equal(t, trend, state.Trend())

	// Malformed lastRun upstream degrades to a placeholder, never an error
	assert.Equal(t, "unknown", api.FormatClock(state.Sources()[2].LastRun))

	state.Close()
	state.RotateTrend()
	assert.Equal(t, trend, state.Trend(), "no mutation after teardown")
}

func TestMockDashboardEndToEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	state := dashboard.NewState(dashboard.Options{
		TrendLength: cfg.TrendPoints,
		AlertLimit:  cfg.AlertLimit,
	})
	require.NoError(t, state.Initialize(context.Background()))

	assert.Len(t, state.Sources(), 4)
	assert.Len(t, state.Alerts(), 5)
	assert.Len(t, state.Trend(), cfg.TrendPoints)

	counts := state.Counts()
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, counts.Total, counts.Healthy+counts.Warning+counts.Failing+counts.Unknown)
}
