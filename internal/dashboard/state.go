// Package dashboard owns the view state for the TrustLens terminal
// dashboard: the monitored sources, the recent-alerts feed, and the
// null-rate/freshness trend window, plus the live-update loop that keeps
// them fresh.
package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/trustlens/tlens/internal/api"
	"github.com/trustlens/tlens/internal/logger"
)

// Mode selects where dashboard data comes from.
type Mode int

const (
	// ModeMock synthesizes demo data locally. Loads cannot fail.
	ModeMock Mode = iota
	// ModeRemote fetches data from a TrustLens API server.
	ModeRemote
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeMock:
		return "mock"
	case ModeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Backend is the remote data dependency of the dashboard.
// *api.Client satisfies it; tests substitute their own.
type Backend interface {
	DataSources(ctx context.Context) ([]api.Source, error)
	Alerts(ctx context.Context, limit int) ([]api.Alert, error)
	NullRateTrend(ctx context.Context, window string) ([]api.TrendPoint, error)
}

// Defaults for state options left zero.
const (
	DefaultAlertLimit   = 20
	DefaultTrendWindow  = "30min"
	DefaultTrendLength  = 30
	DefaultTickInterval = 6 * time.Second
)

// Options configures a State.
type Options struct {
	Mode        Mode
	Backend     Backend // required for ModeRemote
	AlertLimit  int
	TrendWindow string
	TrendLength int
	Rand        *rand.Rand       // injectable for deterministic synthesis
	Now         func() time.Time // injectable clock
	Logger      logger.Logger
}

// State holds the three dashboard collections and the loading flag.
// All mutation goes through the mutex; once Close is called every mutating
// entry point becomes a no-op, so a tick or fetch that resolves after
// teardown cannot touch the collections.
type State struct {
	mu sync.Mutex

	mode        Mode
	backend     Backend
	alertLimit  int
	trendWindow string
	trendLen    int
	rng         *rand.Rand
	now         func() time.Time
	log         logger.Logger

	sources []api.Source
	alerts  []api.Alert
	trend   []api.TrendPoint

	loading bool
	loaded  bool // initial load reached a terminal state (success or failure)
	closed  bool
}

// NewState creates dashboard state with the given options.
func NewState(opts Options) *State {
	if opts.AlertLimit <= 0 {
		opts.AlertLimit = DefaultAlertLimit
	}
	if opts.TrendWindow == "" {
		opts.TrendWindow = DefaultTrendWindow
	}
	if opts.TrendLength <= 0 {
		opts.TrendLength = DefaultTrendLength
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	return &State{
		mode:        opts.Mode,
		backend:     opts.Backend,
		alertLimit:  opts.AlertLimit,
		trendWindow: opts.TrendWindow,
		trendLen:    opts.TrendLength,
		rng:         opts.Rand,
		now:         opts.Now,
		log:         opts.Logger,
	}
}

// Mode returns the configured data mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Initialize populates all three collections. In mock mode this is total and
// cannot fail. In remote mode the three feeds are fetched concurrently and
// each applied independently as it resolves; if any fetch fails the call
// returns a *api.LoadError naming the first failed feed, but feeds that
// succeeded keep their data. The loading flag is released on every exit path.
func (s *State) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.loaded = true
		s.mu.Unlock()
	}()

	if s.mode == ModeMock {
		s.synthesize()
		return nil
	}
	return s.fetch(ctx, true)
}

// Refresh re-populates sources and alerts. The trend window is deliberately
// left alone; it only moves through RotateTrend. Failure policy matches
// Initialize: independent apply, first failed feed reported.
func (s *State) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	if s.mode == ModeMock {
		now := s.now()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return nil
		}
		s.sources = synthSources(s.rng, now)
		s.alerts = synthAlerts(s.rng, now)
		return nil
	}
	return s.fetch(ctx, false)
}

// synthesize fills all three collections with mock data.
func (s *State) synthesize() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sources = synthSources(s.rng, now)
	s.alerts = synthAlerts(s.rng, now)
	s.trend = synthTrend(s.rng, now, s.trendLen)
}

// fetch runs the remote feed fetches concurrently and applies each result
// as it arrives. Errors are joined after all feeds finish; the first failed
// feed (in sources, alerts, trend order) wins so failures report
// deterministically.
func (s *State) fetch(ctx context.Context, includeTrend bool) error {
	var (
		wg                         sync.WaitGroup
		srcErr, alertErr, trendErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		sources, err := s.backend.DataSources(ctx)
		if err != nil {
			srcErr = err
			return
		}
		s.applySources(sources)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		alerts, err := s.backend.Alerts(ctx, s.alertLimit)
		if err != nil {
			alertErr = err
			return
		}
		s.applyAlerts(alerts)
	}()

	if includeTrend {
		wg.Add(1)
		go func() {
			defer wg.Done()
			trend, err := s.backend.NullRateTrend(ctx, s.trendWindow)
			if err != nil {
				trendErr = err
				return
			}
			s.applyTrend(trend)
		}()
	}

	wg.Wait()

	for _, err := range []error{srcErr, alertErr, trendErr} {
		if err != nil {
			s.log.Debug("load failed: %v", err)
			return err
		}
	}
	return nil
}

// applySources replaces the source collection wholesale.
func (s *State) applySources(sources []api.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sources = sources
}

// applyAlerts replaces the alert collection wholesale.
func (s *State) applyAlerts(alerts []api.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.alerts = alerts
}

// applyTrend replaces the trend window wholesale.
func (s *State) applyTrend(trend []api.TrendPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.trend = trend
}

// RotateTrend drops the oldest trend point and appends one freshly sampled
// point labelled with the current time, keeping the window length constant.
// It is a no-op before the initial load reaches a terminal state, after
// Close, and when the window is empty.
func (s *State) RotateTrend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.loaded || len(s.trend) == 0 {
		return
	}

	point := api.TrendPoint{
		Label:            s.now().Format("15:04"),
		NullRate:         sampleNullRate(s.rng),
		FreshnessMinutes: sampleFreshness(s.rng),
	}

	next := make([]api.TrendPoint, 0, len(s.trend))
	next = append(next, s.trend[1:]...)
	next = append(next, point)
	s.trend = next
}

// Close tears the state down. Idempotent; afterwards no operation mutates
// the collections, even ones already in flight.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether the state has been torn down.
func (s *State) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Loading reports whether a load is in flight.
func (s *State) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Loaded reports whether the initial load reached a terminal state.
func (s *State) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Sources returns a copy of the source collection.
func (s *State) Sources() []api.Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// Alerts returns a copy of the alert collection.
func (s *State) Alerts() []api.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Trend returns a copy of the trend window, oldest point first.
func (s *State) Trend() []api.TrendPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.TrendPoint, len(s.trend))
	copy(out, s.trend)
	return out
}

// Counts is the derived health summary of the source collection.
type Counts struct {
	Healthy int
	Warning int
	Failing int
	Unknown int
	Total   int
}

// CountByStatus projects a source collection into health counts.
// Healthy+Warning+Failing+Unknown always equals Total.
func CountByStatus(sources []api.Source) Counts {
	var c Counts
	c.Total = len(sources)
	for _, src := range sources {
		switch src.Status {
		case api.StatusHealthy:
			c.Healthy++
		case api.StatusWarning:
			c.Warning++
		case api.StatusFailing:
			c.Failing++
		default:
			c.Unknown++
		}
	}
	return c
}

// Counts recomputes the health summary from the current source collection.
// Always a fresh projection, never cached, so it cannot go stale.
func (s *State) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CountByStatus(s.sources)
}
