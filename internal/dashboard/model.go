package dashboard

import (
	"context"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trustlens/tlens/internal/api"
)

// spinnerInterval is the animation frame rate for the loading spinner.
const spinnerInterval = 150 * time.Millisecond

// loadTimeout bounds the whole initial-load or refresh cycle.
const loadTimeout = 30 * time.Second

// Model is the Bubble Tea model driving the dashboard view. All collection
// state lives in State; the model holds only view concerns (selection, sort,
// layout, in-flight flags).
type Model struct {
	state    *State
	interval time.Duration

	width  int
	height int

	selected  int
	sortOrder SortOrder
	showHelp  bool
	quitting  bool

	initializing bool
	refreshing   bool
	loadErr      error
	lastUpdate   time.Time

	spinnerFrame int
}

// tickMsg signals a trend rotation.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// initDoneMsg carries the result of the initial load.
type initDoneMsg struct {
	err error
}

// refreshDoneMsg carries the result of a manual refresh.
type refreshDoneMsg struct {
	err error
}

// NewModel creates a dashboard model around the given state.
// interval is the trend rotation interval (0 uses the default of 6s).
func NewModel(state *State, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return Model{
		state:        state,
		interval:     interval,
		initializing: true,
		sortOrder:    SortByDefault,
	}
}

// Init starts the initial load and the spinner animation. The rotation tick
// chain is deliberately not started here; it begins when initDoneMsg arrives,
// so rotation never runs before the initial load reaches a terminal state.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.initCmd(),
		m.spinnerTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Liveness check: a tick already scheduled when the user quit must
		// not mutate anything or reschedule itself.
		if m.quitting {
			return m, nil
		}
		m.state.RotateTrend()
		return m, m.tickCmd()

	case spinnerTickMsg:
		if m.quitting {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % len(LoadingSpinnerFrames)
		return m, m.spinnerTickCmd()

	case initDoneMsg:
		m.initializing = false
		m.loadErr = msg.err
		m.lastUpdate = time.Now()
		if m.quitting {
			return m, nil
		}
		// Initial load reached its terminal state; start rotating.
		return m, m.tickCmd()

	case refreshDoneMsg:
		m.refreshing = false
		m.loadErr = msg.err
		m.lastUpdate = time.Now()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Err returns the most recent load error, if any.
func (m Model) Err() error {
	return m.loadErr
}

// tickCmd returns a command that sends a tick after the rotation interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner animation frame.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// initCmd runs the initial load off the render loop.
func (m Model) initCmd() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return initDoneMsg{err: state.Initialize(ctx)}
	}
}

// refreshCmd runs a manual refresh off the render loop.
func (m Model) refreshCmd() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return refreshDoneMsg{err: state.Refresh(ctx)}
	}
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// completed load.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// Spinner returns the current loading spinner frame.
func (m Model) Spinner() string {
	return LoadingSpinnerFrames[m.spinnerFrame%len(LoadingSpinnerFrames)]
}

// SelectedSource returns the currently selected source in display order,
// or a zero Source when the table is empty.
func (m Model) SelectedSource() api.Source {
	sources := m.sortedSources()
	if m.selected >= 0 && m.selected < len(sources) {
		return sources[m.selected]
	}
	return api.Source{}
}

// sortedSources returns the sources in the current display order.
// Sorting works on a snapshot; State keeps the canonical backend order.
func (m Model) sortedSources() []api.Source {
	sources := m.state.Sources()

	switch m.sortOrder {
	case SortByName:
		sort.SliceStable(sources, func(i, j int) bool {
			return sources[i].Name < sources[j].Name
		})

	case SortByStatus:
		sort.SliceStable(sources, func(i, j int) bool {
			return statusRank(sources[i].Status) < statusRank(sources[j].Status)
		})

	case SortByType:
		sort.SliceStable(sources, func(i, j int) bool {
			return sources[i].Type < sources[j].Type
		})

	case SortByLastRun:
		sort.SliceStable(sources, func(i, j int) bool {
			ti, iOK := api.ParseTime(sources[i].LastRun)
			tj, jOK := api.ParseTime(sources[j].LastRun)
			// Unparseable timestamps go to the end
			if iOK != jOK {
				return iOK
			}
			if !iOK {
				return sources[i].Name < sources[j].Name
			}
			// Most recent first
			return ti.After(tj)
		})
	}

	return sources
}

// statusRank orders statuses most-broken-first for the status sort.
func statusRank(s api.Status) int {
	switch s {
	case api.StatusFailing:
		return 0
	case api.StatusWarning:
		return 1
	case api.StatusHealthy:
		return 2
	default:
		return 3
	}
}
