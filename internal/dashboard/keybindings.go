package dashboard

import tea "github.com/charmbracelet/bubbletea"

// SortOrder defines how sources are sorted in the table.
type SortOrder int

const (
	// SortByDefault keeps the order the backend (or mock catalog) returned.
	SortByDefault SortOrder = iota
	SortByName
	SortByStatus
	SortByType
	SortByLastRun
)

const sortOrderCount = 5

// String returns a human-readable label for the sort order.
func (s SortOrder) String() string {
	switch s {
	case SortByDefault:
		return "default"
	case SortByName:
		return "name"
	case SortByStatus:
		return "status"
	case SortByType:
		return "type"
	case SortByLastRun:
		return "last run"
	default:
		return "default"
	}
}

// Next cycles to the next sort order.
func (s SortOrder) Next() SortOrder {
	return SortOrder((int(s) + 1) % sortOrderCount)
}

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyCycleSort   = "s"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyCloseHelp   = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and
// command. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.state.Close()
		return true, tea.Quit

	case KeyRefresh:
		if m.refreshing || m.initializing {
			return true, nil
		}
		m.refreshing = true
		return true, m.refreshCmd()

	case KeyCycleSort:
		m.sortOrder = m.sortOrder.Next()
		return true, nil

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.state.Sources())-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		if n := len(m.state.Sources()); n > 0 {
			m.selected = n - 1
		}
		return true, nil
	}

	return false, nil
}
