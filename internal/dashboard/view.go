package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/trustlens/tlens/internal/api"
)

// Width breakpoint above which the alerts and trend panels sit side by side.
const wideBreakpoint = 100

// Column widths for the source table.
const (
	colNameWidth   = 20
	colTypeWidth   = 10
	colStatusWidth = 11
	colRunWidth    = 9
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.initializing {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(fmt.Sprintf(" %s loading dashboard...", m.Spinner())))
		b.WriteString("\n")
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(m.renderLoadError())
		b.WriteString("\n")
	}

	b.WriteString(m.renderSummary())
	b.WriteString("\n")

	sourcesPanel := m.renderSourcesPanel()
	alertsPanel := m.renderAlertsPanel()
	trendPanel := m.renderTrendPanel()

	if m.width >= wideBreakpoint {
		b.WriteString(sourcesPanel)
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, alertsPanel, trendPanel))
	} else {
		b.WriteString(sourcesPanel)
		b.WriteString("\n")
		b.WriteString(alertsPanel)
		b.WriteString("\n")
		b.WriteString(trendPanel)
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with mode and update age.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("tlens")

	var updateText string
	switch age := m.SecondsSinceUpdate(); {
	case m.lastUpdate.IsZero():
		updateText = "never"
	case age == 0:
		updateText = "just now"
	case age == 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", age)
	}

	counts := m.state.Counts()
	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %s mode | %d sources | updated %s",
			m.state.Mode(), counts.Total, updateText))

	return HeaderStyle.Render(title + stats)
}

// renderSummary renders the derived health counts.
func (m Model) renderSummary() string {
	counts := m.state.Counts()

	parts := []string{
		StatusHealthyStyle.Render(fmt.Sprintf("%s %d healthy", SymbolHealthy, counts.Healthy)),
		StatusWarningStyle.Render(fmt.Sprintf("%s %d warning", SymbolWarning, counts.Warning)),
		StatusFailingStyle.Render(fmt.Sprintf("%s %d failing", SymbolFailing, counts.Failing)),
	}
	if counts.Unknown > 0 {
		parts = append(parts, StatusUnknownStyle.Render(fmt.Sprintf("%s %d unknown", SymbolUnknown, counts.Unknown)))
	}

	return " " + strings.Join(parts, "   ")
}

// renderLoadError renders the non-fatal load failure ribbon. A failed load
// keeps whatever data survived; the user retries with r.
func (m Model) renderLoadError() string {
	feed := api.FailedFeed(m.loadErr)
	msg := "load failed"
	if feed != "" {
		msg = fmt.Sprintf("%s fetch failed", feed)
	}
	return " " + ErrorStyle.Render("✗ "+msg) + MutedStyle.Render(" — press r to retry")
}

// renderSourcesPanel renders the sortable source table.
func (m Model) renderSourcesPanel() string {
	sources := m.sortedSources()

	title := PanelTitleStyle.Render("Data Sources")
	sortLabel := MutedStyle.Render(fmt.Sprintf(" sort: %s", m.sortOrder))

	var rows []string
	rows = append(rows, title+sortLabel)

	header := fmt.Sprintf("  %-*s %-*s %-*s %-*s",
		colNameWidth, "NAME",
		colTypeWidth, "TYPE",
		colStatusWidth, "STATUS",
		colRunWidth, "LAST RUN")
	rows = append(rows, LabelStyle.Render(header))

	if len(sources) == 0 {
		rows = append(rows, MutedStyle.Render("  no sources"))
	}

	for i, src := range sources {
		statusCell := StatusStyle(src.Status).Render(
			fmt.Sprintf("%s %-9s", StatusSymbol(src.Status), string(src.Status)))

		row := fmt.Sprintf("%-*s %-*s %s %-*s",
			colNameWidth, truncate(src.Name, colNameWidth),
			colTypeWidth, truncate(src.Type, colTypeWidth),
			statusCell,
			colRunWidth, api.FormatClock(src.LastRun))

		if i == m.selected {
			rows = append(rows, SelectedRowStyle.Render("▸ "+row))
		} else {
			rows = append(rows, "  "+ValueStyle.Render(row))
		}
	}

	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderAlertsPanel renders the recent alerts feed.
func (m Model) renderAlertsPanel() string {
	alerts := m.state.Alerts()

	rows := []string{PanelTitleStyle.Render("Recent Alerts")}

	if len(alerts) == 0 {
		rows = append(rows, MutedStyle.Render("no recent alerts"))
	}

	for _, a := range alerts {
		sev := SeverityStyle(a.Severity).Render(fmt.Sprintf("%-6s", strings.ToUpper(string(a.Severity))))
		age := MutedStyle.Render(api.FormatAge(a.CreatedAt, time.Now()))
		rows = append(rows, fmt.Sprintf("%s %s  %s", sev, ValueStyle.Render(truncate(a.Message, 38)), age))
	}

	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderTrendPanel renders the two-metric sparkline chart.
func (m Model) renderTrendPanel() string {
	trend := m.state.Trend()

	rows := []string{PanelTitleStyle.Render("Null Rate / Freshness")}

	if len(trend) == 0 {
		rows = append(rows, MutedStyle.Render("no trend data"))
		return PanelStyle.Render(strings.Join(rows, "\n"))
	}

	nullRates := make([]float64, len(trend))
	freshness := make([]float64, len(trend))
	for i, p := range trend {
		nullRates[i] = p.NullRate
		freshness[i] = p.FreshnessMinutes
	}

	width := len(trend)
	if width > 40 {
		width = 40
	}

	latest := trend[len(trend)-1]
	span := MutedStyle.Render(fmt.Sprintf("%s → %s", trend[0].Label, latest.Label))

	nullLine := fmt.Sprintf("%s %s %s",
		LabelStyle.Render("null %   "),
		RenderThresholdSparkline(nullRates, width, 0, 20, NullRateColor),
		lipgloss.NewStyle().Foreground(NullRateColor(latest.NullRate)).Render(fmt.Sprintf("%.1f%%", latest.NullRate)))

	freshLine := fmt.Sprintf("%s %s %s",
		LabelStyle.Render("fresh min"),
		RenderThresholdSparkline(freshness, width, 0, 120, FreshnessColor),
		lipgloss.NewStyle().Foreground(FreshnessColor(latest.FreshnessMinutes)).Render(fmt.Sprintf("%.0fm", latest.FreshnessMinutes)))

	rows = append(rows, nullLine, freshLine, span)

	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"s sort",
		"↑↓ select",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderHelp renders the full help overlay.
func (m Model) renderHelp() string {
	rows := []string{
		PanelTitleStyle.Render("Keyboard shortcuts"),
		"",
		"  q / ctrl+c   quit",
		"  r            refresh sources and alerts",
		"  s            cycle sort order (default/name/status/type/last run)",
		"  ↑/k ↓/j      select source",
		"  home / end   first / last source",
		"  ?            toggle this help",
		"  esc          close help",
		"",
		MutedStyle.Render("  trend chart rotates automatically; refresh never touches it"),
	}
	return PanelStyle.Render(strings.Join(rows, "\n"))
}

// truncate shortens a string to maxLen, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
