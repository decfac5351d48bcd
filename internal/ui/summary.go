package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderHealthLine renders the API health probe result as a single line.
func RenderHealthLine(ok bool, service, detail string) string {
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	if !ok {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
		line := errorStyle.Render(SymbolFail + " API unreachable")
		if detail != "" {
			line += " " + mutedStyle.Render(detail)
		}
		return line
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	line := successStyle.Render(fmt.Sprintf("%s %s healthy", SymbolSuccess, service))
	if detail != "" {
		line += " " + mutedStyle.Render(detail)
	}
	return line
}

// RenderCountSummary renders the derived source health counts for one-shot
// CLI output, e.g. "2 healthy / 1 warning / 1 failing".
func RenderCountSummary(healthy, warning, failing, unknown int) string {
	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorWarning)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	out := successStyle.Render(fmt.Sprintf("%d healthy", healthy)) +
		mutedStyle.Render(" / ") +
		warnStyle.Render(fmt.Sprintf("%d warning", warning)) +
		mutedStyle.Render(" / ") +
		errorStyle.Render(fmt.Sprintf("%d failing", failing))
	if unknown > 0 {
		out += mutedStyle.Render(fmt.Sprintf(" / %d unknown", unknown))
	}
	return out
}
