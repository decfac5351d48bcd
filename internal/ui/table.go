// Package ui provides terminal output components for tlens CLI commands.
//
// Colors are defined as ANSI codes for broad terminal compatibility; the
// full-screen dashboard carries its own richer palette and does not use
// this package.
package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/trustlens/tlens/internal/api"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color(string(ColorMuted))).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// SourceTableRow represents a row in the status output table.
type SourceTableRow struct {
	Name    string
	Type    string
	Status  api.Status
	LastRun string // already formatted for display
}

// RenderSourceTable renders data sources as a formatted table for one-shot
// CLI output.
func RenderSourceTable(rows []SourceTableRow) string {
	if len(rows) == 0 {
		return "No data sources"
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorWarning)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(string(ColorMuted)))

	var output string
	output += headerStyle.Render("  STATUS   NAME                 TYPE        LAST RUN") + "\n"

	for _, row := range rows {
		var statusIcon string
		switch row.Status {
		case api.StatusHealthy:
			statusIcon = successStyle.Render(SymbolHealthy)
		case api.StatusWarning:
			statusIcon = warnStyle.Render(SymbolWarning)
		case api.StatusFailing:
			statusIcon = errorStyle.Render(SymbolFail)
		default:
			statusIcon = mutedStyle.Render(SymbolPending)
		}

		rowLine := "  " + statusIcon + "        " +
			padRight(row.Name, 21) +
			padRight(row.Type, 12) +
			mutedStyle.Render(row.LastRun)
		output += lipgloss.NewStyle().Render(rowLine) + "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
