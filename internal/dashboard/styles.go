package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/trustlens/tlens/internal/api"
)

// Dashboard color palette - Gen Z Electric Synthwave
const (
	// Background colors (glassmorphism-inspired)
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for source health - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors - neon pink primary, cyan secondary
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Graph colors
	ColorGraph    = lipgloss.Color("#00FFFF") // Neon cyan (null rate)
	ColorGraphAlt = lipgloss.Color("#BF40FF") // Neon purple (freshness)
)

// Metric thresholds. Null rate is a percentage of null values; the backend
// alerts at 20%. Freshness is minutes since last update; staleness alerts
// fire at 60 minutes.
const (
	NullRateWarn     = 10.0
	NullRateCritical = 20.0
	FreshnessWarn    = 60.0
	FreshnessStale   = 100.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorBorder).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	// Status styles for source health
	StatusHealthyStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy)

	StatusWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	StatusFailingStyle = lipgloss.NewStyle().
				Foreground(ColorCritical)

	StatusUnknownStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Status indicator characters - cyber glyphs
const (
	SymbolHealthy = "◉" // Filled target
	SymbolWarning = "◔" // Partially filled
	SymbolFailing = "◌" // Dashed circle
	SymbolUnknown = "·"
)

// LoadingSpinnerFrames are the animation frames shown while a load is in
// flight. Rotates through half-circle positions for a smooth spin effect.
var LoadingSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// StatusSymbol returns the indicator glyph for a source status.
func StatusSymbol(s api.Status) string {
	switch s {
	case api.StatusHealthy:
		return SymbolHealthy
	case api.StatusWarning:
		return SymbolWarning
	case api.StatusFailing:
		return SymbolFailing
	default:
		return SymbolUnknown
	}
}

// StatusStyle returns the style for a source status.
func StatusStyle(s api.Status) lipgloss.Style {
	switch s {
	case api.StatusHealthy:
		return StatusHealthyStyle
	case api.StatusWarning:
		return StatusWarningStyle
	case api.StatusFailing:
		return StatusFailingStyle
	default:
		return StatusUnknownStyle
	}
}

// SeverityStyle returns the style for an alert severity.
func SeverityStyle(s api.Severity) lipgloss.Style {
	switch s {
	case api.SeverityHigh:
		return StatusFailingStyle
	case api.SeverityMedium:
		return StatusWarningStyle
	case api.SeverityLow:
		return StatusHealthyStyle
	default:
		return StatusUnknownStyle
	}
}

// NullRateColor maps a null-rate percentage to a severity color.
func NullRateColor(v float64) lipgloss.Color {
	switch {
	case v >= NullRateCritical:
		return ColorCritical
	case v >= NullRateWarn:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// FreshnessColor maps freshness minutes to a severity color.
func FreshnessColor(v float64) lipgloss.Color {
	switch {
	case v >= FreshnessStale:
		return ColorCritical
	case v >= FreshnessWarn:
		return ColorWarning
	default:
		return ColorHealthy
	}
}
