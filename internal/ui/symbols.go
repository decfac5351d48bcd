package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
	SymbolPending = "○" // Not yet known
	SymbolHealthy = "●" // Source healthy
	SymbolWarning = "◐" // Source degraded
)
