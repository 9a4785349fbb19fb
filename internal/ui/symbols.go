package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Round settled
	SymbolFail     = "✗" // Error
	SymbolPending  = "○" // Idle, waiting for Start
	SymbolProgress = "◐" // Spinning
	SymbolComplete = "●" // Result line marker
	SymbolStopping = "◔" // Stop requested, grace running
)

// Pointer glyphs by the direction they point.
const (
	PointerDown  = "▼"
	PointerUp    = "▲"
	PointerLeft  = "◀"
	PointerRight = "▶"
)
