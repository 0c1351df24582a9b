package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
	SymbolOnline  = "●" // Host reachable
	SymbolOffline = "○" // Host unreachable
	SymbolWarn    = "!" // Something needs attention
)
