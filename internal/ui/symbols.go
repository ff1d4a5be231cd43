package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
)

// Progress bar glyphs. All single-byte so the bar body can be written
// through the byte-counted path.
const (
	BarFill      = '#'
	BarMarker    = '>'
	BarRemaining = '-'
)
