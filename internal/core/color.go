package core

// Color represents a foreground color for a screen glyph.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
