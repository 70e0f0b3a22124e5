package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)

// Shade is an ANSI 256-color palette index used as a cell background.
// ShadeNone leaves the terminal background untouched; palette entry 0 is never
// produced by the backdrop downsampler (it maps black to 16 instead).
type Shade uint8

// ShadeNone means "no background".
const ShadeNone Shade = 0
