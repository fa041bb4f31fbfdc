package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI color.
type Color uint8

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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette is the ordered set of distinct colors used by games that pick
// piece colors by index (gems, bubbles, bricks).
var Palette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
}

// PaletteColor returns the palette entry for index i, wrapping around.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
