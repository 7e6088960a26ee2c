package core

// Color is a foreground colour for a screen cell.
// The platform maps it to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorDarkOrange
	ColorGray
	ColorDarkGray

	// ColorCount is the number of colours; keep it last.
	ColorCount
)

// ShadeGray picks a gray level for a brightness in [0, 255].
func ShadeGray(brightness int) Color {
	switch {
	case brightness >= 220:
		return ColorBrightWhite
	case brightness >= 170:
		return ColorWhite
	case brightness >= 130:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
