package core

// Color is a foreground color for a screen cell. Games draw with this small
// palette and the terminal shell decides how each entry looks.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
)

// String returns the palette name of c.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
