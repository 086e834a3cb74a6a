package engine

import "strings"

// Color is the content of a board cell. The zero value is Empty.
type Color uint8

const (
	Empty Color = iota
	ColorPink
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorPurple
	ColorCrimson
)

// MaxPalette is the number of non-empty colors.
const MaxPalette = 7

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case ColorPink:
		return "pink"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorCrimson:
		return "crimson"
	default:
		return "unknown"
	}
}

// Char returns the single-character code used in layouts and ASCII dumps.
func (c Color) Char() rune {
	switch c {
	case Empty:
		return '.'
	case ColorPink:
		return 'P'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorOrange:
		return 'O'
	case ColorPurple:
		return 'U'
	case ColorCrimson:
		return 'R'
	default:
		return '?'
	}
}

// IsEmpty reports whether the cell holds no block.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// ParseColor converts a name or single-character code to a Color.
// Returns Empty and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case ".", "empty", "_":
		return Empty, true
	case "p", "pink":
		return ColorPink, true
	case "b", "blue":
		return ColorBlue, true
	case "g", "green":
		return ColorGreen, true
	case "y", "yellow":
		return ColorYellow, true
	case "o", "orange":
		return ColorOrange, true
	case "u", "purple":
		return ColorPurple, true
	case "r", "crimson", "red":
		return ColorCrimson, true
	default:
		return Empty, false
	}
}

// AllColors returns every non-empty color in palette order.
func AllColors() []Color {
	return []Color{ColorPink, ColorBlue, ColorGreen, ColorYellow, ColorOrange, ColorPurple, ColorCrimson}
}

// PaletteSize returns how many colors new pieces draw from at the given level.
// More colors make matches rarer as the game progresses.
func PaletteSize(level int) int {
	switch {
	case level <= 3:
		return 4
	case level <= 7:
		return 5
	case level <= 12:
		return 6
	default:
		return 7
	}
}

// Palette returns the colors available at the given level.
func Palette(level int) []Color {
	return AllColors()[:PaletteSize(level)]
}
