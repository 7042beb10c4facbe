package core

// Color is the foreground color of a screen cell.
// ColorDefault leaves the terminal's own foreground untouched.
type Color uint8

// Colors used by the well, the pieces and the HUD.
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
	colorCount
)

// ansiCodes holds the ANSI 256-color code of each color.
var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the ANSI 256-color code, or "" for the default and unknown colors.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette lists every color that has an ANSI code.
func Palette() []Color {
	colors := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}
