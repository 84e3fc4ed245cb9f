package core

// Color represents a foreground color for a frame cell.
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
	ColorOrange
	ColorGray
)

// ansiCodes holds the 256-color palette index for each color.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// ANSI returns the 256-color palette code for the color.
// Returns an empty string for ColorDefault and unknown colors.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
