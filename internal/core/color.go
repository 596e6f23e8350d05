package core

// Color is a terminal color used for a cell's foreground or background.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorOrange
)
