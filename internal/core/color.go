package core

// Color is the foreground color of a screen cell. The platform renderer maps
// each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota

	// Basic ANSI colors.
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite

	// Bright variants, used for Tetris pieces and the Pong ball.
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite

	// Extended palette.
	ColorOrange
	ColorPurple
	ColorGray
)
