package core

// Color is a terminal foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the terminal renderer.
const (
	ColorDefault Color = iota // Terminal default
	ColorWhite                // HUD text, message box
	ColorGray                 // Clouds
	ColorGreen                // Player
	ColorYellow               // Ground surface
	ColorBrown                // Ground base
	ColorBrightRed            // Obstacles, game over banner
)
