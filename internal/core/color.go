package core

// Color is a logical palette index for a screen cell's foreground.
// The platform layer owns the mapping to real terminal colors, so the
// renderer can pick "hazard orange" without knowing escape codes.
type Color uint8

const (
	ColorDefault Color = iota

	// Standard terminal colors.
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	// Bright variants, used for the ship, projectiles and HUD text.
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// Extras outside the basic sixteen. Orange marks the middle hazard
	// tier between large (yellow) and small (bright yellow).
	ColorOrange
	ColorGray
)
