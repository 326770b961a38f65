package internal

import "fmt"

// Theme defines the visual appearance shared by the frontends.
// Colors are 0xRRGGBB values so both SDL and terminal styles can use them.
type Theme struct {
	HighlightColor       uint32 // Focused button background
	AccentColor          uint32 // Text field border, title underline
	ButtonLabelColor     uint32 // Label on unfocused buttons
	TextColor            uint32 // Default text color
	HighlightedTextColor uint32 // Label on the focused button
	HintColor            uint32 // Footer help text
	BackgroundColor      uint32 // Screen background color
	FontPath             string // Path to the primary UI font
	BackgroundImagePath  string // Path to an optional background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToRGBA splits a 0xRRGGBB value into opaque channel values.
func HexToRGBA(hex uint32) (r, g, b, a uint8) {
	return uint8(hex >> 16 & 0xFF), uint8(hex >> 8 & 0xFF), uint8(hex & 0xFF), 255
}

// HexString formats a 0xRRGGBB value as "#rrggbb".
func HexString(hex uint32) string {
	return fmt.Sprintf("#%06x", hex&0xFFFFFF)
}
