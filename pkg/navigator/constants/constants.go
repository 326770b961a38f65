// Package constants defines shared constants, types, and configuration values
// used throughout the navigator packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the frontends.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"     // DEV enables windowed development mode
	WindowWidthEnvVar    = "WINDOW_WIDTH"    // Window width in development mode
	WindowHeightEnvVar   = "WINDOW_HEIGHT"   // Window height in development mode
	BackgroundPathEnvVar = "BACKGROUND_PATH" // Custom background image path
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from keys or
// controller buttons by each frontend.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

// Default timing and sizing constants.
const (
	DefaultInputDelay              = 20 * time.Millisecond  // Debounce delay between input events
	DefaultCursorBlinkRate         = 500 * time.Millisecond // Text field cursor blink period
	DefaultFontSize                = 28                     // Point size of body text
	DefaultTitleSpacing     int32  = 5                      // Vertical spacing below title text
	DefaultWindowWidth      int32  = 1024                   // Dev-mode window width
	DefaultWindowHeight     int32  = 768                    // Dev-mode window height
	DefaultBackKeyCode      uint16 = 158                    // Linux KEY_BACK
	DefaultTextFieldMaxRune        = 64                     // Longest accepted text field value
)
