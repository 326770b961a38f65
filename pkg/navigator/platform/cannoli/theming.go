// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:       0xFFFFFF,
		AccentColor:          0x008080,
		ButtonLabelColor:     0xFFFFFF,
		HintColor:            0xA0A0A0,
		TextColor:            0xFFFFFF,
		HighlightedTextColor: 0x000000,
		BackgroundColor:      0x000000,
		FontPath:             fontPath,
	}
}
