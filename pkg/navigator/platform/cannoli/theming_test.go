package cannoli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitCannoliTheme(t *testing.T) {
	theme := InitCannoliTheme(DefaultFontPath)

	assert.Equal(t, DefaultFontPath, theme.FontPath)
	assert.Equal(t, uint32(0x008080), theme.AccentColor)
	assert.NotEqual(t, theme.TextColor, theme.BackgroundColor)
	assert.NotEqual(t, theme.HighlightColor, theme.HighlightedTextColor)
}
