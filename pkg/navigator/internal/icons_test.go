package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeIcon(t *testing.T) {
	for _, icon := range []Icon{IconForward, IconBack, IconHome} {
		img, err := RasterizeIcon(icon, 32)
		require.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
		assert.Equal(t, 32, img.Bounds().Dy())

		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				opaque++
			}
		}
		assert.Positive(t, opaque, "icon %d should draw something", icon)
		assert.NotEmpty(t, icon.Glyph())
	}
}

func TestRasterizeIcon_None(t *testing.T) {
	_, err := RasterizeIcon(IconNone, 32)
	assert.Error(t, err)
	assert.Empty(t, IconNone.Glyph())
}

func TestRasterizeSVG_InvalidSize(t *testing.T) {
	_, err := RasterizeSVG(strings.NewReader("<svg/>"), 0, 10)
	assert.Error(t, err)
}
