package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var iconFS embed.FS

// Icon identifies a glyph drawn next to a button label.
type Icon int

const (
	IconNone Icon = iota
	IconForward
	IconBack
	IconHome
)

func (i Icon) file() string {
	switch i {
	case IconForward:
		return "icons/arrow_forward.svg"
	case IconBack:
		return "icons/arrow_back.svg"
	case IconHome:
		return "icons/home.svg"
	default:
		return ""
	}
}

// Glyph returns a text fallback for frontends that cannot draw images.
func (i Icon) Glyph() string {
	switch i {
	case IconForward:
		return "→"
	case IconBack:
		return "←"
	case IconHome:
		return "⌂"
	default:
		return ""
	}
}

// RasterizeIcon renders an embedded icon into a size x size RGBA image.
func RasterizeIcon(icon Icon, size int) (*image.RGBA, error) {
	name := icon.file()
	if name == "" {
		return nil, fmt.Errorf("icon %d has no image", icon)
	}

	data, err := iconFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return RasterizeSVG(bytes.NewReader(data), size, size)
}

// RasterizeSVG renders an SVG document scaled to w x h.
func RasterizeSVG(r io.Reader, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
