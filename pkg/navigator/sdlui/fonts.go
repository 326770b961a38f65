package sdlui

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/veandco/go-sdl2/ttf"
)

// fallbackFontPaths are tried when the themed font cannot be opened,
// usually because the demo runs on a desktop in development mode.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

type fonts struct {
	Title *ttf.Font
	Body  *ttf.Font
	Small *ttf.Font
}

// fontSizes derives the title and hint sizes from the body size.
func fontSizes(body int) (title, small int) {
	if body <= 0 {
		body = constants.DefaultFontSize
	}
	return body * 4 / 3, body * 3 / 4
}

func fontCandidates(paths ...string) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range append(paths, fallbackFontPaths...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func openFonts(size int, paths ...string) (*fonts, error) {
	if size <= 0 {
		size = constants.DefaultFontSize
	}
	titleSize, smallSize := fontSizes(size)

	var errs []error
	for _, path := range fontCandidates(paths...) {
		f, err := openFontSet(path, titleSize, size, smallSize)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		internal.GetInternalLogger().Debug("Loaded font", "path", path, "size", size)
		return f, nil
	}
	return nil, fmt.Errorf("no usable font: %w", errors.Join(errs...))
}

func openFontSet(path string, title, body, small int) (*fonts, error) {
	f := &fonts{}
	var err error

	if f.Title, err = ttf.OpenFont(path, title); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Body, err = ttf.OpenFont(path, body); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Small, err = ttf.OpenFont(path, small); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Title.SetStyle(ttf.STYLE_BOLD)
	return f, nil
}

func (f *fonts) Close() {
	for _, font := range []*ttf.Font{f.Title, f.Body, f.Small} {
		if font != nil {
			font.Close()
		}
	}
}
