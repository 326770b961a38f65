package sdlui

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	screenPadding  int32 = 40
	itemSpacing    int32 = 16
	fieldPadding   int32 = 12
	buttonPadding  int32 = 14
	iconGap        int32 = 10
	fieldBackColor       = 0x323232
)

// block is one element of the centered column.
type block struct {
	size internal.Size
	draw func(rect internal.Rect)
}

// screenRenderer draws screens.View values with the theme.
type screenRenderer struct {
	renderer *sdl.Renderer
	fonts    *fonts
	cache    *TextureCache
	theme    internal.Theme
	tr       screens.Translator
}

func newScreenRenderer(renderer *sdl.Renderer, f *fonts, theme internal.Theme, tr screens.Translator) *screenRenderer {
	return &screenRenderer{
		renderer: renderer,
		fonts:    f,
		cache:    NewTextureCache(renderer),
		theme:    theme,
		tr:       tr,
	}
}

func (s *screenRenderer) Destroy() {
	s.cache.Destroy()
}

func (s *screenRenderer) draw(view *screens.View, focus int, cursorVisible bool, width, height int32) {
	area := internal.Rect{W: width, H: height}.Inset(internal.UniformPadding(screenPadding))

	footerHeight := int32(s.fonts.Small.Height()) + itemSpacing
	body := area
	body.H -= footerHeight

	var blocks []block
	blocks = append(blocks, s.titleBlock(view.Title))

	for _, line := range view.Lines {
		blocks = append(blocks, s.textBlock(s.fonts.Body, line, s.theme.TextColor))
	}

	if view.Input != nil {
		blocks = append(blocks, s.fieldBlock(view, body.W*3/5, view.InputFocused(focus), cursorVisible))
	}

	for i, button := range view.Buttons {
		index := i
		if view.Input != nil {
			index++
		}
		blocks = append(blocks, s.buttonBlock(button, index == focus))
	}

	sizes := make([]internal.Size, len(blocks))
	for i, b := range blocks {
		sizes[i] = b.size
	}

	for i, rect := range internal.CenterColumn(body, sizes, itemSpacing) {
		blocks[i].draw(rect)
	}

	s.drawFooter(internal.Rect{X: area.X, Y: area.Y + area.H - footerHeight, W: area.W, H: footerHeight})
}

func (s *screenRenderer) textBlock(font *ttf.Font, text string, color uint32) block {
	texture, size, err := s.cache.Text(font, text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
	}

	return block{
		size: size,
		draw: func(rect internal.Rect) {
			s.copy(texture, rect)
		},
	}
}

// titleBlock is a title text block with extra room below it.
func (s *screenRenderer) titleBlock(title string) block {
	text := s.textBlock(s.fonts.Title, title, s.theme.TextColor)

	return block{
		size: internal.Size{W: text.size.W, H: text.size.H + constants.DefaultTitleSpacing},
		draw: func(rect internal.Rect) {
			text.draw(internal.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: text.size.H})
		},
	}
}

func (s *screenRenderer) fieldBlock(view *screens.View, width int32, focused, cursorVisible bool) block {
	font := s.fonts.Body
	height := int32(font.Height()) + fieldPadding*2

	return block{
		size: internal.Size{W: width, H: height},
		draw: func(rect internal.Rect) {
			s.fillRect(rect, fieldBackColor)

			border := s.theme.HintColor
			if focused {
				border = s.theme.AccentColor
			}
			s.strokeRect(rect, border)

			inner := rect.Inset(internal.UniformPadding(fieldPadding))
			value := view.Input.Value()

			if value == "" {
				texture, _, _ := s.cache.Text(font, view.Placeholder, s.theme.HintColor)
				s.copyClipped(texture, inner, 0)
				if focused && cursorVisible {
					s.fillRect(internal.Rect{X: inner.X, Y: inner.Y, W: 2, H: inner.H}, s.theme.TextColor)
				}
				return
			}

			cursorX := textWidth(font, string([]rune(value)[:view.Input.Cursor()]))
			offset := int32(0)
			if cursorX > inner.W {
				offset = cursorX - inner.W
			}

			texture, _, err := s.cache.Text(font, value, s.theme.TextColor)
			if err != nil {
				internal.GetInternalLogger().Error("Failed to render field", "error", err)
			}
			s.copyClipped(texture, inner, offset)

			if focused && cursorVisible {
				s.fillRect(internal.Rect{X: inner.X + cursorX - offset, Y: inner.Y, W: 2, H: inner.H}, s.theme.TextColor)
			}
		},
	}
}

func (s *screenRenderer) buttonBlock(button screens.Button, focused bool) block {
	labelColor := s.theme.ButtonLabelColor
	if focused {
		labelColor = s.theme.HighlightedTextColor
	}

	label, labelSize, err := s.cache.Text(s.fonts.Body, button.Label, labelColor)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render button", "button", button.ID, "error", err)
	}

	iconSize := int32(s.fonts.Body.Height())
	var icon *sdl.Texture
	if button.Icon != internal.IconNone {
		if icon, err = s.cache.Icon(button.Icon, iconSize); err != nil {
			internal.GetInternalLogger().Warn("Failed to load icon", "button", button.ID, "error", err)
		}
	}

	content := labelSize.W
	if icon != nil {
		content += iconSize + iconGap
	}

	return block{
		size: internal.Size{W: content + buttonPadding*2, H: iconSize + buttonPadding},
		draw: func(rect internal.Rect) {
			if focused {
				s.fillRect(rect, s.theme.HighlightColor)
			} else {
				s.strokeRect(rect, s.theme.AccentColor)
			}

			x := rect.X + buttonPadding
			if icon != nil {
				r, g, b, _ := internal.HexToRGBA(labelColor)
				icon.SetColorMod(r, g, b)
				s.copy(icon, internal.Rect{X: x, Y: rect.Y + (rect.H-iconSize)/2, W: iconSize, H: iconSize})
				x += iconSize + iconGap
			}
			s.copy(label, internal.Rect{X: x, Y: rect.Y + (rect.H-labelSize.H)/2, W: labelSize.W, H: labelSize.H})
		},
	}
}

func (s *screenRenderer) drawFooter(area internal.Rect) {
	s.drawHints(area, "A  "+s.tr.T("HintSelect", nil)+"     B  "+s.tr.T("HintBack", nil))
}

func (s *screenRenderer) drawHints(area internal.Rect, hints string) {
	texture, size, err := s.cache.Text(s.fonts.Small, hints, s.theme.HintColor)
	if err != nil || texture == nil {
		return
	}

	rects := internal.CenterColumn(area, []internal.Size{size}, 0)
	s.copy(texture, rects[0])
}

func (s *screenRenderer) copy(texture *sdl.Texture, rect internal.Rect) {
	if texture == nil {
		return
	}
	s.renderer.Copy(texture, nil, sdlRect(rect))
}

// copyClipped draws texture into rect starting offset pixels into the
// texture, cutting off whatever does not fit.
func (s *screenRenderer) copyClipped(texture *sdl.Texture, rect internal.Rect, offset int32) {
	if texture == nil {
		return
	}

	size := textureSize(texture)
	w := size.W - offset
	if w > rect.W {
		w = rect.W
	}
	if w <= 0 {
		return
	}

	src := &sdl.Rect{X: offset, Y: 0, W: w, H: size.H}
	dst := &sdl.Rect{X: rect.X, Y: rect.Y + (rect.H-size.H)/2, W: w, H: size.H}
	s.renderer.Copy(texture, src, dst)
}

func (s *screenRenderer) fillRect(rect internal.Rect, color uint32) {
	r, g, b, a := internal.HexToRGBA(color)
	s.renderer.SetDrawColor(r, g, b, a)
	s.renderer.FillRect(sdlRect(rect))
}

func (s *screenRenderer) strokeRect(rect internal.Rect, color uint32) {
	r, g, b, a := internal.HexToRGBA(color)
	s.renderer.SetDrawColor(r, g, b, a)
	s.renderer.DrawRect(sdlRect(rect))
}

func sdlRect(r internal.Rect) *sdl.Rect {
	return &sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func textWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
