package sdlui

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
)

const keySpacing int32 = 3

// keySpan returns the width of key in half key units.
func keySpan(key screens.Key) int32 {
	switch key.Action {
	case screens.KeySpace:
		return 16
	case screens.KeyBackspace, screens.KeyShift, screens.KeySymbols:
		return 4
	case screens.KeyEnter:
		return 3
	default:
		return 2
	}
}

// keyboardRects lays the key grid out inside area. Rows are centered and the
// widest row decides the key size.
func keyboardRects(area internal.Rect, rows [][]screens.Key) [][]internal.Rect {
	if len(rows) == 0 {
		return nil
	}

	unit := area.W
	for _, row := range rows {
		var spans int32
		for _, key := range row {
			spans += keySpan(key)
		}
		if u := (area.W - keySpacing*int32(len(row)-1)) / spans; u < unit {
			unit = u
		}
	}

	keyHeight := (area.H - keySpacing*int32(len(rows)-1)) / int32(len(rows))

	rects := make([][]internal.Rect, len(rows))
	for r, row := range rows {
		width := keySpacing * int32(len(row)-1)
		for _, key := range row {
			width += keySpan(key) * unit
		}

		x := area.X + (area.W-width)/2
		y := area.Y + int32(r)*(keyHeight+keySpacing)

		rects[r] = make([]internal.Rect, len(row))
		for c, key := range row {
			w := keySpan(key) * unit
			rects[r][c] = internal.Rect{X: x, Y: y, W: w, H: keyHeight}
			x += w + keySpacing
		}
	}
	return rects
}

// drawKeyboard shows the text field on top of the on-screen keyboard.
func (s *screenRenderer) drawKeyboard(view *screens.View, kb *screens.Keyboard, cursorVisible bool, width, height int32) {
	area := internal.Rect{W: width, H: height}.Inset(internal.UniformPadding(screenPadding))

	field := s.fieldBlock(view, area.W, true, cursorVisible)
	field.draw(internal.Rect{X: area.X, Y: area.Y, W: area.W, H: field.size.H})

	footerHeight := int32(s.fonts.Small.Height()) + itemSpacing
	keysTop := area.Y + field.size.H + itemSpacing
	keysArea := internal.Rect{X: area.X, Y: keysTop, W: area.W, H: area.Y + area.H - footerHeight - keysTop}

	selectedRow, selectedCol := kb.Selected()
	mode := kb.Mode()

	for r, row := range keyboardRects(keysArea, kb.Rows()) {
		for c, rect := range row {
			key := kb.Rows()[r][c]
			selected := r == selectedRow && c == selectedCol

			switch {
			case selected:
				s.fillRect(rect, s.theme.HighlightColor)
			case key.Action == screens.KeyShift && mode == screens.KeyboardUpper,
				key.Action == screens.KeySymbols && mode == screens.KeyboardSymbols:
				s.fillRect(rect, s.theme.AccentColor)
			default:
				s.fillRect(rect, fieldBackColor)
			}
			s.strokeRect(rect, s.theme.HintColor)

			color := s.theme.TextColor
			if selected {
				color = s.theme.HighlightedTextColor
			}
			s.drawKeyLabel(kb, key, rect, color)
		}
	}

	hints := "A  " + s.tr.T("HintType", nil) + "     B  " + s.tr.T("HintBack", nil) +
		"     Start  " + s.tr.T("HintDone", nil)
	s.drawHints(internal.Rect{X: area.X, Y: area.Y + area.H - footerHeight, W: area.W, H: footerHeight}, hints)
}

func (s *screenRenderer) drawKeyLabel(kb *screens.Keyboard, key screens.Key, rect internal.Rect, color uint32) {
	font := s.fonts.Body
	label := kb.Value(key)

	switch key.Action {
	case screens.KeyBackspace:
		label = s.tr.T("KeyBackspace", nil)
	case screens.KeyEnter:
		label = s.tr.T("KeyEnter", nil)
	case screens.KeySpace:
		label = s.tr.T("KeySpace", nil)
	case screens.KeyShift:
		label = s.tr.T("KeyShift", nil)
	case screens.KeySymbols:
		label = s.tr.T("KeySymbols", nil)
	}
	if key.Action != screens.KeyCharacter {
		font = s.fonts.Small
	}

	texture, size, err := s.cache.Text(font, label, color)
	if err != nil || texture == nil {
		return
	}
	s.copyClipped(texture, internal.Rect{
		X: rect.X + max(0, (rect.W-size.W)/2),
		Y: rect.Y,
		W: rect.W,
		H: rect.H,
	}, 0)
}
