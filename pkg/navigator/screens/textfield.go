package screens

import (
	"unicode"
	"unicode/utf8"
)

// TextField is the editable value behind the first screen's input.
// It is held by the caller, not by the router; only its value at the time of
// navigation is passed on as a route parameter.
type TextField struct {
	runes   []rune
	cursor  int
	maxLen  int
	changed func(value string)
}

// NewTextField creates an empty field accepting at most maxLen runes.
// maxLen <= 0 means unlimited.
func NewTextField(maxLen int) *TextField {
	return &TextField{maxLen: maxLen}
}

// OnChange registers a callback invoked after every edit.
func (f *TextField) OnChange(fn func(value string)) {
	f.changed = fn
}

func (f *TextField) Value() string {
	return string(f.runes)
}

// Cursor returns the cursor position in runes.
func (f *TextField) Cursor() int {
	return f.cursor
}

// SetValue replaces the content and moves the cursor to the end.
func (f *TextField) SetValue(value string) {
	f.runes = f.clip([]rune(value))
	f.cursor = len(f.runes)
	f.notify()
}

// Insert types s at the cursor. Control characters are dropped.
func (f *TextField) Insert(s string) {
	if !utf8.ValidString(s) {
		return
	}

	var typed []rune
	for _, r := range s {
		if !unicode.IsControl(r) {
			typed = append(typed, r)
		}
	}
	if len(typed) == 0 {
		return
	}

	if f.maxLen > 0 {
		room := f.maxLen - len(f.runes)
		if room <= 0 {
			return
		}
		if len(typed) > room {
			typed = typed[:room]
		}
	}

	out := make([]rune, 0, len(f.runes)+len(typed))
	out = append(out, f.runes[:f.cursor]...)
	out = append(out, typed...)
	out = append(out, f.runes[f.cursor:]...)
	f.runes = out
	f.cursor += len(typed)
	f.notify()
}

// Backspace deletes the rune before the cursor.
func (f *TextField) Backspace() {
	if f.cursor == 0 {
		return
	}
	f.runes = append(f.runes[:f.cursor-1], f.runes[f.cursor:]...)
	f.cursor--
	f.notify()
}

// Delete deletes the rune under the cursor.
func (f *TextField) Delete() {
	if f.cursor >= len(f.runes) {
		return
	}
	f.runes = append(f.runes[:f.cursor], f.runes[f.cursor+1:]...)
	f.notify()
}

func (f *TextField) MoveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *TextField) MoveRight() {
	if f.cursor < len(f.runes) {
		f.cursor++
	}
}

func (f *TextField) Home() {
	f.cursor = 0
}

func (f *TextField) End() {
	f.cursor = len(f.runes)
}

// Clear empties the field.
func (f *TextField) Clear() {
	f.SetValue("")
}

func (f *TextField) clip(r []rune) []rune {
	if f.maxLen > 0 && len(r) > f.maxLen {
		return r[:f.maxLen]
	}
	return r
}

func (f *TextField) notify() {
	if f.changed != nil {
		f.changed(f.Value())
	}
}
