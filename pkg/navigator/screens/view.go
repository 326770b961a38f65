package screens

import "github.com/BrandonKowalski/navigator/pkg/navigator/internal"

// Button is a pressable element of a View.
type Button struct {
	ID    string        // Stable identifier, e.g. "first.next"
	Label string        // Localized label
	Icon  internal.Icon // Glyph drawn before the label
	Press func() error  // Navigation intent reported to the router
}

// View is what a screen asks a frontend to draw.
//
// Focusable elements are the input, if present, followed by the buttons in order.
type View struct {
	Route       string     // Pattern of the route that produced the view
	Title       string     // Screen heading
	Lines       []string   // Body text lines
	Input       *TextField // Editable field, nil when the screen has none
	Placeholder string     // Shown while Input is empty
	Buttons     []Button
}

// FocusCount returns the number of focusable elements.
func (v *View) FocusCount() int {
	n := len(v.Buttons)
	if v.Input != nil {
		n++
	}
	return n
}

// InputFocused reports whether focus index i is on the input.
func (v *View) InputFocused(i int) bool {
	return v.Input != nil && i == 0
}

// ButtonAt returns the button at focus index i.
func (v *View) ButtonAt(i int) (Button, bool) {
	if v.Input != nil {
		i--
	}
	if i < 0 || i >= len(v.Buttons) {
		return Button{}, false
	}
	return v.Buttons[i], true
}
