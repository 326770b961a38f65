package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Size is the width and height of an element before placement.
type Size struct {
	W, H int32
}

// Inset shrinks r by p. Sizes never go negative.
func (r Rect) Inset(p Padding) Rect {
	out := Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// CenterColumn stacks items vertically with spacing between them, centering
// the column inside area and each item horizontally. Items wider than the
// area are clamped to its width.
func CenterColumn(area Rect, items []Size, spacing int32) []Rect {
	if len(items) == 0 {
		return nil
	}

	total := spacing * int32(len(items)-1)
	for _, item := range items {
		total += item.H
	}

	y := area.Y + (area.H-total)/2
	if y < area.Y {
		y = area.Y
	}

	out := make([]Rect, len(items))
	for i, item := range items {
		w := item.W
		if w > area.W {
			w = area.W
		}
		out[i] = Rect{X: area.X + (area.W-w)/2, Y: y, W: w, H: item.H}
		y += item.H + spacing
	}
	return out
}
