package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}

	assert.Equal(t, Rect{X: 10, Y: 10, W: 80, H: 30}, r.Inset(UniformPadding(10)))
	assert.Equal(t, Rect{X: 60, Y: 30, W: 0, H: 0}, r.Inset(UniformPadding(60).withTop(30)))
}

func (p Padding) withTop(v int32) Padding {
	p.Top = v
	return p
}

func TestCenterColumn(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 200, H: 100}

	rects := CenterColumn(area, []Size{{W: 100, H: 20}, {W: 50, H: 20}}, 10)
	assert.Equal(t, []Rect{
		{X: 50, Y: 25, W: 100, H: 20},
		{X: 75, Y: 55, W: 50, H: 20},
	}, rects)
}

func TestCenterColumn_Overflow(t *testing.T) {
	area := Rect{X: 10, Y: 10, W: 100, H: 20}

	rects := CenterColumn(area, []Size{{W: 300, H: 30}, {W: 10, H: 30}}, 5)
	assert.Equal(t, Rect{X: 10, Y: 10, W: 100, H: 30}, rects[0])
	assert.Equal(t, int32(45), rects[1].Y)
}

func TestCenterColumn_Empty(t *testing.T) {
	assert.Nil(t, CenterColumn(Rect{W: 10, H: 10}, nil, 5))
}
