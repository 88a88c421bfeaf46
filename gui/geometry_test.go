package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCenterSize(t *testing.T) {
	rect := RectFromCenterSize(Pos2{0, 0}, Vec2{4000, 4000})

	assert.Equal(t, Pos2{-2000, -2000}, rect.Min)
	assert.Equal(t, Pos2{2000, 2000}, rect.Max)
	assert.Equal(t, Pos2{0, 0}, rect.Center())
	assert.Equal(t, Vec2{4000, 4000}, rect.Size())
}

func TestRectFromMinMaxOrdersCorners(t *testing.T) {
	rect := RectFromMinMax(Pos2{10, 0}, Pos2{0, 20})

	assert.Equal(t, Pos2{0, 0}, rect.Min)
	assert.Equal(t, Pos2{10, 20}, rect.Max)
}

func TestRectIntersect(t *testing.T) {
	a := RectFromMinSize(Pos2{0, 0}, Vec2{100, 100})
	b := RectFromMinSize(Pos2{50, 60}, Vec2{100, 100})

	assert.True(t, a.Intersects(b))
	assert.Equal(t, Rect{Min: Pos2{50, 60}, Max: Pos2{100, 100}}, a.Intersect(b))

	c := RectFromMinSize(Pos2{200, 200}, Vec2{10, 10})
	assert.False(t, a.Intersects(c))
	assert.False(t, a.Intersect(c).IsPositive())
}

func TestRectContains(t *testing.T) {
	rect := RectFromMinSize(Pos2{10, 10}, Vec2{10, 10})

	assert.True(t, rect.Contains(Pos2{10, 10}))
	assert.True(t, rect.Contains(Pos2{15, 20}))
	assert.False(t, rect.Contains(Pos2{9, 15}))
	assert.False(t, rect.Contains(Pos2{15, 21}))
}

func TestRectUnionAndExtend(t *testing.T) {
	rect := Nothing.ExtendWith(Pos2{5, 5})
	assert.Equal(t, Rect{Min: Pos2{5, 5}, Max: Pos2{5, 5}}, rect)

	rect = rect.Union(RectFromMinSize(Pos2{0, 10}, Vec2{2, 2}))
	assert.Equal(t, Rect{Min: Pos2{0, 5}, Max: Pos2{5, 12}}, rect)

	assert.Equal(t, Rect{Min: Pos2{1, 6}, Max: Pos2{4, 11}}, rect.Expand(-1))
}

func TestColor32FromUnmultiplied(t *testing.T) {
	assert.Equal(t, Red, Color32FromUnmultiplied(255, 0, 0, 255))
	assert.Equal(t, Color32{128, 0, 64, 128}, Color32FromUnmultiplied(255, 0, 127, 128))
	assert.Equal(t, Transparent, Color32FromUnmultiplied(255, 255, 255, 0))

	assert.Equal(t, Color32{27, 27, 27, 255}, Gray(27))
	assert.Equal(t, Color32{0, 128, 0, 128}, Green.GammaMultiply(0.5))
}
