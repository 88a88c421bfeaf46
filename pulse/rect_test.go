package pulse

import (
	"testing"

	"github.com/oliverbestmann/halo/glm"
	"github.com/stretchr/testify/assert"
)

func TestRectangleFromPointsNormalizes(t *testing.T) {
	r := RectangleFromPoints(glm.Vec2f{10, 20}, glm.Vec2f{0, 5})
	assert.Equal(t, glm.Vec2f{0, 5}, r.Min)
	assert.Equal(t, glm.Vec2f{10, 20}, r.Max)
}

func TestRectangleIntersect(t *testing.T) {
	a := RectangleFromXYWH[int32](0, 0, 100, 100)
	b := RectangleFromXYWH[int32](50, 60, 100, 100)

	assert.Equal(t, RectangleFromXYWH[int32](50, 60, 50, 40), a.Intersect(b))

	c := RectangleFromXYWH[int32](200, 200, 10, 10)
	assert.True(t, a.Intersect(c).IsEmpty())
}

func TestRectangleContains(t *testing.T) {
	outer := RectangleFromXYWH[uint32](0, 0, 64, 64)

	assert.True(t, outer.Contains(RectangleFromXYWH[uint32](8, 8, 16, 16)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(RectangleFromXYWH[uint32](60, 60, 16, 16)))
}
