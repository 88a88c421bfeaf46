package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2f{1, 2}
	b := Vec2f{3, 5}

	assert.Equal(t, Vec2f{4, 7}, a.Add(b))
	assert.Equal(t, Vec2f{-2, -3}, a.Sub(b))
	assert.Equal(t, Vec2f{3, 10}, a.Mul(b))
	assert.Equal(t, Vec2f{2, 4}, a.MulScalar(2))
	assert.Equal(t, float32(13), a.Dot(b))
	assert.Equal(t, Vec2f{1, 2}, a.Min(b))
	assert.Equal(t, Vec2f{3, 5}, a.Max(b))
	assert.Equal(t, Vec2f{-2, 1}, a.Perp())
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2f{3, 4}.Normalize()
	assert.InDelta(t, 0.6, n[0], 1e-6)
	assert.InDelta(t, 0.8, n[1], 1e-6)

	assert.Equal(t, Vec2f{}, Vec2f{}.Normalize())
}

func TestVec2Cast(t *testing.T) {
	assert.Equal(t, Vec2u{3, 4}, Vec2Cast[uint32](Vec2f{3.7, 4.2}))
}

func TestUnitVec2(t *testing.T) {
	v := UnitVec2(FullTurn / 4)
	assert.InDelta(t, 0, v[0], 1e-5)
	assert.InDelta(t, 1, v[1], 1e-5)
}
