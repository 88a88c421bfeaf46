package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Rad is an angle in radians.
type Rad float32

const FullTurn Rad = 2 * math.Pi

// Sincos returns the sine and the cosine of the given angle.
func Sincos(r Rad) (sin, cos float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}

// UnitVec2 returns the point on the unit circle at the given angle.
func UnitVec2(r Rad) Vec2f {
	s, c := Sincos(r)
	return Vec2f{c, s}
}
