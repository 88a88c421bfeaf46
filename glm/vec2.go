package glm

import "math"

type Vec2[T numeric] [2]T

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs[0] + rhs[0], lhs[1] + rhs[1]}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs[0] - rhs[0], lhs[1] - rhs[1]}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs[0] * rhs[0], lhs[1] * rhs[1]}
}

func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs[0] / rhs[0], lhs[1] / rhs[1]}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{lhs[0] * s, lhs[1] * s}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1]
}

func (lhs Vec2[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

// Normalize returns the vector scaled to unit length. The zero vector
// is returned unchanged.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return Vec2[T]{lhs[0] / length, lhs[1] / length}
}

// Perp returns the vector rotated by 90 degrees counter clockwise.
func (lhs Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{-lhs[1], lhs[0]}
}

// Min returns the component wise minimum.
func (lhs Vec2[T]) Min(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{min(lhs[0], rhs[0]), min(lhs[1], rhs[1])}
}

// Max returns the component wise maximum.
func (lhs Vec2[T]) Max(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{max(lhs[0], rhs[0]), max(lhs[1], rhs[1])}
}

func (lhs Vec2[T]) XY() (x, y T) {
	return lhs[0], lhs[1]
}

// Vec2Cast converts the components of a vector into another numeric type.
func Vec2Cast[R, T numeric](v Vec2[T]) Vec2[R] {
	return Vec2[R]{R(v[0]), R(v[1])}
}
