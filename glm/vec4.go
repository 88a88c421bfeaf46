package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
		lhs[3] * rhs[3],
	}
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{lhs[0] * s, lhs[1] * s, lhs[2] * s, lhs[3] * s}
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	return lhs[0], lhs[1], lhs[2], lhs[3]
}

// ToWGPU returns the vector as a plain array, ready to be written into a gpu buffer.
func (lhs Vec4[T]) ToWGPU() [4]T {
	return lhs
}
