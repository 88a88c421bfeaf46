package pulse

import (
	"fmt"

	"github.com/oliverbestmann/halo/glm"
	"golang.org/x/exp/constraints"
)

type numeric interface {
	constraints.Integer | constraints.Float
}

type Rectangle2f = Rectangle2[float32]
type Rectangle2u = Rectangle2[uint32]

type Rectangle2[T numeric] struct {
	Min glm.Vec2[T]
	Max glm.Vec2[T]
}

func RectangleFromXYWH[T numeric](x, y, w, h T) Rectangle2[T] {
	return RectangleFromSize(glm.Vec2[T]{x, y}, glm.Vec2[T]{w, h})
}

func RectangleFromSize[T numeric](pos glm.Vec2[T], size glm.Vec2[T]) Rectangle2[T] {
	return RectangleFromPoints[T](pos, pos.Add(size))
}

func RectangleFromPoints[T numeric](a, b glm.Vec2[T]) Rectangle2[T] {
	return Rectangle2[T]{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

// Intersect returns the overlap of both rectangles. The result
// is empty if the rectangles do not overlap.
func (r Rectangle2[T]) Intersect(other Rectangle2[T]) Rectangle2[T] {
	result := Rectangle2[T]{
		Min: r.Min.Max(other.Min),
		Max: r.Max.Min(other.Max),
	}

	if result.Min[0] > result.Max[0] || result.Min[1] > result.Max[1] {
		return Rectangle2[T]{Min: result.Min, Max: result.Min}
	}

	return result
}

func (r Rectangle2[T]) Contains(other Rectangle2[T]) bool {
	return r.Min[0] <= other.Min[0] && r.Min[1] <= other.Min[1] &&
		r.Max[0] >= other.Max[0] && r.Max[1] >= other.Max[1]
}

func (r Rectangle2[T]) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Rectangle2[T]) Size() glm.Vec2[T] {
	return r.Max.Sub(r.Min)
}

func (r Rectangle2[T]) Width() T {
	return r.Max[0] - r.Min[0]
}

func (r Rectangle2[T]) Height() T {
	return r.Max[1] - r.Min[1]
}

func (r Rectangle2[T]) XYWH() (T, T, T, T) {
	x, y := r.Min.XY()
	w, h := r.Size().XY()
	return x, y, w, h
}

func (r Rectangle2[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.Min[0], r.Min[1], r.Width(), r.Height())
}
