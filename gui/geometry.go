package gui

import (
	"math"

	"github.com/oliverbestmann/halo/glm"
)

// Pos2 is a position in points.
type Pos2 = glm.Vec2f

// Vec2 is a size or an offset in points.
type Vec2 = glm.Vec2f

// Rect is an axis aligned rectangle in points.
type Rect struct {
	Min Pos2
	Max Pos2
}

// Everything contains every representable position.
var Everything = Rect{
	Min: Pos2{-math.MaxFloat32, -math.MaxFloat32},
	Max: Pos2{math.MaxFloat32, math.MaxFloat32},
}

// Nothing is the inverse of Everything, extending it by any
// point yields a rect containing just that point.
var Nothing = Rect{
	Min: Pos2{math.MaxFloat32, math.MaxFloat32},
	Max: Pos2{-math.MaxFloat32, -math.MaxFloat32},
}

func RectFromMinMax(a, b Pos2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

func RectFromMinSize(min Pos2, size Vec2) Rect {
	return RectFromMinMax(min, min.Add(size))
}

func RectFromCenterSize(center Pos2, size Vec2) Rect {
	half := size.MulScalar(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Width() float32 {
	return r.Max[0] - r.Min[0]
}

func (r Rect) Height() float32 {
	return r.Max[1] - r.Min[1]
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Center() Pos2 {
	return r.Min.Add(r.Max).MulScalar(0.5)
}

// IsPositive returns true if the rect has a positive area.
func (r Rect) IsPositive() bool {
	return r.Min[0] < r.Max[0] && r.Min[1] < r.Max[1]
}

func (r Rect) Contains(p Pos2) bool {
	return r.Min[0] <= p[0] && p[0] <= r.Max[0] &&
		r.Min[1] <= p[1] && p[1] <= r.Max[1]
}

func (r Rect) Intersects(other Rect) bool {
	return r.Min[0] <= other.Max[0] && other.Min[0] <= r.Max[0] &&
		r.Min[1] <= other.Max[1] && other.Min[1] <= r.Max[1]
}

// Intersect returns the overlapping area. The result is not
// positive if both rects do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{Min: r.Min.Max(other.Min), Max: r.Max.Min(other.Max)}
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	return Rect{Min: r.Min.Min(other.Min), Max: r.Max.Max(other.Max)}
}

// ExtendWith returns the smallest rect containing r and p.
func (r Rect) ExtendWith(p Pos2) Rect {
	return Rect{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Expand grows the rect by amount on all sides. Negative amounts shrink it.
func (r Rect) Expand(amount float32) Rect {
	delta := Vec2{amount, amount}
	return Rect{Min: r.Min.Sub(delta), Max: r.Max.Add(delta)}
}

func (r Rect) Translate(offset Vec2) Rect {
	return Rect{Min: r.Min.Add(offset), Max: r.Max.Add(offset)}
}

// Scale multiplies all coordinates by the given factor.
func (r Rect) Scale(factor float32) Rect {
	return Rect{Min: r.Min.MulScalar(factor), Max: r.Max.MulScalar(factor)}
}

func (r Rect) LeftTop() Pos2 {
	return r.Min
}

func (r Rect) RightTop() Pos2 {
	return Pos2{r.Max[0], r.Min[1]}
}

func (r Rect) RightBottom() Pos2 {
	return r.Max
}

func (r Rect) LeftBottom() Pos2 {
	return Pos2{r.Min[0], r.Max[1]}
}
