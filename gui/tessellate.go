package gui

import (
	"fmt"
	"math"
	"slices"

	"github.com/oliverbestmann/halo/glm"
)

// Tessellator converts shapes into triangle meshes. All vertex positions are in points.
type Tessellator struct {
	pixelsPerPoint float32
	whiteUV        Pos2

	// reused between shapes
	path []Pos2
}

func NewTessellator(pixelsPerPoint float32, whiteUV Pos2) *Tessellator {
	return &Tessellator{pixelsPerPoint: pixelsPerPoint, whiteUV: whiteUV}
}

// Tessellate converts the shapes in order. Consecutive shapes with the same clip rect
// and texture end up in the same mesh. Shapes outside their clip rect are skipped.
func (t *Tessellator) Tessellate(shapes []ClippedShape) []ClippedMesh {
	var meshes []ClippedMesh

	for _, clipped := range shapes {
		clip := clipped.ClipRect

		if !clip.IsPositive() || !clip.Intersects(clipped.Shape.VisualBounds()) {
			continue
		}

		t.tessellateShape(&meshes, clip, clipped.Shape)
	}

	return slices.DeleteFunc(meshes, func(mesh ClippedMesh) bool {
		return mesh.Mesh.IsEmpty()
	})
}

func (t *Tessellator) tessellateShape(meshes *[]ClippedMesh, clip Rect, shape Shape) {
	switch shape := shape.(type) {
	case RectShape:
		mesh := meshFor(meshes, clip, TextureFont)

		t.path = t.roundedRectPath(t.path[:0], shape.Rect, shape.Rounding)
		t.fillConvex(mesh, t.path, shape.Fill)
		t.strokeClosed(mesh, t.path, shape.Stroke)

	case CircleShape:
		mesh := meshFor(meshes, clip, TextureFont)

		t.path = t.circlePath(t.path[:0], shape.Center, shape.Radius)
		t.fillConvex(mesh, t.path, shape.Fill)
		t.strokeClosed(mesh, t.path, shape.Stroke)

	case TextShape:
		if shape.Color.IsTransparent() {
			return
		}

		mesh := meshFor(meshes, clip, TextureFont)

		for _, glyph := range shape.Galley.Glyphs {
			quad(mesh, glyph.Rect.Translate(shape.Pos), glyph.UV, shape.Color)
		}

	case ImageShape:
		mesh := meshFor(meshes, clip, shape.Texture)
		quad(mesh, shape.Rect, shape.UV, shape.Tint)

	default:
		panic(fmt.Sprintf("unknown shape type %T", shape))
	}
}

// meshFor returns the last mesh if it shares clip rect and texture, or appends a new one.
func meshFor(meshes *[]ClippedMesh, clip Rect, texture TextureID) *Mesh {
	if count := len(*meshes); count > 0 {
		last := &(*meshes)[count-1]
		if last.ClipRect == clip && last.Mesh.Texture == texture {
			return &last.Mesh
		}
	}

	*meshes = append(*meshes, ClippedMesh{
		ClipRect: clip,
		Mesh:     Mesh{Texture: texture},
	})

	return &(*meshes)[len(*meshes)-1].Mesh
}

// arcSegments returns the number of segments for a quarter circle
// of the given radius in points.
func (t *Tessellator) arcSegments(radius float32) int {
	segments := int(math.Ceil(math.Sqrt(float64(radius*t.pixelsPerPoint)) * 1.5))
	return min(max(segments, 2), 32)
}

// roundedRectPath appends the outline of the rect in clockwise order, starting at the top left.
func (t *Tessellator) roundedRectPath(path []Pos2, rect Rect, rounding float32) []Pos2 {
	radius := min(rounding, rect.Width()/2, rect.Height()/2)
	if radius <= 0 {
		return append(path, rect.LeftTop(), rect.RightTop(), rect.RightBottom(), rect.LeftBottom())
	}

	inner := rect.Expand(-radius)

	corners := []struct {
		center Pos2
		start  glm.Rad
	}{
		{inner.LeftTop(), glm.FullTurn / 2},
		{inner.RightTop(), glm.FullTurn * 3 / 4},
		{inner.RightBottom(), 0},
		{inner.LeftBottom(), glm.FullTurn / 4},
	}

	segments := t.arcSegments(radius)

	for _, corner := range corners {
		for idx := range segments + 1 {
			angle := corner.start + glm.FullTurn/4*glm.Rad(idx)/glm.Rad(segments)
			path = append(path, corner.center.Add(glm.UnitVec2(angle).MulScalar(radius)))
		}
	}

	return path
}

func (t *Tessellator) circlePath(path []Pos2, center Pos2, radius float32) []Pos2 {
	if radius <= 0 {
		return path
	}

	count := 4 * t.arcSegments(radius)

	for idx := range count {
		angle := glm.FullTurn * glm.Rad(idx) / glm.Rad(count)
		path = append(path, center.Add(glm.UnitVec2(angle).MulScalar(radius)))
	}

	return path
}

// fillConvex fills a convex polygon using a triangle fan.
func (t *Tessellator) fillConvex(mesh *Mesh, path []Pos2, color Color32) {
	if len(path) < 3 || color.IsTransparent() {
		return
	}

	first := uint32(len(mesh.Vertices))

	for _, pos := range path {
		mesh.vertex(pos, t.whiteUV, color)
	}

	for idx := uint32(1); idx < uint32(len(path))-1; idx++ {
		mesh.triangle(first, first+idx, first+idx+1)
	}
}

// strokeClosed draws a line of the strokes width centered on the closed path.
func (t *Tessellator) strokeClosed(mesh *Mesh, path []Pos2, stroke Stroke) {
	if len(path) < 2 || stroke.IsEmpty() {
		return
	}

	halfWidth := stroke.Width / 2
	first := uint32(len(mesh.Vertices))
	count := uint32(len(path))

	for idx, pos := range path {
		prev := path[(idx+len(path)-1)%len(path)]
		next := path[(idx+1)%len(path)]

		offset := miterOffset(prev, pos, next).MulScalar(halfWidth)

		mesh.vertex(pos.Add(offset), t.whiteUV, stroke.Color)
		mesh.vertex(pos.Sub(offset), t.whiteUV, stroke.Color)
	}

	for idx := range count {
		a := first + 2*idx
		b := first + 2*((idx+1)%count)

		mesh.triangle(a, a+1, b)
		mesh.triangle(a+1, b+1, b)
	}
}

// miterOffset returns the direction to offset pos by to get a line of unit half width.
func miterOffset(prev, pos, next Pos2) Vec2 {
	normalIn := pos.Sub(prev).Normalize().Perp()
	normalOut := next.Sub(pos).Normalize().Perp()

	normal := normalIn.Add(normalOut).Normalize()
	if normal == (Vec2{}) {
		return normalIn
	}

	// limit the miter length at sharp corners
	dot := max(normal.Dot(normalIn), normal.Dot(normalOut), 0.25)

	return normal.MulScalar(1 / dot)
}

func quad(mesh *Mesh, rect Rect, uv Rect, color Color32) {
	if color.IsTransparent() {
		return
	}

	a := mesh.vertex(rect.LeftTop(), uv.LeftTop(), color)
	b := mesh.vertex(rect.RightTop(), uv.RightTop(), color)
	c := mesh.vertex(rect.RightBottom(), uv.RightBottom(), color)
	d := mesh.vertex(rect.LeftBottom(), uv.LeftBottom(), color)

	mesh.triangle(a, b, c)
	mesh.triangle(a, c, d)
}
