package gui

// Shape is something the painter can draw. The concrete shapes
// are RectShape, CircleShape, TextShape and ImageShape.
type Shape interface {
	// VisualBounds returns the area covered by the shape.
	VisualBounds() Rect

	isShape()
}

// Stroke describes an outline.
type Stroke struct {
	Width float32
	Color Color32
}

func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color.IsTransparent()
}

type RectShape struct {
	Rect     Rect
	Rounding float32
	Fill     Color32
	Stroke   Stroke
}

func (s RectShape) VisualBounds() Rect {
	return s.Rect.Expand(s.Stroke.Width / 2)
}

type CircleShape struct {
	Center Pos2
	Radius float32
	Fill   Color32
	Stroke Stroke
}

func (s CircleShape) VisualBounds() Rect {
	radius := s.Radius + s.Stroke.Width/2
	return RectFromCenterSize(s.Center, Vec2{2 * radius, 2 * radius})
}

// TextShape draws a laid out text with its top left corner at Pos.
type TextShape struct {
	Pos    Pos2
	Galley *Galley
	Color  Color32
}

func (s TextShape) VisualBounds() Rect {
	return RectFromMinSize(s.Pos, s.Galley.Size)
}

// ImageShape draws a region of a user texture.
type ImageShape struct {
	Rect    Rect
	Texture TextureID

	// normalized texture coordinates
	UV Rect

	// multiplied with each texel
	Tint Color32
}

func (s ImageShape) VisualBounds() Rect {
	return s.Rect
}

func (RectShape) isShape()   {}
func (CircleShape) isShape() {}
func (TextShape) isShape()   {}
func (ImageShape) isShape()  {}

// ClippedShape is a shape that must only be drawn inside ClipRect.
type ClippedShape struct {
	ClipRect Rect
	Shape    Shape
}
