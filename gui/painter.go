package gui

// Painter adds shapes to a layer. All shapes are clipped to the painters clip rect.
type Painter struct {
	fonts    *Fonts
	shapes   *[]ClippedShape
	clipRect Rect
}

func (p Painter) ClipRect() Rect {
	return p.clipRect
}

// WithClipRect returns a painter clipping to the intersection
// of the current and the given clip rect.
func (p Painter) WithClipRect(rect Rect) Painter {
	p.clipRect = p.clipRect.Intersect(rect)
	return p
}

func (p Painter) Add(shape Shape) {
	*p.shapes = append(*p.shapes, ClippedShape{ClipRect: p.clipRect, Shape: shape})
}

func (p Painter) RectFilled(rect Rect, rounding float32, fill Color32) {
	p.Add(RectShape{Rect: rect, Rounding: rounding, Fill: fill})
}

func (p Painter) RectStroke(rect Rect, rounding float32, stroke Stroke) {
	p.Add(RectShape{Rect: rect, Rounding: rounding, Stroke: stroke})
}

func (p Painter) CircleFilled(center Pos2, radius float32, fill Color32) {
	p.Add(CircleShape{Center: center, Radius: radius, Fill: fill})
}

func (p Painter) CircleStroke(center Pos2, radius float32, stroke Stroke) {
	p.Add(CircleShape{Center: center, Radius: radius, Stroke: stroke})
}

// Text lays out the text with the proportional font and places its top
// left corner at pos. Returns the area covered by the text.
func (p Painter) Text(pos Pos2, text string, color Color32) Rect {
	return p.Galley(pos, p.fonts.Layout(Proportional, text), color)
}

func (p Painter) Galley(pos Pos2, galley *Galley, color Color32) Rect {
	p.Add(TextShape{Pos: pos, Galley: galley, Color: color})
	return RectFromMinSize(pos, galley.Size)
}

// Image draws the uv region of a texture registered with the renderer.
func (p Painter) Image(texture TextureID, rect Rect, uv Rect, tint Color32) {
	p.Add(ImageShape{Rect: rect, Texture: texture, UV: uv, Tint: tint})
}
