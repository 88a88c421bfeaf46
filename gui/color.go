package gui

// Color32 is an srgb color with premultiplied alpha, one byte per channel.
type Color32 [4]uint8

var (
	Transparent = Color32{0, 0, 0, 0}
	Black       = Color32{0, 0, 0, 255}
	White       = Color32{255, 255, 255, 255}
	Red         = Color32{255, 0, 0, 255}
	Green       = Color32{0, 255, 0, 255}
	Blue        = Color32{0, 0, 255, 255}
)

// Gray returns an opaque gray of the given srgb lightness.
func Gray(l uint8) Color32 {
	return Color32{l, l, l, 255}
}

// Color32FromUnmultiplied creates a color from srgb values with straight alpha.
func Color32FromUnmultiplied(r, g, b, a uint8) Color32 {
	if a == 255 {
		return Color32{r, g, b, a}
	}

	premultiply := func(c uint8) uint8 {
		return uint8((uint32(c)*uint32(a) + 127) / 255)
	}

	return Color32{premultiply(r), premultiply(g), premultiply(b), a}
}

func (c Color32) IsTransparent() bool {
	return c == Transparent
}

func (c Color32) Alpha() uint8 {
	return c[3]
}

// GammaMultiply scales all channels by the given factor in gamma space.
func (c Color32) GammaMultiply(factor float32) Color32 {
	factor = min(max(factor, 0), 1)

	scale := func(v uint8) uint8 {
		return uint8(float32(v)*factor + 0.5)
	}

	return Color32{scale(c[0]), scale(c[1]), scale(c[2]), scale(c[3])}
}
