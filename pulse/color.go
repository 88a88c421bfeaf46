package pulse

import (
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/halo/glm"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)
var ColorRed = ColorLinearRGBA(1, 0, 0, 1)
var ColorGreen = ColorLinearRGBA(0, 1, 0, 1)
var ColorTransparent = ColorLinearRGBA(0, 0, 0, 0)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(LinearFromGamma(r), LinearFromGamma(g), LinearFromGamma(b), a)
}

// ToVec returns a glm.Vec4f containing the components of this Color instance in
// linear rgb space.
func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{
		c.r1 + 1,
		c.g1 + 1,
		c.b1 + 1,
		c.a1 + 1,
	}
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float32) {
	return c.ToVec().XYZW()
}

// ToWGPU converts the color into a clear value for a render pass. The
// clear value of a non srgb target is written as is, so it gets
// encoded to srgb first.
func (c Color) ToWGPU(target wgpu.TextureFormat) wgpu.Color {
	r, g, b, a := c.Components()

	if !IsSrgb(target) {
		r, g, b = GammaFromLinear(r), GammaFromLinear(g), GammaFromLinear(b)
	}

	return wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)}
}

// LinearFromGamma decodes an srgb encoded color component.
func LinearFromGamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}

// GammaFromLinear encodes a linear color component to srgb.
func GammaFromLinear(value float32) float32 {
	x := float64(value)

	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.0031308 {
		return float32(x * 12.92)
	}

	return float32(sign * (1.055*math.Pow(abs, 1/2.4) - 0.055))
}
