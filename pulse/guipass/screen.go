package guipass

import (
	"math"

	"github.com/oliverbestmann/halo/glm"
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

// ScreenDescriptor describes the render target shared by the gui and the gpu.
type ScreenDescriptor struct {
	PhysicalWidth  uint32
	PhysicalHeight uint32

	// physical pixels per point
	ScaleFactor float32
}

// SizeInPoints returns the logical size of the screen.
func (s ScreenDescriptor) SizeInPoints() glm.Vec2f {
	size := glm.Vec2f{float32(s.PhysicalWidth), float32(s.PhysicalHeight)}
	return size.MulScalar(1 / s.ScaleFactor)
}

// scissorRect converts a clip rect in points into physical pixels, clamped to
// the screen. Returns false if nothing of the clip rect is visible.
func scissorRect(clip gui.Rect, screen ScreenDescriptor) (pulse.Rectangle2u, bool) {
	toPixels := func(value float32, round func(float64) float64, limit uint32) uint32 {
		pixels := round(float64(value * screen.ScaleFactor))
		return uint32(min(max(pixels, 0), float64(limit)))
	}

	minX := toPixels(clip.Min[0], math.Floor, screen.PhysicalWidth)
	minY := toPixels(clip.Min[1], math.Floor, screen.PhysicalHeight)
	maxX := toPixels(clip.Max[0], math.Ceil, screen.PhysicalWidth)
	maxY := toPixels(clip.Max[1], math.Ceil, screen.PhysicalHeight)

	if maxX <= minX || maxY <= minY {
		return pulse.Rectangle2u{}, false
	}

	return pulse.RectangleFromPoints(glm.Vec2u{minX, minY}, glm.Vec2u{maxX, maxY}), true
}
