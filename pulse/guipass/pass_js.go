//go:build js

package guipass

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/halo/pulse"
)

// The browser backend has no scissor rects. Shapes outside of their clip rect
// are already dropped during tessellation, partially visible shapes are drawn in full.
const scissorSupported = false

func setScissor(*wgpu.RenderPassEncoder, pulse.Rectangle2u) {}

func endPass(pass *wgpu.RenderPassEncoder) error {
	pass.End()
	return nil
}
