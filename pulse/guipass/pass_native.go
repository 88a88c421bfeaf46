//go:build !js

package guipass

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/halo/pulse"
)

// scissorSupported reports whether draws are clipped to their clip rect on the gpu.
const scissorSupported = true

func setScissor(pass *wgpu.RenderPassEncoder, rect pulse.Rectangle2u) {
	pass.SetScissorRect(rect.XYWH())
}

func endPass(pass *wgpu.RenderPassEncoder) error {
	return pass.End()
}
