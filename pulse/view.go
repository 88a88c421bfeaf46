package pulse

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// View holds the configuration of the presentable surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

// NewView configures the surface of the given context for rendering using its
// preferred pixel format with vsync gated fifo presentation.
func NewView(ctx *Context, width, height uint32) (*View, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	config, err := NewSurfaceConfiguration(caps, width, height)
	if err != nil {
		return nil, fmt.Errorf("surface configuration: %w", err)
	}

	vs := &View{Context: ctx, surfaceConfig: config}
	vs.configure()

	return vs, nil
}

// NewSurfaceConfiguration derives the configuration of a surface from its capabilities.
// The first format reported by the surface is its preferred one.
func NewSurfaceConfiguration(caps wgpu.SurfaceCapabilities, width, height uint32) (*wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return nil, errors.New("surface reports no supported formats")
	}

	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	alphaMode := wgpu.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alphaMode = caps.AlphaModes[0]
	}

	return &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   alphaMode,
		Width:       width,
		Height:      height,
	}, nil
}

func (vs *View) configure() {
	slog.Info("Configure surface",
		slog.Int("width", int(vs.surfaceConfig.Width)),
		slog.Int("height", int(vs.surfaceConfig.Height)),
		slog.Any("format", vs.surfaceConfig.Format),
	)

	vs.Surface.Configure(vs.Adapter, vs.Device, vs.surfaceConfig)
}

// Format is the pixel format of the surface.
func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

func (vs *View) Size() (width, height uint32) {
	return vs.surfaceConfig.Width, vs.surfaceConfig.Height
}

// IsSrgb returns true if the gpu encodes linear values to srgb when writing to
// a texture of this format.
func IsSrgb(format wgpu.TextureFormat) bool {
	switch format {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}
