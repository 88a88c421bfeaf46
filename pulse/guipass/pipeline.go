package guipass

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

func shaderModuleDescriptor() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label:          "Gui.Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	}
}

type pipelineConfig struct {
	TargetFormat wgpu.TextureFormat
	SampleCount  uint32
}

// fragmentEntryPoint selects the shader variant matching the color space of the target.
func (conf pipelineConfig) fragmentEntryPoint() string {
	if pulse.IsSrgb(conf.TargetFormat) {
		return "fs_main_linear_framebuffer"
	}

	return "fs_main_gamma_framebuffer"
}

func (conf pipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for gui",
		slog.Any("format", conf.TargetFormat),
		slog.Any("sampleCount", conf.SampleCount),
		slog.String("fragment", conf.fragmentEntryPoint()),
	)

	shader, err := dev.CreateShaderModule(shaderModuleDescriptor())
	if err != nil {
		return nil, fmt.Errorf("compile gui shader: %w", err)
	}

	defer shader.Release()

	blend := wgpu.BlendStatePremultipliedAlphaBlending

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Gui.%s", conf.fragmentEntryPoint()),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(gui.Vertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(gui.Vertex{}.Pos)),
							ShaderLocation: 0,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(gui.Vertex{}.UV)),
							ShaderLocation: 1,
						},
						{
							Format:         wgpu.VertexFormatUnorm8x4,
							Offset:         uint64(unsafe.Offsetof(gui.Vertex{}.Color)),
							ShaderLocation: 2,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: conf.fragmentEntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  conf.SampleCount,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build gui pipeline: %w", err)
	}

	return pipeline, nil
}
