package guipass

import (
	"image"
	"image/color"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/halo/glm"
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

var screen = ScreenDescriptor{PhysicalWidth: 1920, PhysicalHeight: 1080, ScaleFactor: 2}

func TestSizeInPoints(t *testing.T) {
	assert.Equal(t, glm.Vec2f{960, 540}, screen.SizeInPoints())
}

func TestScissorRect(t *testing.T) {
	scissor, ok := scissorRect(gui.RectFromMinSize(gui.Pos2{10.2, 20.7}, gui.Vec2{100, 50}), screen)
	require.True(t, ok)

	// rounded outwards to whole pixels
	assert.Equal(t, pulse.RectangleFromPoints(glm.Vec2u{20, 41}, glm.Vec2u{221, 142}), scissor)
}

func TestScissorRectIsClampedToScreen(t *testing.T) {
	clip := gui.RectFromCenterSize(gui.Pos2{0, 0}, gui.Vec2{4000, 4000})

	scissor, ok := scissorRect(clip, screen)
	require.True(t, ok)

	assert.Equal(t, pulse.RectangleFromXYWH[uint32](0, 0, 1920, 1080), scissor)

	scissor, ok = scissorRect(gui.Everything, screen)
	require.True(t, ok)
	assert.Equal(t, pulse.RectangleFromXYWH[uint32](0, 0, 1920, 1080), scissor)
}

func TestScissorRectOutsideOfScreen(t *testing.T) {
	_, ok := scissorRect(gui.RectFromMinSize(gui.Pos2{2000, 0}, gui.Vec2{10, 10}), screen)
	assert.False(t, ok)

	_, ok = scissorRect(gui.RectFromMinSize(gui.Pos2{-20, -20}, gui.Vec2{10, 10}), screen)
	assert.False(t, ok)

	_, ok = scissorRect(gui.Rect{}, screen)
	assert.False(t, ok)
}

func TestFragmentEntryPoint(t *testing.T) {
	srgb := pipelineConfig{TargetFormat: wgpu.TextureFormatBGRA8UnormSrgb, SampleCount: 1}
	assert.Equal(t, "fs_main_linear_framebuffer", srgb.fragmentEntryPoint())

	linear := pipelineConfig{TargetFormat: wgpu.TextureFormatBGRA8Unorm, SampleCount: 1}
	assert.Equal(t, "fs_main_gamma_framebuffer", linear.fragmentEntryPoint())
}

func TestShaderEntryPoints(t *testing.T) {
	for _, entryPoint := range []string{"vs_main", "fs_main_linear_framebuffer", "fs_main_gamma_framebuffer"} {
		assert.Contains(t, shaderCode, "fn "+entryPoint+"(")
	}
}

func TestBufferCapacity(t *testing.T) {
	assert.EqualValues(t, minBufferSize, bufferCapacity(0))
	assert.EqualValues(t, minBufferSize, bufferCapacity(minBufferSize))
	assert.EqualValues(t, 2*minBufferSize, bufferCapacity(minBufferSize+1))
	assert.EqualValues(t, 1<<20, bufferCapacity(1<<20))
	assert.EqualValues(t, 1<<21, bufferCapacity(1<<20+4))
}

func TestFontPixels(t *testing.T) {
	img := &gui.FontImage{
		Width:  3,
		Height: 1,
		Pixels: []uint8{0, 255, 128},
	}

	pixels := fontPixels(img)
	require.Len(t, pixels, 12)

	assert.Equal(t, []byte{0, 0, 0, 0}, pixels[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, pixels[4:8])

	// srgb encoded so the texture decodes to a premultiplied linear white
	assert.Equal(t, []byte{188, 188, 188, 128}, pixels[8:12])
}

func TestRgbaPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(6, 5, color.NRGBA{G: 255, A: 128})

	pixels, width, height := rgbaPixels(img)

	assert.EqualValues(t, 2, width)
	assert.EqualValues(t, 1, height)

	// converted to premultiplied alpha
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 128, 0, 128}, pixels)
}

func TestRgbaPixelsKeepsCompactImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	pixels, width, height := rgbaPixels(img)

	assert.EqualValues(t, 2, width)
	assert.EqualValues(t, 2, height)
	assert.Same(t, &img.Pix[0], &pixels[0])
}

func newTextureTestRenderer() *Renderer {
	// only the texture bookkeeping is usable without a gpu
	return &Renderer{
		textures: map[gui.TextureID]*textureEntry{},
		pending:  map[gui.TextureID]pendingTexture{},
	}
}

func TestRegisterUserTexture(t *testing.T) {
	r := newTextureTestRenderer()

	first := r.RegisterUserTexture(image.NewRGBA(image.Rect(0, 0, 4, 2)))
	second := r.RegisterUserTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))

	assert.Equal(t, gui.UserTexture(1), first)
	assert.Equal(t, gui.UserTexture(2), second)
	assert.NotEqual(t, gui.TextureFont, first)

	require.Contains(t, r.pending, first)
	assert.EqualValues(t, 4, r.pending[first].width)
	assert.EqualValues(t, 2, r.pending[first].height)
	assert.Len(t, r.pending[first].pixels, 4*2*4)
}

func TestFreeUserTextureBeforeUpload(t *testing.T) {
	r := newTextureTestRenderer()

	id := r.RegisterUserTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	r.FreeUserTexture(id)

	assert.Empty(t, r.pending)

	// nothing is pending, so nothing touches the gpu
	require.NoError(t, r.UpdateUserTextures())

	// ids are never reused
	assert.Equal(t, gui.UserTexture(2), r.RegisterUserTexture(image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestShaderModuleDescriptor(t *testing.T) {
	desc := shaderModuleDescriptor()

	require.NotNil(t, desc.WGSLDescriptor)
	assert.Equal(t, shaderCode, desc.WGSLDescriptor.Code)
	assert.Contains(t, desc.WGSLDescriptor.Code, "fn vs_main")
}
