// Package guipass renders the meshes produced by the gui package into a texture view.
package guipass

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/bits"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/halo/glm"
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

//go:embed gui.wgsl
var shaderCode string

// ErrBuffersOutdated is returned by Execute if the meshes were not uploaded using UpdateBuffers.
var ErrBuffersOutdated = errors.New("meshes do not match the uploaded buffers")

// minimum size of the vertex and index buffers in bytes
const minBufferSize = 64 * 1024

type drawCall struct {
	firstIndex uint32
	indexCount uint32
	baseVertex int32
}

type textureEntry struct {
	texture   *pulse.Texture
	bindGroup *wgpu.BindGroup
}

func (e *textureEntry) Release() {
	e.bindGroup.Release()
	e.texture.Release()
}

type pendingTexture struct {
	pixels []byte
	width  uint32
	height uint32
}

// Renderer draws gui meshes. Each frame, upload textures and buffers
// first, then record the draw calls using Execute.
type Renderer struct {
	ctx    *pulse.Context
	format wgpu.TextureFormat

	pipelines *pulse.PipelineCache[pipelineConfig]
	pipeline  *pulse.CachedPipeline
	sampler   *wgpu.Sampler

	uniformBuffer    *wgpu.Buffer
	uniformBindGroup *wgpu.BindGroup
	uniformSize      glm.Vec2f

	vertexBuffer   *wgpu.Buffer
	vertexCapacity uint64
	indexBuffer    *wgpu.Buffer
	indexCapacity  uint64
	draws          []drawCall

	// version of the uploaded font atlas, zero if none was uploaded yet
	fontVersion uint64

	textures        map[gui.TextureID]*textureEntry
	pending         map[gui.TextureID]pendingTexture
	nextUserTexture uint64
}

// New creates a renderer for targets of the given format.
func New(ctx *pulse.Context, format wgpu.TextureFormat, msaaSamples uint32) (r *Renderer, err error) {
	r = &Renderer{
		ctx:       ctx,
		format:    format,
		pipelines: pulse.NewPipelineCache[pipelineConfig](ctx),
		textures:  map[gui.TextureID]*textureEntry{},
		pending:   map[gui.TextureID]pendingTexture{},
	}

	defer func() {
		if err != nil {
			r.Release()
			r = nil
		}
	}()

	if !scissorSupported {
		slog.Debug("No scissor support, clip rects are only applied during tessellation")
	}

	r.pipeline, err = r.pipelines.Get(pipelineConfig{
		TargetFormat: format,
		SampleCount:  max(msaaSamples, 1),
	})

	if err != nil {
		return r, err
	}

	r.sampler, err = ctx.Samplers.Get(wgpu.SamplerDescriptor{
		Label:         "Gui.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})

	if err != nil {
		return r, err
	}

	r.uniformBuffer, err = ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Gui.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  16,
	})

	if err != nil {
		return r, fmt.Errorf("create uniform buffer: %w", err)
	}

	r.uniformBindGroup, err = ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Gui.Uniforms",
		Layout: r.pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniformBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})

	if err != nil {
		return r, fmt.Errorf("create uniform bind group: %w", err)
	}

	return r, nil
}

// UpdateTexture uploads the font atlas if it changed since the previous upload.
func (r *Renderer) UpdateTexture(img *gui.FontImage) error {
	if img.Version == r.fontVersion {
		return nil
	}

	slog.Debug(
		"Upload font atlas",
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Uint64("version", img.Version),
	)

	err := r.setTexture(gui.TextureFont, "Gui.Fonts", pendingTexture{
		pixels: fontPixels(img),
		width:  uint32(img.Width),
		height: uint32(img.Height),
	})

	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}

	r.fontVersion = img.Version

	return nil
}

// RegisterUserTexture queues the image for upload with the next call to
// UpdateUserTextures. The returned id can be painted using gui.Painter.Image.
func (r *Renderer) RegisterUserTexture(img image.Image) gui.TextureID {
	r.nextUserTexture++
	id := gui.UserTexture(r.nextUserTexture)

	pixels, width, height := rgbaPixels(img)
	r.pending[id] = pendingTexture{pixels: pixels, width: width, height: height}

	return id
}

// FreeUserTexture releases a texture registered using RegisterUserTexture.
func (r *Renderer) FreeUserTexture(id gui.TextureID) {
	delete(r.pending, id)

	if entry, ok := r.textures[id]; ok {
		entry.Release()
		delete(r.textures, id)
	}
}

// UpdateUserTextures uploads all textures registered since the previous call.
func (r *Renderer) UpdateUserTextures() error {
	for id, pending := range r.pending {
		label := fmt.Sprintf("Gui.UserTexture[%d]", id.ID)

		if err := r.setTexture(id, label, pending); err != nil {
			return fmt.Errorf("upload user texture %d: %w", id.ID, err)
		}

		delete(r.pending, id)
	}

	return nil
}

func (r *Renderer) setTexture(id gui.TextureID, label string, pending pendingTexture) error {
	entry, ok := r.textures[id]

	if !ok || entry.texture.Width() != pending.width || entry.texture.Height() != pending.height {
		created, err := r.newTextureEntry(label, pending.width, pending.height)
		if err != nil {
			return err
		}

		if ok {
			entry.Release()
		}

		entry = created
		r.textures[id] = entry
	}

	return entry.texture.WritePixels(r.ctx, pending.pixels)
}

func (r *Renderer) newTextureEntry(label string, width, height uint32) (*textureEntry, error) {
	texture, err := pulse.NewTexture(r.ctx, pulse.NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8UnormSrgb,
		Width:  width,
		Height: height,
		Label:  label,
	})

	if err != nil {
		return nil, err
	}

	textureGuard := pulse.NewReleaseGuard(texture)
	defer textureGuard.Release()

	bindGroup, err := r.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: r.pipeline.GetBindGroupLayout(1),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: texture.View(),
			},
			{
				Binding: 1,
				Sampler: r.sampler,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create bind group for %q: %w", label, err)
	}

	textureGuard.Keep()

	return &textureEntry{texture: texture, bindGroup: bindGroup}, nil
}

// UpdateBuffers uploads the vertices and indices of all meshes and the screen size.
func (r *Renderer) UpdateBuffers(meshes []gui.ClippedMesh, screen ScreenDescriptor) error {
	if size := screen.SizeInPoints(); size != r.uniformSize {
		uniforms := []float32{size[0], size[1], 0, 0}

		if err := r.ctx.WriteBuffer(r.uniformBuffer, 0, wgpu.ToBytes(uniforms)); err != nil {
			return fmt.Errorf("update uniforms: %w", err)
		}

		r.uniformSize = size
	}

	r.draws = r.draws[:0]

	var vertexCount, indexCount uint32
	for _, mesh := range meshes {
		r.draws = append(r.draws, drawCall{
			firstIndex: indexCount,
			indexCount: uint32(len(mesh.Mesh.Indices)),
			baseVertex: int32(vertexCount),
		})

		vertexCount += uint32(len(mesh.Mesh.Vertices))
		indexCount += uint32(len(mesh.Mesh.Indices))
	}

	if indexCount == 0 {
		return nil
	}

	vertexSize := uint64(unsafe.Sizeof(gui.Vertex{}))

	var err error
	r.vertexBuffer, r.vertexCapacity, err = r.ensureBuffer(r.vertexBuffer, r.vertexCapacity,
		uint64(vertexCount)*vertexSize, wgpu.BufferUsageVertex, "Gui.Vertices")

	if err != nil {
		return err
	}

	r.indexBuffer, r.indexCapacity, err = r.ensureBuffer(r.indexBuffer, r.indexCapacity,
		uint64(indexCount)*4, wgpu.BufferUsageIndex, "Gui.Indices")

	if err != nil {
		return err
	}

	for idx, mesh := range meshes {
		if mesh.Mesh.IsEmpty() {
			continue
		}

		draw := r.draws[idx]

		vertexOffset := uint64(draw.baseVertex) * vertexSize
		if err := r.ctx.WriteBuffer(r.vertexBuffer, vertexOffset, wgpu.ToBytes(mesh.Mesh.Vertices)); err != nil {
			return fmt.Errorf("write vertices: %w", err)
		}

		indexOffset := uint64(draw.firstIndex) * 4
		if err := r.ctx.WriteBuffer(r.indexBuffer, indexOffset, wgpu.ToBytes(mesh.Mesh.Indices)); err != nil {
			return fmt.Errorf("write indices: %w", err)
		}
	}

	return nil
}

func (r *Renderer) ensureBuffer(current *wgpu.Buffer, capacity, required uint64, usage wgpu.BufferUsage, label string) (*wgpu.Buffer, uint64, error) {
	if current != nil && capacity >= required {
		return current, capacity, nil
	}

	capacity = bufferCapacity(required)

	slog.Debug("Grow gui buffer", slog.String("label", label), slog.Uint64("size", capacity))

	buffer, err := r.ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Usage: usage | wgpu.BufferUsageCopyDst,
		Size:  capacity,
	})

	if err != nil {
		return current, 0, fmt.Errorf("create buffer %q: %w", label, err)
	}

	if current != nil {
		current.Release()
	}

	return buffer, capacity, nil
}

// bufferCapacity rounds the required size up to the next power of two.
func bufferCapacity(required uint64) uint64 {
	if required <= minBufferSize {
		return minBufferSize
	}

	return 1 << bits.Len64(required-1)
}

// Execute records a render pass drawing the meshes into the target. The target is cleared
// with the given color first, if one is provided. The meshes must have been uploaded
// using UpdateBuffers before.
func (r *Renderer) Execute(encoder *wgpu.CommandEncoder, target *wgpu.TextureView, meshes []gui.ClippedMesh, screen ScreenDescriptor, clear *pulse.Color) error {
	if len(meshes) != len(r.draws) {
		return ErrBuffersOutdated
	}

	attachment := wgpu.RenderPassColorAttachment{
		View:    target,
		LoadOp:  wgpu.LoadOpLoad,
		StoreOp: wgpu.StoreOpStore,
	}

	if clear != nil {
		attachment.LoadOp = wgpu.LoadOpClear
		attachment.ClearValue = clear.ToWGPU(r.format)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            "Gui.RenderPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{attachment},
	})

	// must release pass before finishing the encoder
	defer pass.Release()

	pass.SetPipeline(r.pipeline.Pipeline)
	pass.SetBindGroup(0, r.uniformBindGroup, nil)

	if r.vertexBuffer != nil && r.indexBuffer != nil {
		pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	}

	for idx, mesh := range meshes {
		draw := r.draws[idx]
		if draw.indexCount == 0 {
			continue
		}

		scissor, ok := scissorRect(mesh.ClipRect, screen)
		if !ok {
			continue
		}

		entry, ok := r.textures[mesh.Mesh.Texture]
		if !ok {
			slog.Warn("Skip mesh with unknown texture", slog.Any("texture", mesh.Mesh.Texture))
			continue
		}

		setScissor(pass, scissor)
		pass.SetBindGroup(1, entry.bindGroup, nil)
		pass.DrawIndexed(draw.indexCount, 1, draw.firstIndex, draw.baseVertex, 0)
	}

	if err := endPass(pass); err != nil {
		return fmt.Errorf("end gui render pass: %w", err)
	}

	return nil
}

// Release releases all gpu resources owned by the renderer.
func (r *Renderer) Release() {
	for _, entry := range r.textures {
		entry.Release()
	}

	clear(r.textures)
	clear(r.pending)

	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
		r.vertexBuffer = nil
	}

	if r.indexBuffer != nil {
		r.indexBuffer.Release()
		r.indexBuffer = nil
	}

	if r.uniformBindGroup != nil {
		r.uniformBindGroup.Release()
		r.uniformBindGroup = nil
	}

	if r.uniformBuffer != nil {
		r.uniformBuffer.Release()
		r.uniformBuffer = nil
	}

	r.pipelines.Release()
}
