package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/halo/glm"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	format wgpu.TextureFormat
	region Rectangle2u
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

// NewTexture creates a texture that can be sampled and written to.
func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	texture, err := ctx.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,
		Dimension:     wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})

	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", opts.Label, err)
	}

	textureGuard := NewReleaseGuard(texture)
	defer textureGuard.Release()

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("create view for %q: %w", opts.Label, err)
	}

	textureGuard.Keep()

	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      opts.Format,
		region:      RectangleFromSize(glm.Vec2u{}, glm.Vec2u{opts.Width, opts.Height}),
	}, nil
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) Width() uint32 {
	return t.region.Width()
}

func (t *Texture) Height() uint32 {
	return t.region.Height()
}

// WritePixels replaces the full content of the texture with
// the given rgba pixels.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: t.region,
	})
}

type WritePixelsOptions struct {
	Pixels []byte
	Region Rectangle2u

	// bytes per row, defaults to four bytes per pixel of the region
	Stride uint32
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	// fail if not in rect
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.region)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	if need := int(opts.Stride * opts.Region.Height()); len(opts.Pixels) < need {
		return fmt.Errorf("expected %d bytes of pixel data, got %d", need, len(opts.Pixels))
	}

	size := wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	ctx.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  t.texture,
			MipLevel: 0,
			Origin: wgpu.Origin3D{
				X: opts.Region.Min[0],
				Y: opts.Region.Min[1],
			},
			Aspect: wgpu.TextureAspectAll,
		},
		opts.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  opts.Stride,
			RowsPerImage: opts.Region.Height(),
		},
		&size,
	)

	return nil
}

// Release releases the texture and its view. You must be sure to
// not use the texture after calling release.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}
