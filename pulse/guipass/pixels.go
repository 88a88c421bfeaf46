package guipass

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

// gamma encoded values of a white texel for each coverage
var coverageLUT = func() (lut [256]uint8) {
	for idx := range lut {
		gamma := pulse.GammaFromLinear(float32(idx) / 255)
		lut[idx] = uint8(gamma*255 + 0.5)
	}

	return
}()

// fontPixels converts the coverage of the font atlas into premultiplied white texels
// in an srgb texture. The texture returns the linear coverage in all four channels.
func fontPixels(img *gui.FontImage) []byte {
	pixels := make([]byte, 0, 4*len(img.Pixels))

	for _, coverage := range img.Pixels {
		gamma := coverageLUT[coverage]
		pixels = append(pixels, gamma, gamma, gamma, coverage)
	}

	return pixels
}

// rgbaPixels converts any image into rows of premultiplied rgba pixels.
func rgbaPixels(img image.Image) (pixels []byte, width, height uint32) {
	bounds := img.Bounds()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Copy(rgba, image.Point{}, img, bounds, draw.Src, nil)
	}

	return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy())
}
