package gui

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// width of the font atlas in texels
const atlasWidth = 512

// padding between glyphs in the atlas
const atlasPadding = 1

type FontFamily uint8

const (
	Proportional FontFamily = iota
	Monospace
)

// FontDefinitions describe the fonts used by a Context.
type FontDefinitions struct {
	// ttf or otf data of each family
	Proportional []byte
	Monospace    []byte

	// font size in points
	Size float32
}

func DefaultFontDefinitions() FontDefinitions {
	return FontDefinitions{
		Proportional: goregular.TTF,
		Monospace:    gomono.TTF,
		Size:         14,
	}
}

// FontImage is the coverage mask of all glyphs. It is uploaded to the gpu
// by the renderer. The texel at (0, 0) is fully covered.
type FontImage struct {
	Width  int
	Height int

	// coverage per texel, row by row
	Pixels []uint8

	// incremented each time the atlas is rebuilt
	Version uint64
}

// WhiteUV returns the normalized texture coordinate of a fully covered texel.
func (img *FontImage) WhiteUV() Pos2 {
	return Pos2{0.5 / float32(img.Width), 0.5 / float32(img.Height)}
}

func (img *FontImage) At(x, y int) uint8 {
	return img.Pixels[y*img.Width+x]
}

type glyphInfo struct {
	// location in the atlas in texels
	texels image.Rectangle

	// offset of the top left corner relative to the pen position on the baseline
	offset Vec2

	size    Vec2
	advance float32
}

type fontFace struct {
	glyphs     map[rune]glyphInfo
	ascent     float32
	lineHeight float32
}

// Fonts holds all font faces rasterized at the current pixels per point.
type Fonts struct {
	defs    FontDefinitions
	parsed  [2]*opentype.Font
	faces   [2]*fontFace
	image   *FontImage
	scaleUV Vec2

	pixelsPerPoint float32
}

func NewFonts(defs FontDefinitions, pixelsPerPoint float32) (*Fonts, error) {
	if defs.Size <= 0 {
		return nil, fmt.Errorf("invalid font size %f", defs.Size)
	}

	fonts := &Fonts{defs: defs}

	for family, data := range [][]byte{defs.Proportional, defs.Monospace} {
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font family %d: %w", family, err)
		}

		fonts.parsed[family] = parsed
	}

	if err := fonts.rasterize(pixelsPerPoint, 1); err != nil {
		return nil, err
	}

	return fonts, nil
}

func (f *Fonts) PixelsPerPoint() float32 {
	return f.pixelsPerPoint
}

// Image returns the current font atlas.
func (f *Fonts) Image() *FontImage {
	return f.image
}

// SetPixelsPerPoint rebuilds the atlas if the resolution changed.
func (f *Fonts) SetPixelsPerPoint(pixelsPerPoint float32) error {
	if pixelsPerPoint == f.pixelsPerPoint {
		return nil
	}

	return f.rasterize(pixelsPerPoint, f.image.Version+1)
}

// LineHeight returns the height of a line of text in points.
func (f *Fonts) LineHeight(family FontFamily) float32 {
	return f.faces[family].lineHeight
}

func (f *Fonts) rasterize(pixelsPerPoint float32, version uint64) error {
	type pending struct {
		face   font.Face
		family FontFamily
		char   rune
		bounds fixed.Rectangle26_6
	}

	var glyphs []pending
	var faces [2]*fontFace

	// the white texel block
	packer := shelfPacker{width: atlasWidth}
	packer.allocate(2, 2)

	for family, parsed := range f.parsed {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    float64(f.defs.Size * pixelsPerPoint),
			DPI:     72,
			Hinting: font.HintingFull,
		})

		if err != nil {
			return fmt.Errorf("create font face: %w", err)
		}

		// glyphs are drawn after all faces are measured
		defer face.Close()

		metrics := face.Metrics()

		ff := &fontFace{
			glyphs:     map[rune]glyphInfo{},
			ascent:     fixedToFloat(metrics.Ascent) / pixelsPerPoint,
			lineHeight: fixedToFloat(metrics.Height) / pixelsPerPoint,
		}

		for char := rune(32); char < 127; char++ {
			bounds, advance, ok := face.GlyphBounds(char)
			if !ok {
				continue
			}

			minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
			maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()

			info := glyphInfo{
				offset:  Vec2{float32(minX), float32(minY)}.MulScalar(1 / pixelsPerPoint),
				size:    Vec2{float32(maxX - minX), float32(maxY - minY)}.MulScalar(1 / pixelsPerPoint),
				advance: fixedToFloat(advance) / pixelsPerPoint,
			}

			if maxX > minX && maxY > minY {
				info.texels = packer.allocate(maxX-minX, maxY-minY)
				glyphs = append(glyphs, pending{face: face, family: FontFamily(family), char: char, bounds: bounds})
			}

			ff.glyphs[char] = info
		}

		faces[family] = ff
	}

	atlas := image.NewAlpha(image.Rect(0, 0, atlasWidth, packer.height()))

	for y := range 2 {
		for x := range 2 {
			atlas.Pix[y*atlas.Stride+x] = 0xff
		}
	}

	for _, glyph := range glyphs {
		target := faces[glyph.family].glyphs[glyph.char].texels

		drawer := font.Drawer{
			Dst:  atlas,
			Src:  image.White,
			Face: glyph.face,
			Dot: fixed.Point26_6{
				X: fixed.I(target.Min.X - glyph.bounds.Min.X.Floor()),
				Y: fixed.I(target.Min.Y - glyph.bounds.Min.Y.Floor()),
			},
		}

		drawer.DrawString(string(glyph.char))
	}

	f.faces = faces
	f.pixelsPerPoint = pixelsPerPoint
	f.scaleUV = Vec2{1 / float32(atlasWidth), 1 / float32(packer.height())}

	f.image = &FontImage{
		Width:   atlasWidth,
		Height:  packer.height(),
		Pixels:  atlas.Pix,
		Version: version,
	}

	return nil
}

// Galley is a laid out text. Positions are relative to its top left corner.
type Galley struct {
	Text   string
	Glyphs []PlacedGlyph
	Size   Vec2
}

type PlacedGlyph struct {
	// rect in points
	Rect Rect

	// normalized texture coordinates within the font atlas
	UV Rect
}

// Layout places each glyph of the given text. Characters that are not in
// the atlas are shown as a question mark. Newlines start a new line.
func (f *Fonts) Layout(family FontFamily, text string) *Galley {
	face := f.faces[family]

	galley := &Galley{Text: text}

	for lineIdx, line := range strings.Split(text, "\n") {
		baseline := float32(lineIdx)*face.lineHeight + face.ascent

		var x float32
		for _, char := range strings.ReplaceAll(line, "\t", "    ") {
			glyph, ok := face.glyphs[char]
			if !ok {
				glyph = face.glyphs['?']
			}

			if glyph.size[0] > 0 && glyph.size[1] > 0 {
				pos := Pos2{x, baseline}.Add(glyph.offset)

				galley.Glyphs = append(galley.Glyphs, PlacedGlyph{
					Rect: RectFromMinSize(pos, glyph.size),
					UV: Rect{
						Min: Vec2{float32(glyph.texels.Min.X), float32(glyph.texels.Min.Y)}.Mul(f.scaleUV),
						Max: Vec2{float32(glyph.texels.Max.X), float32(glyph.texels.Max.Y)}.Mul(f.scaleUV),
					},
				})
			}

			x += glyph.advance
		}

		galley.Size[0] = max(galley.Size[0], x)
		galley.Size[1] += face.lineHeight
	}

	return galley
}

// shelfPacker places rectangles in rows of fixed width.
type shelfPacker struct {
	width int

	cursorX     int
	cursorY     int
	shelfHeight int
}

func (p *shelfPacker) allocate(width, height int) image.Rectangle {
	if p.cursorX+width > p.width {
		p.cursorX = 0
		p.cursorY += p.shelfHeight + atlasPadding
		p.shelfHeight = 0
	}

	rect := image.Rect(p.cursorX, p.cursorY, p.cursorX+width, p.cursorY+height)

	p.cursorX += width + atlasPadding
	p.shelfHeight = max(p.shelfHeight, height)

	return rect
}

func (p *shelfPacker) height() int {
	return p.cursorY + p.shelfHeight
}

func fixedToFloat(value fixed.Int26_6) float32 {
	return float32(value) / 64
}
