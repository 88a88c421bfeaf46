package gui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFonts(t *testing.T, pixelsPerPoint float32) *Fonts {
	t.Helper()

	fonts, err := NewFonts(DefaultFontDefinitions(), pixelsPerPoint)
	require.NoError(t, err)

	return fonts
}

func TestFontImageHasWhiteTexel(t *testing.T) {
	img := newTestFonts(t, 1).Image()

	require.Equal(t, atlasWidth, img.Width)
	require.Len(t, img.Pixels, img.Width*img.Height)

	assert.EqualValues(t, 0xff, img.At(0, 0))
	assert.EqualValues(t, 0xff, img.At(1, 1))

	uv := img.WhiteUV()
	assert.InDelta(t, 0.5/float32(img.Width), uv[0], 1e-9)
	assert.InDelta(t, 0.5/float32(img.Height), uv[1], 1e-9)

	// some glyph must have been rasterized
	var covered int
	for _, value := range img.Pixels[2:] {
		if value > 0 {
			covered++
		}
	}

	assert.Greater(t, covered, 100)
}

func TestFontsRejectInvalidDefinitions(t *testing.T) {
	defs := DefaultFontDefinitions()
	defs.Size = 0

	_, err := NewFonts(defs, 1)
	assert.Error(t, err)

	defs = DefaultFontDefinitions()
	defs.Monospace = []byte("not a font")

	_, err = NewFonts(defs, 1)
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	fonts := newTestFonts(t, 1)

	galley := fonts.Layout(Proportional, "a b")

	// the space has no visible glyph
	require.Len(t, galley.Glyphs, 2)
	assert.Greater(t, galley.Size[0], float32(0))
	assert.InDelta(t, fonts.LineHeight(Proportional), galley.Size[1], 1e-6)

	first, second := galley.Glyphs[0], galley.Glyphs[1]
	assert.Less(t, first.Rect.Max[0], second.Rect.Min[0])

	for _, glyph := range galley.Glyphs {
		assert.True(t, glyph.Rect.IsPositive())
		assert.True(t, glyph.UV.IsPositive())
		assert.GreaterOrEqual(t, glyph.UV.Min[0], float32(0))
		assert.LessOrEqual(t, glyph.UV.Max[1], float32(1))
	}
}

func TestLayoutMultipleLines(t *testing.T) {
	fonts := newTestFonts(t, 1)

	single := fonts.Layout(Proportional, "hello")
	double := fonts.Layout(Proportional, "hello\nhello")

	assert.InDelta(t, 2*single.Size[1], double.Size[1], 1e-4)
	assert.InDelta(t, single.Size[0], double.Size[0], 1e-4)
	assert.Len(t, double.Glyphs, 2*len(single.Glyphs))
}

func TestLayoutUnknownCharacter(t *testing.T) {
	fonts := newTestFonts(t, 1)

	unknown := fonts.Layout(Proportional, "€")
	question := fonts.Layout(Proportional, "?")

	assert.Equal(t, question.Glyphs, unknown.Glyphs)
	assert.Equal(t, question.Size, unknown.Size)
}

func TestMonospaceAdvance(t *testing.T) {
	fonts := newTestFonts(t, 1)

	narrow := fonts.Layout(Monospace, strings.Repeat("i", 10))
	wide := fonts.Layout(Monospace, strings.Repeat("m", 10))

	assert.InDelta(t, narrow.Size[0], wide.Size[0], 1e-4)
}

func TestFontsRebuildOnScaleChange(t *testing.T) {
	fonts := newTestFonts(t, 1)

	before := fonts.Image()
	size := fonts.Layout(Proportional, "hello").Size

	require.NoError(t, fonts.SetPixelsPerPoint(1))
	assert.Same(t, before, fonts.Image())

	require.NoError(t, fonts.SetPixelsPerPoint(2))

	after := fonts.Image()
	assert.Equal(t, before.Version+1, after.Version)
	assert.Greater(t, after.Height, before.Height)

	// sizes are in points and do not depend on the resolution
	assert.InEpsilon(t, size[0], fonts.Layout(Proportional, "hello").Size[0], 0.15)
}
