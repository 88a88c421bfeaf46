package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWhiteUV = Pos2{0.001, 0.002}

var screen = RectFromMinSize(Pos2{}, Vec2{1920, 1080})

func tessellate(shapes ...ClippedShape) []ClippedMesh {
	return NewTessellator(1, testWhiteUV).Tessellate(shapes)
}

func requireValidMesh(t *testing.T, mesh Mesh) {
	t.Helper()

	require.Zero(t, len(mesh.Indices)%3)

	for _, idx := range mesh.Indices {
		require.Less(t, idx, uint32(len(mesh.Vertices)))
	}
}

func TestTessellateFilledRect(t *testing.T) {
	rect := RectFromCenterSize(Pos2{0, 0}, Vec2{4000, 4000})

	meshes := tessellate(ClippedShape{
		ClipRect: screen,
		Shape:    RectShape{Rect: rect, Fill: Green},
	})

	require.Len(t, meshes, 1)

	mesh := meshes[0].Mesh
	requireValidMesh(t, mesh)

	assert.Equal(t, screen, meshes[0].ClipRect)
	assert.Equal(t, TextureFont, mesh.Texture)
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Indices, 6)

	for _, vertex := range mesh.Vertices {
		assert.Equal(t, Green, vertex.Color)
		assert.Equal(t, testWhiteUV, vertex.UV)
	}

	assert.Equal(t, Pos2{-2000, -2000}, mesh.Vertices[0].Pos)
	assert.Equal(t, Pos2{2000, 2000}, mesh.Vertices[2].Pos)
}

func TestTessellateRoundedRect(t *testing.T) {
	rect := RectFromMinSize(Pos2{10, 10}, Vec2{100, 50})

	meshes := tessellate(ClippedShape{
		ClipRect: screen,
		Shape:    RectShape{Rect: rect, Rounding: 10, Fill: White},
	})

	require.Len(t, meshes, 1)

	mesh := meshes[0].Mesh
	requireValidMesh(t, mesh)

	// four corners with five segments each
	require.Len(t, mesh.Vertices, 24)
	assert.Len(t, mesh.Indices, 3*22)

	for _, vertex := range mesh.Vertices {
		assert.True(t, rect.Expand(0.001).Contains(vertex.Pos), "vertex %v outside of %v", vertex.Pos, rect)
	}
}

func TestTessellateStroke(t *testing.T) {
	rect := RectFromMinSize(Pos2{10, 10}, Vec2{100, 50})

	meshes := tessellate(ClippedShape{
		ClipRect: screen,
		Shape:    RectShape{Rect: rect, Stroke: Stroke{Width: 2, Color: Black}},
	})

	require.Len(t, meshes, 1)

	mesh := meshes[0].Mesh
	requireValidMesh(t, mesh)

	// an inner and an outer vertex per corner, two triangles per side
	assert.Len(t, mesh.Vertices, 8)
	assert.Len(t, mesh.Indices, 3*8)

	outer := rect.Expand(1.001)
	inner := rect.Expand(-1.001)

	for _, vertex := range mesh.Vertices {
		assert.True(t, outer.Contains(vertex.Pos))
		assert.False(t, inner.Contains(vertex.Pos))
	}
}

func TestTessellateCircle(t *testing.T) {
	center := Pos2{100, 100}

	meshes := tessellate(ClippedShape{
		ClipRect: screen,
		Shape:    CircleShape{Center: center, Radius: 10, Fill: Red},
	})

	require.Len(t, meshes, 1)

	mesh := meshes[0].Mesh
	requireValidMesh(t, mesh)

	require.Len(t, mesh.Vertices, 20)
	assert.Len(t, mesh.Indices, 3*18)

	for _, vertex := range mesh.Vertices {
		assert.InDelta(t, 10, vertex.Pos.Sub(center).Length(), 1e-4)
	}
}

func TestTessellateMergesSameClipAndTexture(t *testing.T) {
	other := RectFromMinSize(Pos2{0, 0}, Vec2{100, 100})

	meshes := tessellate(
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: screen, Fill: Gray(27)}},
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: other, Fill: Green}},
		ClippedShape{ClipRect: other, Shape: RectShape{Rect: other, Fill: Red}},
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: other, Fill: Blue}},
	)

	require.Len(t, meshes, 3)

	assert.Equal(t, screen, meshes[0].ClipRect)
	assert.Len(t, meshes[0].Mesh.Vertices, 8)
	assert.Len(t, meshes[0].Mesh.Indices, 12)
	requireValidMesh(t, meshes[0].Mesh)

	assert.Equal(t, other, meshes[1].ClipRect)
	assert.Equal(t, screen, meshes[2].ClipRect)
}

func TestTessellateSkipsInvisibleShapes(t *testing.T) {
	meshes := tessellate(
		// outside of the clip rect
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: RectFromMinSize(Pos2{5000, 5000}, Vec2{10, 10}), Fill: Red}},

		// empty clip rect
		ClippedShape{ClipRect: Rect{}, Shape: RectShape{Rect: screen, Fill: Red}},

		// nothing to fill
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: screen, Fill: Transparent}},
		ClippedShape{ClipRect: screen, Shape: CircleShape{Center: Pos2{10, 10}, Radius: 0, Fill: Red}},
	)

	assert.Empty(t, meshes)
}

func TestTessellateText(t *testing.T) {
	fonts := newTestFonts(t, 1)
	galley := fonts.Layout(Proportional, "Hi")

	meshes := NewTessellator(1, fonts.Image().WhiteUV()).Tessellate([]ClippedShape{
		{ClipRect: screen, Shape: RectShape{Rect: screen, Fill: Gray(27)}},
		{ClipRect: screen, Shape: TextShape{Pos: Pos2{10, 20}, Galley: galley, Color: White}},
	})

	// text samples the font atlas like all untextured shapes
	require.Len(t, meshes, 1)

	mesh := meshes[0].Mesh
	requireValidMesh(t, mesh)

	require.Len(t, mesh.Vertices, 4+4*2)
	assert.Len(t, mesh.Indices, 6+6*2)

	glyph := galley.Glyphs[0]
	assert.Equal(t, glyph.Rect.Min.Add(Pos2{10, 20}), mesh.Vertices[4].Pos)
	assert.Equal(t, glyph.UV.Min, mesh.Vertices[4].UV)
}

func TestTessellateImage(t *testing.T) {
	texture := UserTexture(1)
	rect := RectFromMinSize(Pos2{10, 10}, Vec2{64, 64})
	uv := Rect{Max: Pos2{1, 1}}

	meshes := tessellate(
		ClippedShape{ClipRect: screen, Shape: RectShape{Rect: screen, Fill: Gray(27)}},
		ClippedShape{ClipRect: screen, Shape: ImageShape{Rect: rect, Texture: texture, UV: uv, Tint: White}},
	)

	require.Len(t, meshes, 2)
	assert.Equal(t, TextureFont, meshes[0].Mesh.Texture)
	assert.Equal(t, texture, meshes[1].Mesh.Texture)

	mesh := meshes[1].Mesh
	requireValidMesh(t, mesh)

	assert.Equal(t, []Vertex{
		{Pos: Pos2{10, 10}, UV: Pos2{0, 0}, Color: White},
		{Pos: Pos2{74, 10}, UV: Pos2{1, 0}, Color: White},
		{Pos: Pos2{74, 74}, UV: Pos2{1, 1}, Color: White},
		{Pos: Pos2{10, 74}, UV: Pos2{0, 1}, Color: White},
	}, mesh.Vertices)
}
