package gui

import (
	"structs"

	"github.com/oliverbestmann/halo/glm"
)

// TextureID identifies a texture a Mesh is sampled from.
type TextureID struct {
	// User textures are registered with the renderer, all
	// other meshes sample the font atlas.
	User bool
	ID   uint64
}

// TextureFont is the font atlas. Its top left texel is opaque white
// and used by all untextured shapes.
var TextureFont = TextureID{}

func UserTexture(id uint64) TextureID {
	return TextureID{User: true, ID: id}
}

// Vertex is the gpu vertex layout of the gui renderer.
type Vertex struct {
	_ structs.HostLayout

	// position in points
	Pos glm.Vec2f

	// normalized texture coordinates
	UV glm.Vec2f

	// srgb color with premultiplied alpha
	Color Color32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
	Texture  TextureID
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

func (m *Mesh) vertex(pos Pos2, uv glm.Vec2f, color Color32) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Pos: pos, UV: uv, Color: color})
	return idx
}

func (m *Mesh) triangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// ClippedMesh is a mesh that must only be drawn inside ClipRect.
type ClippedMesh struct {
	ClipRect Rect
	Mesh     Mesh
}
