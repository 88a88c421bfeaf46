package stage

import "github.com/oliverbestmann/halo/gui"

// meshSlot passes the meshes of one frame from Update to Render.
type meshSlot struct {
	meshes []gui.ClippedMesh
	filled bool
}

func (s *meshSlot) store(meshes []gui.ClippedMesh) {
	s.meshes = meshes
	s.filled = true
}

// take empties the slot. Panics if nothing was stored since the previous take.
func (s *meshSlot) take() []gui.ClippedMesh {
	if !s.filled {
		panic("stage: Render called without a preceding Update")
	}

	meshes := s.meshes

	s.meshes = nil
	s.filled = false

	return meshes
}
