package stage

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/halo/glimpse"
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/orion"
	"github.com/oliverbestmann/halo/pulse"
)

type fakeWindow struct {
	glimpse.Window
	icons []glimpse.CursorIcon
}

func (w *fakeWindow) SetCursorIcon(icon glimpse.CursorIcon) {
	w.icons = append(w.icons, icon)
}

// scriptedWindow replays a fixed list of events through the event loop
type scriptedWindow struct {
	fakeWindow
	events []glimpse.Event
}

func (w *scriptedWindow) InnerSize() (uint32, uint32) { return 1920, 1080 }
func (w *scriptedWindow) ScaleFactor() float64 { return 1 }
func (w *scriptedWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *scriptedWindow) RequestRedraw() {}
func (w *scriptedWindow) Terminate() {}

func (w *scriptedWindow) Run(handle func(glimpse.Event) error) error {
	for _, ev := range w.events {
		if err := handle(ev); err != nil {
			return err
		}
	}

	return nil
}

// cpuHandler runs a State without a gpu, Render only consumes the meshes
type cpuHandler struct {
	state  *State
	frames [][]gui.ClippedMesh
}

func (h *cpuHandler) Update(ev glimpse.Event, win glimpse.Window) {
	h.state.Update(ev, win)
}

func (h *cpuHandler) HandleEvent(ev glimpse.Event) {
	h.state.HandleEvent(ev)
}

func (h *cpuHandler) Render() error {
	h.frames = append(h.frames, h.state.slot.take())
	return nil
}

// newTestState creates a state without gpu resources, enough to run Update.
func newTestState(t *testing.T, opts Options) *State {
	t.Helper()

	ctx, err := gui.NewContext(gui.Descriptor{
		PhysicalWidth:  1920,
		PhysicalHeight: 1080,
		ScaleFactor:    1,
	})

	require.NoError(t, err)

	return &State{opts: opts, gui: ctx}
}

func TestSceneColors(t *testing.T) {
	assert.Equal(t, pulse.ColorRed, BackgroundColor)
	assert.Equal(t, gui.Green, SceneColor)

	assert.Equal(t, gui.Pos2{0, 0}, SceneRect.Center())
	assert.Equal(t, gui.Vec2{4000, 4000}, SceneRect.Size())
}

func TestDrawScene(t *testing.T) {
	ctx := newTestState(t, Options{}).gui

	ctx.BeginFrame()
	DrawScene(ctx)
	_, shapes := ctx.EndFrame(nil)

	require.Len(t, shapes, 2)

	assert.Equal(t, gui.ClippedShape{
		ClipRect: ctx.ScreenRect(),
		Shape:    gui.RectShape{Rect: SceneRect, Fill: gui.Green},
	}, shapes[1])
}

func TestUpdateStoresMeshes(t *testing.T) {
	st := newTestState(t, Options{})

	st.Update(glimpse.RedrawRequested(), &fakeWindow{})

	meshes := st.slot.take()
	require.NotEmpty(t, meshes)

	assert.True(t, coversWith(meshes, gui.Pos2{960, 540}, gui.Green), "screen center must be green")
	assert.True(t, coversWith(meshes, gui.Pos2{1, 1}, gui.Green), "screen corner must be green")
}

func TestUpdateIsIdempotent(t *testing.T) {
	st := newTestState(t, Options{})
	win := &fakeWindow{}

	st.Update(glimpse.RedrawRequested(), win)
	first := st.slot.take()

	st.Update(glimpse.RedrawRequested(), win)
	second := st.slot.take()

	assert.Equal(t, first, second)
}

func TestUpdateIgnoresInput(t *testing.T) {
	st := newTestState(t, Options{})
	win := &fakeWindow{}

	st.Update(glimpse.RedrawRequested(), win)
	first := st.slot.take()

	st.Update(glimpse.Event{Kind: glimpse.EventCursorMoved, X: 300, Y: 200}, win)
	st.Update(glimpse.Event{Kind: glimpse.EventMouseInput, Button: glimpse.MouseButtonLeft, Pressed: true}, win)
	second := st.slot.take()

	assert.Equal(t, first, second)
	assert.Empty(t, win.icons)
}

func TestInputReachesGuiThroughEventLoop(t *testing.T) {
	st := newTestState(t, Options{Debug: true})
	handler := &cpuHandler{state: st}

	win := &scriptedWindow{
		events: []glimpse.Event{
			// grab the title bar of the debug window
			{Kind: glimpse.EventCursorMoved, X: 40, Y: 24},
			{Kind: glimpse.EventMouseInput, Button: glimpse.MouseButtonLeft, Pressed: true},
			glimpse.RedrawRequested(),

			{Kind: glimpse.EventCursorMoved, X: 140, Y: 124},
			glimpse.RedrawRequested(),
		},
	}

	err := orion.Run(orion.RunOptions{
		Window: win,
		NewHandler: func(glimpse.Window) (orion.Handler, error) {
			return handler, nil
		},
	})

	require.NoError(t, err)
	require.Len(t, handler.frames, 2)

	assert.Equal(t, gui.Pos2{140, 124}, st.gui.Input().Pointer.Pos)
	assert.Equal(t, []glimpse.CursorIcon{glimpse.CursorPointingHand}, win.icons)
}

func TestScreenFollowsScaleFactor(t *testing.T) {
	st := newTestState(t, Options{})

	assert.Equal(t, float32(1), st.screen().ScaleFactor)

	st.HandleEvent(glimpse.Event{Kind: glimpse.EventScaleFactorChanged, ScaleFactor: 2})

	screen := st.screen()
	assert.Equal(t, uint32(1920), screen.PhysicalWidth)
	assert.Equal(t, uint32(1080), screen.PhysicalHeight)
	assert.Equal(t, float32(2), screen.ScaleFactor)
	assert.Equal(t, st.gui.ScreenRect().Size(), screen.SizeInPoints())
}

func TestUpdateWithDebugWindow(t *testing.T) {
	plain := newTestState(t, Options{})
	plain.Update(glimpse.RedrawRequested(), &fakeWindow{})

	debug := newTestState(t, Options{Debug: true})
	debug.Update(glimpse.RedrawRequested(), &fakeWindow{})

	assert.Greater(t, len(debug.slot.take()), len(plain.slot.take()))
}

func TestRenderWithoutUpdatePanics(t *testing.T) {
	st := newTestState(t, Options{})

	assert.PanicsWithValue(t, "stage: Render called without a preceding Update", func() {
		_ = st.Render()
	})
}

func TestMeshSlot(t *testing.T) {
	var slot meshSlot

	assert.Panics(t, func() { slot.take() })

	meshes := []gui.ClippedMesh{{ClipRect: gui.Everything}}
	slot.store(meshes)
	assert.Equal(t, meshes, slot.take())

	// meshes are consumed by take
	assert.Panics(t, func() { slot.take() })

	// an empty frame is still a frame
	slot.store(nil)
	assert.Empty(t, slot.take())
}

// coversWith returns true if the topmost triangle covering pos has the given color.
func coversWith(meshes []gui.ClippedMesh, pos gui.Pos2, color gui.Color32) bool {
	var found bool
	var top gui.Color32

	for _, clipped := range meshes {
		if !clipped.ClipRect.Contains(pos) {
			continue
		}

		mesh := clipped.Mesh
		for idx := 0; idx+2 < len(mesh.Indices); idx += 3 {
			a := mesh.Vertices[mesh.Indices[idx]]
			b := mesh.Vertices[mesh.Indices[idx+1]]
			c := mesh.Vertices[mesh.Indices[idx+2]]

			if inTriangle(pos, a.Pos, b.Pos, c.Pos) {
				found = true
				top = a.Color
			}
		}
	}

	return found && top == color
}

func inTriangle(p, a, b, c gui.Pos2) bool {
	cross := func(o, u, v gui.Pos2) float32 {
		return (u[0]-o[0])*(v[1]-o[1]) - (u[1]-o[1])*(v[0]-o[0])
	}

	d1, d2, d3 := cross(a, b, p), cross(b, c, p), cross(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}
