// Package stage owns all gpu and gui resources of the application and
// renders one frame per Update and Render pair.
package stage

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/oliverbestmann/halo/glimpse"
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/orion"
	"github.com/oliverbestmann/halo/pulse"
	"github.com/oliverbestmann/halo/pulse/guipass"
)

type Options struct {
	// shows a window with frame statistics above the scene
	Debug bool
}

type State struct {
	opts Options

	ctx      *pulse.Context
	view     *pulse.View
	gui      *gui.Context
	renderer *guipass.Renderer

	slot   meshSlot
	cursor glimpse.CursorIcon
}

// New initializes the gpu for the window and prepares the gui.
func New(win glimpse.Window, opts Options) (*State, error) {
	width, height := win.InnerSize()
	scaleFactor := win.ScaleFactor()

	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return nil, fmt.Errorf("initialize wgpu: %w", err)
	}

	ctxGuard := pulse.NewReleaseGuard(ctx)
	defer ctxGuard.Release()

	view, err := pulse.NewView(ctx, width, height)
	if err != nil {
		return nil, fmt.Errorf("configure surface: %w", err)
	}

	guiCtx, err := gui.NewContext(gui.Descriptor{
		PhysicalWidth:  width,
		PhysicalHeight: height,
		ScaleFactor:    scaleFactor,
	})

	if err != nil {
		return nil, fmt.Errorf("create gui: %w", err)
	}

	renderer, err := guipass.New(ctx, view.Format(), 1)
	if err != nil {
		return nil, fmt.Errorf("create gui renderer: %w", err)
	}

	ctxGuard.Keep()

	return &State{
		opts:     opts,
		ctx:      ctx,
		view:     view,
		gui:      guiCtx,
		renderer: renderer,
	}, nil
}

// HandleEvent feeds platform events received between two frames into the gui.
func (s *State) HandleEvent(ev glimpse.Event) {
	s.gui.HandleEvent(ev)
}

// screen describes the render target in the same units the gui tessellated in.
func (s *State) screen() guipass.ScreenDescriptor {
	width, height := s.gui.PhysicalSize()

	return guipass.ScreenDescriptor{
		PhysicalWidth:  width,
		PhysicalHeight: height,
		ScaleFactor:    s.gui.PixelsPerPoint(),
	}
}

// Update feeds the event into the gui and declares the next frame.
func (s *State) Update(ev glimpse.Event, win glimpse.Window) {
	s.gui.HandleEvent(ev)
	s.gui.UpdateTime(glimpse.Now())

	s.gui.BeginFrame()

	DrawScene(s.gui)

	if s.opts.Debug {
		orion.DebugOverlay.Show(s.gui)
	}

	output, shapes := s.gui.EndFrame(win)

	if output.CursorIcon != s.cursor {
		slog.Debug("Cursor changed", slog.String("icon", output.CursorIcon.String()))
		s.cursor = output.CursorIcon
	}

	s.slot.store(s.gui.Tessellate(shapes))
}

// Render draws the frame declared by the previous Update and presents it.
// Panics if Update was not called before.
func (s *State) Render() error {
	meshes := s.slot.take()
	screen := s.screen()

	// get the surface texture (the actual screen)
	surface, err := s.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}

	defer func() {
		if surface != nil {
			surface.Release()
		}
	}()

	surfaceView, err := surface.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer surfaceView.Release()

	encoder, err := s.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Frame"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	if err := s.renderer.UpdateTexture(s.gui.FontImage()); err != nil {
		return err
	}

	if err := s.renderer.UpdateUserTextures(); err != nil {
		return err
	}

	if err := s.renderer.UpdateBuffers(meshes, screen); err != nil {
		return fmt.Errorf("upload meshes: %w", err)
	}

	if err := s.renderer.Execute(encoder, surfaceView, meshes, screen, &BackgroundColor); err != nil {
		return fmt.Errorf("record gui pass: %w", err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer cmdBuffer.Release()

	s.ctx.Submit(cmdBuffer)
	s.ctx.Surface.Present()

	// we do not need to release the screen if present was successful
	surface = nil

	return nil
}

// Release frees all gpu resources in reverse order of creation.
func (s *State) Release() {
	s.renderer.Release()
	s.ctx.Release()
}
