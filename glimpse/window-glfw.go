//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	queue eventQueue

	cursors map[CursorIcon]*glfw.Cursor
}

func NewWindow(opts WindowOptions) (Window, error) {
	opts = opts.withDefaults()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	// the surface is configured exactly once
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window, cursors: map[CursorIcon]*glfw.Cursor{}}

	switch opts.Profile {
	case "":
	case "cpu":
		w.prof = profile.Start(profile.CPUProfile)
	case "mem":
		w.prof = profile.Start(profile.MemProfile)
	default:
		slog.Warn("Unknown profile mode", slog.String("mode", opts.Profile))
	}

	w.configureInput()

	return w, nil
}

func (g *glfwWindow) InnerSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) ScaleFactor() float64 {
	scale, _ := g.win.GetContentScale()
	if scale <= 0 {
		return 1
	}

	return float64(scale)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.queue.redraw = true
}

func (g *glfwWindow) SetCursorIcon(icon CursorIcon) {
	if icon == CursorDefault {
		g.win.SetCursor(nil)
		return
	}

	cursor, ok := g.cursors[icon]
	if !ok {
		cursor = glfw.CreateStandardCursor(glfwCursorShapes[icon])
		g.cursors[icon] = cursor
	}

	g.win.SetCursor(cursor)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	for _, cursor := range g.cursors {
		cursor.Destroy()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handle func(Event) error) error {
	for !g.win.ShouldClose() {
		glfw.PollEvents()

		if err := g.queue.dispatch(handle); err != nil {
			return err
		}
	}

	return nil
}

func (g *glfwWindow) configureInput() {
	window := g.win
	queue := &g.queue

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		queue.push(Event{Kind: EventKeyboardInput, Key: key, Pressed: action == glfw.Press})
	})

	window.SetCharCallback(func(_win *glfw.Window, char rune) {
		queue.push(Event{Kind: EventReceivedCharacter, Char: char})
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, ok := glfwToMouseButton[btn]
		if !ok {
			return
		}

		queue.push(Event{Kind: EventMouseInput, Button: button, Pressed: action == glfw.Press})
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		// glfw reports screen coordinates, events carry physical pixels
		fbWidth, fbHeight := window.GetFramebufferSize()
		winWidth, winHeight := window.GetSize()

		x, y := screenToPhysical(xpos, ypos, fbWidth, fbHeight, winWidth, winHeight)
		queue.push(Event{Kind: EventCursorMoved, X: x, Y: y})
	})

	window.SetCursorEnterCallback(func(_win *glfw.Window, entered bool) {
		if !entered {
			queue.push(Event{Kind: EventCursorLeft})
		}
	})

	window.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		queue.push(Event{Kind: EventMouseWheel, X: xoff, Y: yoff})
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		queue.push(Event{Kind: EventFocused, Pressed: focused})
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		queue.push(Event{Kind: EventResized, Width: uint32(width), Height: uint32(height)})
	})

	window.SetContentScaleCallback(func(_win *glfw.Window, x float32, y float32) {
		queue.push(Event{Kind: EventScaleFactorChanged, ScaleFactor: float64(x)})
	})
}

var glfwToMouseButton = map[glfw.MouseButton]MouseButton{
	glfw.MouseButtonLeft:   MouseButtonLeft,
	glfw.MouseButtonRight:  MouseButtonRight,
	glfw.MouseButtonMiddle: MouseButtonMiddle,
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape:    KeyEscape,
	glfw.KeyTab:       KeyTab,
	glfw.KeyBackspace: KeyBackspace,
	glfw.KeyEnter:     KeyEnter,
	glfw.KeySpace:     KeySpace,
	glfw.KeyDelete:    KeyDelete,
	glfw.KeyHome:      KeyHome,
	glfw.KeyEnd:       KeyEnd,
	glfw.KeyLeft:      KeyArrowLeft,
	glfw.KeyRight:     KeyArrowRight,
	glfw.KeyUp:        KeyArrowUp,
	glfw.KeyDown:      KeyArrowDown,
	glfw.KeyA:         KeyA,
	glfw.KeyC:         KeyC,
	glfw.KeyV:         KeyV,
	glfw.KeyX:         KeyX,
	glfw.KeyZ:         KeyZ,
}

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}

var glfwCursorShapes = map[CursorIcon]glfw.StandardCursor{
	CursorPointingHand:     glfw.HandCursor,
	CursorText:             glfw.IBeamCursor,
	CursorCrosshair:        glfw.CrosshairCursor,
	CursorResizeHorizontal: glfw.HResizeCursor,
}
