//go:build js

package glimpse

import (
	"strconv"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	width  uint32
	height uint32
	queue  eventQueue

	// keeps the dom listeners alive
	listeners []js.Func
}

// NewWindow inserts a new canvas element into the document body. The canvas has
// a fixed physical resolution and does not follow the size of the browser window.
func NewWindow(opts WindowOptions) (Window, error) {
	opts = opts.withDefaults()

	document := js.Global().Get("document")
	document.Set("title", opts.Title)

	canvas := document.Call("createElement", "canvas")
	canvas.Set("tabIndex", 0)
	document.Get("body").Call("appendChild", canvas)

	win := &jsWindow{
		canvas: canvas,
		width:  uint32(opts.Width),
		height: uint32(opts.Height),
	}

	// physical resolution of the canvas and its logical size on the page
	ratio := win.ScaleFactor()
	canvas.Set("width", opts.Width)
	canvas.Set("height", opts.Height)

	style := canvas.Get("style")
	style.Set("width", cssPixels(float64(opts.Width)/ratio))
	style.Set("height", cssPixels(float64(opts.Height)/ratio))

	win.configureInput()

	return win, nil
}

func (g *jsWindow) InnerSize() (uint32, uint32) {
	return g.width, g.height
}

func (g *jsWindow) ScaleFactor() float64 {
	ratio := js.Global().Get("devicePixelRatio")
	if ratio.IsUndefined() || ratio.Float() <= 0 {
		return 1
	}

	return ratio.Float()
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) SetCursorIcon(icon CursorIcon) {
	g.canvas.Get("style").Set("cursor", cssCursors[icon])
}

func (g *jsWindow) RequestRedraw() {
	g.queue.redraw = true
}

func (g *jsWindow) Terminate() {
	for _, fn := range g.listeners {
		fn.Release()
	}

	g.listeners = nil
}

func (g *jsWindow) Run(handle func(Event) error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    return
                }
            }
        }
	})`)

	done := make(chan error, 1)

	runOnce := js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := g.queue.dispatch(handle); err != nil {
			done <- err
			return false
		}

		return true
	})

	defer runOnce.Release()

	helper.Call("run", runOnce)

	// block until the loop fails
	return <-done
}

func (g *jsWindow) listen(event string, fn func(ev js.Value)) {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})

	g.listeners = append(g.listeners, listener)
	g.canvas.Call("addEventListener", event, listener)
}

func (g *jsWindow) configureInput() {
	g.listen("mousemove", func(ev js.Value) {
		ratio := g.ScaleFactor()
		g.queue.push(Event{
			Kind: EventCursorMoved,
			X:    ev.Get("offsetX").Float() * ratio,
			Y:    ev.Get("offsetY").Float() * ratio,
		})
	})

	g.listen("mouseleave", func(ev js.Value) {
		g.queue.push(Event{Kind: EventCursorLeft})
	})

	g.listen("mousedown", func(ev js.Value) {
		if button, ok := domMouseButton(ev.Get("button").Int()); ok {
			g.queue.push(Event{Kind: EventMouseInput, Button: button, Pressed: true})
		}
	})

	g.listen("mouseup", func(ev js.Value) {
		if button, ok := domMouseButton(ev.Get("button").Int()); ok {
			g.queue.push(Event{Kind: EventMouseInput, Button: button, Pressed: false})
		}
	})

	g.listen("wheel", func(ev js.Value) {
		// dom reports pixels, events carry lines
		const pixelsPerLine = 50.0
		g.queue.push(Event{
			Kind: EventMouseWheel,
			X:    -ev.Get("deltaX").Float() / pixelsPerLine,
			Y:    -ev.Get("deltaY").Float() / pixelsPerLine,
		})
	})

	g.listen("keydown", func(ev js.Value) {
		code := ev.Get("key").String()

		if key, ok := domKeys[code]; ok {
			g.queue.push(Event{Kind: EventKeyboardInput, Key: key, Pressed: true})
		}

		if runes := []rune(code); len(runes) == 1 {
			g.queue.push(Event{Kind: EventReceivedCharacter, Char: runes[0]})
		}
	})

	g.listen("keyup", func(ev js.Value) {
		if key, ok := domKeys[ev.Get("key").String()]; ok {
			g.queue.push(Event{Kind: EventKeyboardInput, Key: key, Pressed: false})
		}
	})

	g.listen("focus", func(ev js.Value) {
		g.queue.push(Event{Kind: EventFocused, Pressed: true})
	})

	g.listen("blur", func(ev js.Value) {
		g.queue.push(Event{Kind: EventFocused, Pressed: false})
	})
}

func cssPixels(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "px"
}

func domMouseButton(button int) (MouseButton, bool) {
	switch button {
	case 0:
		return MouseButtonLeft, true
	case 1:
		return MouseButtonMiddle, true
	case 2:
		return MouseButtonRight, true
	default:
		return 0, false
	}
}

var domKeys = map[string]Key{
	"Escape":     KeyEscape,
	"Tab":        KeyTab,
	"Backspace":  KeyBackspace,
	"Enter":      KeyEnter,
	" ":          KeySpace,
	"Delete":     KeyDelete,
	"Home":       KeyHome,
	"End":        KeyEnd,
	"ArrowLeft":  KeyArrowLeft,
	"ArrowRight": KeyArrowRight,
	"ArrowUp":    KeyArrowUp,
	"ArrowDown":  KeyArrowDown,
	"a":          KeyA,
	"c":          KeyC,
	"v":          KeyV,
	"x":          KeyX,
	"z":          KeyZ,
}

var cssCursors = map[CursorIcon]string{
	CursorDefault:          "default",
	CursorPointingHand:     "pointer",
	CursorText:             "text",
	CursorCrosshair:        "crosshair",
	CursorResizeHorizontal: "ew-resize",
}
