package glimpse

import "github.com/cogentcore/webgpu/wgpu"

type Window interface {
	// InnerSize returns the size of the drawable area in physical pixels.
	InnerSize() (width, height uint32)

	// ScaleFactor is the number of physical pixels per logical pixel.
	ScaleFactor() float64

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// SetCursorIcon changes the mouse cursor shown above the window.
	SetCursorIcon(icon CursorIcon)

	// RequestRedraw schedules an EventRedrawRequested for the
	// current or the next loop iteration.
	RequestRedraw()

	// Run runs the event loop and calls handle for each event. The loop stops
	// when the window is closed or if handle returns an error.
	Run(handle func(Event) error) error

	Terminate()
}

//go:generate go tool stringer -type=CursorIcon -trimprefix=Cursor

// CursorIcon is the shape of the mouse cursor.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
	CursorText
	CursorCrosshair
	CursorResizeHorizontal
)

type WindowOptions struct {
	// physical size of the window
	Width  int
	Height int

	Title string

	// Profile enables profiling of the native window, one of "cpu" or "mem".
	// Ignored in the browser.
	Profile string
}

func (opts WindowOptions) withDefaults() WindowOptions {
	if opts.Width == 0 {
		opts.Width = 1920
	}

	if opts.Height == 0 {
		opts.Height = 1080
	}

	if opts.Title == "" {
		opts.Title = "halo"
	}

	return opts
}

// eventQueue collects events from platform callbacks until the
// loop dispatches them.
type eventQueue struct {
	events []Event
	redraw bool
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

// dispatch runs one loop iteration: all pending events, then
// EventMainEventsCleared, then EventRedrawRequested if one was requested.
func (q *eventQueue) dispatch(handle func(Event) error) error {
	pending := q.events
	q.events = nil

	for _, ev := range pending {
		if err := handle(ev); err != nil {
			return err
		}
	}

	if err := handle(MainEventsCleared()); err != nil {
		return err
	}

	if q.redraw {
		q.redraw = false

		if err := handle(RedrawRequested()); err != nil {
			return err
		}
	}

	return nil
}

// screenToPhysical converts a position in screen coordinates into physical pixels.
// Screen coordinates match physical pixels on most platforms, but not on macOS
// where the framebuffer is larger than the window.
func screenToPhysical(x, y float64, fbWidth, fbHeight, winWidth, winHeight int) (float64, float64) {
	if winWidth <= 0 || winHeight <= 0 {
		return x, y
	}

	return x * float64(fbWidth) / float64(winWidth), y * float64(fbHeight) / float64(winHeight)
}
