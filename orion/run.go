package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/halo/glimpse"
)

// Handler receives the frames of the event loop. It owns all gpu and gui resources.
type Handler interface {
	// Update declares the next frame. The event is the redraw request that triggered the frame.
	Update(ev glimpse.Event, win glimpse.Window)

	// Render draws the frame declared by the previous call to Update.
	Render() error
}

// EventHandler is implemented by handlers that want to see the platform events
// between frames, e.g. input.
type EventHandler interface {
	HandleEvent(ev glimpse.Event)
}

type RunOptions struct {
	// window to create, ignored if Window is set
	WindowOptions glimpse.WindowOptions

	// Window to run in. A new window is created if nil
	Window glimpse.Window

	// NewHandler creates the handler once the window exists. This is the only field
	// that is required. If the handler has a Release method, it is called after the
	// event loop stopped.
	NewHandler func(win glimpse.Window) (Handler, error)
}

// Run opens the window and drives the handler until the window is closed or
// rendering fails. Initialization errors are returned before the loop starts.
func Run(opts RunOptions) error {
	if opts.NewHandler == nil {
		return errors.New("NewHandler must not be nil")
	}

	win := opts.Window
	if win == nil {
		var err error

		// create a new window (or canvas)
		win, err = glimpse.NewWindow(opts.WindowOptions)
		if err != nil {
			return fmt.Errorf("create window: %w", err)
		}
	}

	defer win.Terminate()

	width, height := win.InnerSize()
	slog.Info("Window ready",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
		slog.Float64("scaleFactor", win.ScaleFactor()),
	)

	handler, err := opts.NewHandler(win)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	if releaser, ok := handler.(interface{ Release() }); ok {
		defer releaser.Release()
	}

	driver := &frameDriver{handler: handler, win: win}
	return win.Run(driver.handle)
}
