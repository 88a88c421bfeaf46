package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/halo/glimpse"
)

// frameDriver renders one frame per redraw request and requests
// the next redraw once all pending events are dispatched. All other
// events are passed to the handler if it is an EventHandler, they never
// trigger a frame.
type frameDriver struct {
	handler Handler
	win     glimpse.Window
	times   FrameTimes
}

func (d *frameDriver) handle(ev glimpse.Event) error {
	switch ev.Kind {
	case glimpse.EventRedrawRequested:
		return d.redraw(ev)

	case glimpse.EventMainEventsCleared:
		d.win.RequestRedraw()

	default:
		if events, ok := d.handler.(EventHandler); ok {
			events.HandleEvent(ev)
		}
	}

	return nil
}

func (d *frameDriver) redraw(ev glimpse.Event) error {
	DebugOverlay.StartFrame()

	DebugOverlay.StartUpdate()
	d.handler.Update(ev, d.win)

	DebugOverlay.StartRender()
	if err := d.handler.Render(); err != nil {
		return fmt.Errorf("render frame %d: %w", d.times.FrameCount, err)
	}

	DebugOverlay.EndFrame()

	if d.times.Tick() {
		slog.Debug("Frame times",
			slog.Uint64("frames", d.times.FrameCount),
			slog.Float64("fps", d.times.FPS()),
			slog.Duration("max", d.times.MaxDuration),
		)
	}

	return nil
}
