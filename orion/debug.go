package orion

import (
	"fmt"
	"runtime"
	"time"

	"github.com/oliverbestmann/halo/gui"
)

type frame struct {
	Total  time.Duration
	Update time.Duration
	Render time.Duration
}

// DebugOverlay records the timings of the frame driver.
var DebugOverlay debugOverlay

type debugOverlay struct {
	frameCount int
	frames     [60 * 10]frame

	timeStartFrame  time.Time
	timeStartUpdate time.Time
	timeStartRender time.Time
	timeEndFrame    time.Time

	mem runtime.MemStats
}

func (d *debugOverlay) StartFrame() {
	now := time.Now()

	if !d.timeStartFrame.IsZero() {
		d.record(frame{
			Total:  now.Sub(d.timeStartFrame),
			Update: d.timeStartRender.Sub(d.timeStartUpdate),
			Render: d.timeEndFrame.Sub(d.timeStartRender),
		})
	}

	d.timeStartFrame = now
}

func (d *debugOverlay) record(f frame) {
	d.frames[d.frameCount%len(d.frames)] = f
	d.frameCount += 1
}

func (d *debugOverlay) StartUpdate() {
	d.timeStartUpdate = time.Now()
}

func (d *debugOverlay) StartRender() {
	d.timeStartRender = time.Now()
}

func (d *debugOverlay) EndFrame() {
	d.timeEndFrame = time.Now()

	runtime.ReadMemStats(&d.mem)
}

// Show declares a window with the statistics and a histogram of the recent frame times.
func (d *debugOverlay) Show(ctx *gui.Context) {
	window := gui.Window{
		Title:    "Debug",
		Pos:      gui.Pos2{16, 16},
		MinWidth: 240,
	}

	window.Show(ctx, func(ui *gui.Ui) {
		for _, line := range d.Lines() {
			ui.Monospace(line)
		}

		ui.Separator()

		d.showHistogram(ui, ui.Allocate(gui.Vec2{240, 64}))
	})
}

func (d *debugOverlay) showHistogram(ui *gui.Ui, rect gui.Rect) {
	const binCount = 120
	const binWidth = 2

	painter := ui.Painter().WithClipRect(rect)

	// full height of the histogram is 1/30th of a second
	timeScale := rect.Height() / (1.0 / 30.0)

	colorUpdate := gui.Color32FromUnmultiplied(64, 64, 255, 217)
	colorRender := gui.Color32FromUnmultiplied(64, 255, 64, 217)
	colorRemaining := gui.Color32FromUnmultiplied(64, 64, 64, 128)

	for bin := range binCount {
		idx := d.frameCount - binCount + bin
		if idx < 0 {
			continue
		}

		f := d.frames[idx%len(d.frames)]

		x := rect.Min[0] + float32(bin)*binWidth
		y := rect.Max[1]

		bar := func(duration time.Duration, color gui.Color32) {
			height := float32(duration.Seconds()) * timeScale
			if height <= 0 {
				return
			}

			painter.RectFilled(gui.RectFromMinMax(gui.Pos2{x, y - height}, gui.Pos2{x + binWidth, y}), 0, color)
			y -= height
		}

		bar(f.Update, colorUpdate)
		bar(f.Render, colorRender)
		bar(f.Total-f.Update-f.Render, colorRemaining)
	}

	// marks 60 frames per second
	y := rect.Max[1] - timeScale/60
	painter.RectFilled(gui.RectFromMinMax(gui.Pos2{rect.Min[0], y}, gui.Pos2{rect.Max[0], y + 1}), 0, gui.White)
}

func (d *debugOverlay) FPS() float64 {
	// calculate the average frame time
	var frameCount int
	var totalTime time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			totalTime += frame.Total
		}
	}

	if frameCount == 0 {
		return 0
	}

	averageFrameTime := totalTime / time.Duration(frameCount)

	// calculate the frames per second
	return 1.0 / averageFrameTime.Seconds()
}

// Lines returns the statistics as text.
func (d *debugOverlay) Lines() []string {
	lastCycle := (d.mem.NumGC + 255) % 256
	lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

	return []string{
		fmt.Sprintf("FPS: %1.2f", d.FPS()),
		fmt.Sprintf("Frames: %d", d.frameCount),
		"",
		"Memory",
		fmt.Sprintf("  Heap Objects: %d", d.mem.HeapObjects),
		fmt.Sprintf("  Heap InUse:   %1.2fmb", float64(d.mem.HeapInuse)/(1024.0*1024.0)),
		fmt.Sprintf("  Stack InUse:  %1.2fmb", float64(d.mem.StackInuse)/(1024.0*1024.0)),
		"",
		"GC:",
		fmt.Sprintf("  Cycles:   %d", d.mem.NumGC),
		fmt.Sprintf("  Fraction: %1.2f%%", d.mem.GCCPUFraction*100),
		fmt.Sprintf("  Duration: %1.2fms", lastCycleDur.Seconds()*1000),
	}
}
