package gui

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/halo/glimpse"
)

// Layer defines the paint order of shapes. Shapes of a later layer are
// painted above the shapes of all previous layers.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerMiddle
	LayerForeground

	layerCount
)

type Descriptor struct {
	// size of the screen in physical pixels
	PhysicalWidth  uint32
	PhysicalHeight uint32

	// physical pixels per point
	ScaleFactor float64

	// uses DefaultFontDefinitions if nil
	Fonts *FontDefinitions

	// uses DefaultStyle if nil
	Style *Style
}

// Output contains the requests of the ui to the platform for one frame.
type Output struct {
	CursorIcon glimpse.CursorIcon
}

// Context holds the state of the gui between frames.
type Context struct {
	physicalWidth  uint32
	physicalHeight uint32
	pixelsPerPoint float32

	fonts *Fonts
	style Style

	input    InputState
	time     float64
	prevTime float64
	frameNr  uint64
	inFrame  bool

	layers [layerCount][]ClippedShape
	output Output

	// the cursor icon last applied to the window
	appliedCursor glimpse.CursorIcon

	windows map[string]*windowState
}

func NewContext(desc Descriptor) (*Context, error) {
	pixelsPerPoint := float32(desc.ScaleFactor)
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}

	fontDefs := DefaultFontDefinitions()
	if desc.Fonts != nil {
		fontDefs = *desc.Fonts
	}

	style := DefaultStyle()
	if desc.Style != nil {
		style = *desc.Style
	}

	fonts, err := NewFonts(fontDefs, pixelsPerPoint)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	ctx := &Context{
		physicalWidth:  desc.PhysicalWidth,
		physicalHeight: desc.PhysicalHeight,
		pixelsPerPoint: pixelsPerPoint,
		fonts:          fonts,
		style:          style,
		windows:        map[string]*windowState{},
	}

	ctx.input.Focused = true

	return ctx, nil
}

func (c *Context) PixelsPerPoint() float32 {
	return c.pixelsPerPoint
}

// PhysicalSize returns the size of the screen in physical pixels.
func (c *Context) PhysicalSize() (width, height uint32) {
	return c.physicalWidth, c.physicalHeight
}

// ScreenRect returns the full drawable area in points.
func (c *Context) ScreenRect() Rect {
	size := Vec2{float32(c.physicalWidth), float32(c.physicalHeight)}
	return RectFromMinSize(Pos2{}, size.MulScalar(1/c.pixelsPerPoint))
}

func (c *Context) Style() Style {
	return c.style
}

func (c *Context) SetStyle(style Style) {
	c.style = style
}

func (c *Context) Fonts() *Fonts {
	return c.fonts
}

// FontImage returns the current font atlas for upload to the gpu.
func (c *Context) FontImage() *FontImage {
	return c.fonts.Image()
}

// Input returns the input of the current frame. Do not modify.
func (c *Context) Input() *InputState {
	return &c.input
}

// FrameNr returns the number of completed frames.
func (c *Context) FrameNr() uint64 {
	return c.frameNr
}

// SetCursorIcon requests a cursor icon for the current frame.
func (c *Context) SetCursorIcon(icon glimpse.CursorIcon) {
	c.output.CursorIcon = icon
}

// HandleEvent feeds a platform event into the input state of the next frame.
func (c *Context) HandleEvent(ev glimpse.Event) {
	switch ev.Kind {
	case glimpse.EventCursorMoved:
		pos := Pos2{float32(ev.X), float32(ev.Y)}
		c.input.Pointer.moveTo(pos.MulScalar(1 / c.pixelsPerPoint))

	case glimpse.EventCursorLeft:
		c.input.Pointer.leave()

	case glimpse.EventMouseInput:
		if ev.Pressed {
			c.input.Pointer.press(ev.Button)
		} else {
			c.input.Pointer.release(ev.Button)
		}

	case glimpse.EventMouseWheel:
		delta := Vec2{float32(ev.X), float32(ev.Y)}
		c.input.Scroll = c.input.Scroll.Add(delta.MulScalar(scrollLinePoints))

	case glimpse.EventKeyboardInput:
		if ev.Pressed {
			c.input.Keys.press(ev.Key)
		} else {
			c.input.Keys.release(ev.Key)
		}

	case glimpse.EventReceivedCharacter:
		c.input.typed(ev.Char)

	case glimpse.EventResized:
		c.physicalWidth = ev.Width
		c.physicalHeight = ev.Height

	case glimpse.EventScaleFactorChanged:
		c.setPixelsPerPoint(float32(ev.ScaleFactor))

	case glimpse.EventFocused:
		c.input.Focused = ev.Pressed

		if !ev.Pressed {
			// keys released while unfocused never reach us
			clear(c.input.Keys.Pressed)
		}
	}
}

func (c *Context) setPixelsPerPoint(pixelsPerPoint float32) {
	if pixelsPerPoint <= 0 {
		return
	}

	if err := c.fonts.SetPixelsPerPoint(pixelsPerPoint); err != nil {
		slog.Warn("Failed to rebuild font atlas", slog.Any("err", err))
		return
	}

	// pointer positions are kept in points
	scale := c.pixelsPerPoint / pixelsPerPoint
	c.input.Pointer.Pos = c.input.Pointer.Pos.MulScalar(scale)
	c.input.Pointer.prevPos = c.input.Pointer.prevPos.MulScalar(scale)

	c.pixelsPerPoint = pixelsPerPoint
}

// UpdateTime sets the time in seconds for the next frame.
func (c *Context) UpdateTime(seconds float64) {
	c.time = seconds
}

// BeginFrame starts declaring the ui of a new frame.
// Panics if the previous frame was not ended.
func (c *Context) BeginFrame() {
	if c.inFrame {
		panic("gui: BeginFrame called while a frame is in progress")
	}

	c.inFrame = true

	if c.frameNr > 0 {
		c.input.DeltaTime = float32(c.time - c.prevTime)
	}

	c.prevTime = c.time
	c.input.Time = c.time
	c.input.Pointer.beginFrame()

	for idx := range c.layers {
		c.layers[idx] = c.layers[idx][:0]
	}

	c.output = Output{}
}

// EndFrame finishes the current frame and returns all shapes in paint order.
// Cursor changes are applied to the window, if one is given.
// Panics if no frame was started.
func (c *Context) EndFrame(win glimpse.Window) (Output, []ClippedShape) {
	if !c.inFrame {
		panic("gui: EndFrame called without BeginFrame")
	}

	c.inFrame = false
	c.frameNr++

	var count int
	for _, layer := range c.layers {
		count += len(layer)
	}

	shapes := make([]ClippedShape, 0, count)
	for _, layer := range c.layers {
		shapes = append(shapes, layer...)
	}

	if win != nil && c.output.CursorIcon != c.appliedCursor {
		win.SetCursorIcon(c.output.CursorIcon)
		c.appliedCursor = c.output.CursorIcon
	}

	c.input.nextTick()

	return c.output, shapes
}

// Tessellate converts the shapes of a frame into meshes.
func (c *Context) Tessellate(shapes []ClippedShape) []ClippedMesh {
	return NewTessellator(c.pixelsPerPoint, c.fonts.Image().WhiteUV()).Tessellate(shapes)
}

// LayerPainter returns a painter that paints on top of the given layer.
func (c *Context) LayerPainter(layer Layer, clipRect Rect) Painter {
	if !c.inFrame {
		panic("gui: painting outside of a frame")
	}

	return Painter{
		fonts:    c.fonts,
		shapes:   &c.layers[layer],
		clipRect: clipRect,
	}
}
