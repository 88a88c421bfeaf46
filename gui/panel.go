package gui

import "github.com/oliverbestmann/halo/glimpse"

// CentralPanel covers the whole screen behind all windows.
type CentralPanel struct {
	// overrides the panel fill of the style
	Fill *Color32
}

func (p CentralPanel) Show(ctx *Context, add func(ui *Ui)) {
	rect := ctx.ScreenRect()

	fill := ctx.style.PanelFill
	if p.Fill != nil {
		fill = *p.Fill
	}

	painter := ctx.LayerPainter(LayerBackground, rect)
	painter.RectFilled(rect, 0, fill)

	add(newUi(ctx, painter, rect.Expand(-ctx.style.Margin)))
}

// Window is a floating area with a title bar. A window can be moved by
// dragging its title bar. Windows are identified by their title.
type Window struct {
	Title string

	// initial position of the top left corner
	Pos Pos2

	// minimum width of the content area
	MinWidth float32
}

type windowState struct {
	pos      Pos2
	dragging bool
}

// Show declares the window and its content. Returns the area covered by the window.
func (w Window) Show(ctx *Context, add func(ui *Ui)) Rect {
	state, ok := ctx.windows[w.Title]
	if !ok {
		state = &windowState{pos: w.Pos}
		ctx.windows[w.Title] = state
	}

	style := ctx.style
	screen := ctx.ScreenRect()

	title := ctx.fonts.Layout(Proportional, w.Title)
	titleHeight := title.Size[1] + 2*style.ItemSpacing

	// the background of the window must be painted before its content,
	// but its size is only known after adding the content.
	var content []ClippedShape

	contentMin := state.pos.Add(Vec2{style.Margin, titleHeight + style.Margin})
	ui := newUi(ctx, Painter{fonts: ctx.fonts, shapes: &content, clipRect: screen}, Rect{Min: contentMin, Max: screen.Max})
	add(ui)

	used := ui.MinRect()
	width := max(used.Width(), title.Size[0], w.MinWidth) + 2*style.Margin
	height := titleHeight + used.Height() + 2*style.Margin

	frame := RectFromMinSize(state.pos, Vec2{width, height})
	titleBar := RectFromMinSize(state.pos, Vec2{width, titleHeight})

	painter := ctx.LayerPainter(LayerMiddle, screen)
	painter.Add(RectShape{
		Rect:     frame,
		Rounding: style.WindowRounding,
		Fill:     style.WindowFill,
		Stroke:   style.WindowStroke,
	})

	painter.Galley(titleBar.Min.Add(Vec2{style.Margin, style.ItemSpacing}), title, style.TextColor)

	painter.RectFilled(Rect{
		Min: Pos2{frame.Min[0], titleBar.Max[1]},
		Max: Pos2{frame.Max[0], titleBar.Max[1] + style.WindowStroke.Width},
	}, 0, style.WindowStroke.Color)

	*painter.shapes = append(*painter.shapes, content...)

	w.interact(ctx, state, titleBar)

	return frame
}

func (w Window) interact(ctx *Context, state *windowState, titleBar Rect) {
	pointer := &ctx.input.Pointer

	hovered := pointer.HasPointer && titleBar.Contains(pointer.Pos)

	if hovered && pointer.JustPressed[glimpse.MouseButtonLeft] {
		state.dragging = true
	}

	if !pointer.Pressed[glimpse.MouseButtonLeft] {
		state.dragging = false
	}

	if state.dragging {
		// the new position is visible with the next frame
		state.pos = state.pos.Add(pointer.Delta)
	}

	if hovered || state.dragging {
		ctx.SetCursorIcon(glimpse.CursorPointingHand)
	}
}
