package gui

// Ui places widgets from top to bottom inside its max rect.
type Ui struct {
	ctx     *Context
	painter Painter
	maxRect Rect

	// position of the next widget
	cursor Pos2

	// area used by all widgets so far
	minRect Rect
}

func newUi(ctx *Context, painter Painter, maxRect Rect) *Ui {
	return &Ui{
		ctx:     ctx,
		painter: painter,
		maxRect: maxRect,
		cursor:  maxRect.Min,
		minRect: Rect{Min: maxRect.Min, Max: maxRect.Min},
	}
}

func (ui *Ui) Ctx() *Context {
	return ui.ctx
}

func (ui *Ui) Painter() Painter {
	return ui.painter
}

// MaxRect is the area available to this ui.
func (ui *Ui) MaxRect() Rect {
	return ui.maxRect
}

// MinRect is the area used by the widgets added so far.
func (ui *Ui) MinRect() Rect {
	return ui.minRect
}

func (ui *Ui) AvailableSize() Vec2 {
	return ui.maxRect.Max.Sub(ui.cursor).Max(Vec2{})
}

// Allocate reserves space for a widget below the previous one.
func (ui *Ui) Allocate(size Vec2) Rect {
	rect := RectFromMinSize(ui.cursor, size)

	ui.cursor[1] = rect.Max[1] + ui.ctx.style.ItemSpacing
	ui.minRect = ui.minRect.Union(rect)

	return rect
}

func (ui *Ui) AddSpace(amount float32) {
	ui.cursor[1] += amount
}

// Label shows a line of text using the proportional font.
func (ui *Ui) Label(text string) Rect {
	return ui.text(Proportional, text)
}

// Monospace shows a line of text using the monospace font.
func (ui *Ui) Monospace(text string) Rect {
	return ui.text(Monospace, text)
}

func (ui *Ui) text(family FontFamily, text string) Rect {
	galley := ui.ctx.fonts.Layout(family, text)
	rect := ui.Allocate(galley.Size)
	return ui.painter.Galley(rect.Min, galley, ui.ctx.style.TextColor)
}

// Separator draws a horizontal line across the available width.
func (ui *Ui) Separator() Rect {
	rect := ui.Allocate(Vec2{ui.AvailableSize()[0], 1})
	ui.painter.RectFilled(rect, 0, ui.ctx.style.WindowStroke.Color)
	return rect
}

// Hovered returns true if the pointer is above the given rect.
func (ui *Ui) Hovered(rect Rect) bool {
	pointer := ui.ctx.input.Pointer
	return pointer.HasPointer && rect.Contains(pointer.Pos) && ui.painter.clipRect.Contains(pointer.Pos)
}
