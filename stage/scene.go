package stage

import (
	"github.com/oliverbestmann/halo/gui"
	"github.com/oliverbestmann/halo/pulse"
)

// BackgroundColor clears the surface at the start of every frame.
var BackgroundColor = pulse.ColorRed

// SceneRect is the rectangle painted every frame, centered at the origin.
var SceneRect = gui.RectFromCenterSize(gui.Pos2{0, 0}, gui.Vec2{4000, 4000})

var SceneColor = gui.Green

// DrawScene declares the content of a frame. It does not depend on any input.
func DrawScene(ctx *gui.Context) {
	gui.CentralPanel{}.Show(ctx, func(ui *gui.Ui) {
		ui.Painter().RectFilled(SceneRect, 0, SceneColor)
	})
}
