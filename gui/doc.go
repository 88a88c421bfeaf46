// Package gui implements a small immediate-mode user interface. The interface is
// declared anew every frame between Context.BeginFrame and Context.EndFrame, which
// yields a list of shapes. Context.Tessellate turns those shapes into triangle meshes
// that a renderer can upload to the gpu.
//
//	ctx.HandleEvent(event)
//	ctx.UpdateTime(glimpse.Now())
//	ctx.BeginFrame()
//
//	gui.CentralPanel{}.Show(ctx, func(ui *gui.Ui) {
//		ui.Painter().RectFilled(rect, 0, gui.Green)
//	})
//
//	_, shapes := ctx.EndFrame(window)
//	meshes := ctx.Tessellate(shapes)
package gui
