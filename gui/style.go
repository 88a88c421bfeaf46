package gui

type Style struct {
	// background of the central panel
	PanelFill Color32

	WindowFill     Color32
	WindowStroke   Stroke
	WindowRounding float32

	TextColor Color32

	// space between the border of a panel or window and its content
	Margin float32

	// vertical space between two widgets
	ItemSpacing float32
}

func DefaultStyle() Style {
	return Style{
		PanelFill:      Gray(27),
		WindowFill:     Gray(27),
		WindowStroke:   Stroke{Width: 1, Color: Gray(60)},
		WindowRounding: 6,
		TextColor:      Gray(140),
		Margin:         8,
		ItemSpacing:    4,
	}
}
