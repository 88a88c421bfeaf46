package glimpse

//go:generate go tool stringer -type=EventKind -trimprefix=Event
//go:generate go tool stringer -type=Key -trimprefix=Key

type EventKind uint8

const (
	EventUnknown EventKind = iota

	// EventRedrawRequested is emitted once per frame after a call to Window.RequestRedraw.
	EventRedrawRequested

	// EventMainEventsCleared is emitted after all pending input events
	// of the current loop iteration were dispatched.
	EventMainEventsCleared

	EventCursorMoved
	EventCursorLeft
	EventMouseInput
	EventMouseWheel
	EventKeyboardInput
	EventReceivedCharacter
	EventResized
	EventScaleFactorChanged
	EventFocused
)

type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type Key uint32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyDelete
	KeyHome
	KeyEnd
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyC
	KeyV
	KeyX
	KeyZ
)

// Event is a platform event. Only the fields belonging to Kind carry a value.
type Event struct {
	Kind EventKind

	// cursor position in physical pixels for EventCursorMoved,
	// scroll delta in lines for EventMouseWheel
	X, Y float64

	Button MouseButton
	Key    Key

	// true if a button or key was pressed, false if it was released.
	// For EventFocused this is the new focus state.
	Pressed bool

	Char rune

	// new physical size for EventResized
	Width, Height uint32

	// new scale factor for EventScaleFactorChanged
	ScaleFactor float64
}

func RedrawRequested() Event {
	return Event{Kind: EventRedrawRequested}
}

func MainEventsCleared() Event {
	return Event{Kind: EventMainEventsCleared}
}

// IsInput returns true for events that originate from the user.
func (ev Event) IsInput() bool {
	switch ev.Kind {
	case EventCursorMoved, EventCursorLeft, EventMouseInput, EventMouseWheel,
		EventKeyboardInput, EventReceivedCharacter:
		return true
	default:
		return false
	}
}
