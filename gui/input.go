package gui

import (
	"unicode"

	"github.com/oliverbestmann/halo/glimpse"
)

// points scrolled per line of mouse wheel movement
const scrollLinePoints = 24

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[glimpse.Key]bool

	// keys that were just pressed during the current frame
	JustPressed map[glimpse.Key]bool

	// keys that were just released during the current frame
	JustReleased map[glimpse.Key]bool
}

func (k *KeysState) press(key glimpse.Key) {
	if k.Pressed[key] {
		// key repeat
		return
	}

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key glimpse.Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type PointerState struct {
	// position of the pointer in points, only valid if HasPointer is set
	Pos Pos2

	// movement since the previous frame in points
	Delta Vec2

	HasPointer bool

	Pressed map[glimpse.MouseButton]bool

	// buttons that were clicked during the current frame
	JustPressed map[glimpse.MouseButton]bool

	// buttons that were released during the current frame
	JustReleased map[glimpse.MouseButton]bool

	prevPos   Pos2
	prevValid bool
}

func (p *PointerState) press(button glimpse.MouseButton) {
	setTrue(&p.Pressed, button)
	setTrue(&p.JustPressed, button)
}

func (p *PointerState) release(button glimpse.MouseButton) {
	setFalse(&p.Pressed, button)
	setTrue(&p.JustReleased, button)
}

func (p *PointerState) moveTo(pos Pos2) {
	p.Pos = pos
	p.HasPointer = true
}

func (p *PointerState) leave() {
	p.HasPointer = false

	// buttons can not be released outside of the window
	clear(p.Pressed)
}

func (p *PointerState) beginFrame() {
	if p.HasPointer && p.prevValid {
		p.Delta = p.Pos.Sub(p.prevPos)
	} else {
		p.Delta = Vec2{}
	}

	p.prevPos = p.Pos
	p.prevValid = p.HasPointer
}

func (p *PointerState) nextTick() {
	clear(p.JustPressed)
	clear(p.JustReleased)
}

// InputState is the user input collected since the previous frame.
type InputState struct {
	// seconds since the start of the application
	Time float64

	// seconds since the previous frame
	DeltaTime float32

	Keys    KeysState
	Pointer PointerState

	// scroll delta in points
	Scroll Vec2

	// printable characters typed during this frame
	Text []rune

	Focused bool
}

func (s *InputState) typed(char rune) {
	if !unicode.IsPrint(char) {
		return
	}

	s.Text = append(s.Text, char)
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
	s.Pointer.nextTick()
	s.Scroll = Vec2{}
	s.Text = s.Text[:0]
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
