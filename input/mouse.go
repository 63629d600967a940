// Package input turns polled ebiten mouse state into pointer events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileview/viewport"
)

// Button is a bitmask of held mouse buttons.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Snapshot is the mouse state sampled in one frame.
type Snapshot struct {
	X, Y    int
	Buttons Button
	// Inside is false when the cursor is outside the window or the
	// window has lost focus.
	Inside bool
}

// Mouse implements viewport.InputSource. Handlers run on whichever
// goroutine calls Update or Dispatch, which for a running game is
// ebiten's update goroutine.
type Mouse struct {
	width, height int

	down  []func(x, y int)
	move  []func(x, y int)
	up    []func()
	leave []func()

	prev   Snapshot
	primed bool
}

var _ viewport.InputSource = (*Mouse)(nil)

// NewMouse creates a mouse source for a surface of the given size.
func NewMouse(width, height int) *Mouse {
	return &Mouse{width: width, height: height}
}

func (m *Mouse) OnPointerDown(fn func(x, y int)) { m.down = append(m.down, fn) }
func (m *Mouse) OnPointerMove(fn func(x, y int)) { m.move = append(m.move, fn) }
func (m *Mouse) OnPointerUp(fn func())           { m.up = append(m.up, fn) }
func (m *Mouse) OnPointerLeave(fn func())        { m.leave = append(m.leave, fn) }

// Update samples ebiten's cursor and buttons and dispatches the result.
func (m *Mouse) Update() {
	m.Dispatch(m.Sample())
}

// Sample reads the current cursor position, held buttons and focus.
func (m *Mouse) Sample() Snapshot {
	x, y := ebiten.CursorPosition()
	var b Button
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b |= ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		b |= ButtonRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		b |= ButtonMiddle
	}
	return Snapshot{
		X:       x,
		Y:       y,
		Buttons: b,
		Inside:  ebiten.IsFocused() && m.contains(x, y),
	}
}

func (m *Mouse) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Dispatch compares s with the previous snapshot and fires, in order:
// move if the cursor moved inside the surface, up if any button was
// released inside, down if any button was pressed inside, and leave if
// the cursor went from inside to outside.
func (m *Mouse) Dispatch(s Snapshot) {
	prev := m.prev
	if !m.primed {
		prev = Snapshot{X: s.X, Y: s.Y, Inside: s.Inside}
		m.primed = true
	}
	m.prev = s

	if s.Inside && (s.X != prev.X || s.Y != prev.Y || !prev.Inside) {
		for _, fn := range m.move {
			fn(s.X, s.Y)
		}
	}
	if s.Inside && prev.Buttons&^s.Buttons != 0 {
		for _, fn := range m.up {
			fn()
		}
	}
	if s.Inside && s.Buttons&^prev.Buttons != 0 {
		for _, fn := range m.down {
			fn(s.X, s.Y)
		}
	}
	if prev.Inside && !s.Inside {
		for _, fn := range m.leave {
			fn()
		}
	}
}
