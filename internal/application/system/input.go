// Package system bridges raw engine device state into the normalized
// event stream the UI core consumes.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
)

// keyBindings maps the engine keys the UI reacts to onto logical keys.
var keyBindings = []struct {
	engine  ebiten.Key
	logical input.Key
}{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyU, input.KeyU},
	{ebiten.KeyN, input.KeyN},
}

// InputSystem polls the engine once per frame and converts cursor, mouse
// button, key, and window size changes into input events.
type InputSystem struct {
	lastX, lastY int
	lastW, lastH int
	polled       bool
}

// NewInputSystem creates a new input system.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// PollEvents reads the current device state and returns the events since
// the last poll, in a stable order: resize first, then pointer motion,
// then button edges, then keys. winW and winH are the current logical
// window size as reported by the game's Layout.
func (s *InputSystem) PollEvents(winW, winH int) []input.Event {
	var events []input.Event

	if !s.polled || winW != s.lastW || winH != s.lastH {
		events = append(events, input.Resized(winW, winH))
		s.lastW, s.lastH = winW, winH
	}

	mx, my := ebiten.CursorPosition()
	if !s.polled || mx != s.lastX || my != s.lastY {
		events = append(events, input.Move(float64(mx), float64(my)))
		s.lastX, s.lastY = mx, my
	}
	s.polled = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Down(float64(mx), float64(my)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, input.Up(float64(mx), float64(my)))
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.engine) {
			events = append(events, input.Press(b.logical))
		}
	}

	return events
}
