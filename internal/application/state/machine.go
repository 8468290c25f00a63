package state

import (
	"log"

	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
)

// Machine owns the current screen and the transition rules between
// screens. At most one transition is applied per frame: the first Set of a
// frame wins and later requests are dropped until the next BeginFrame.
type Machine struct {
	current      Screen
	transitioned bool

	// OnPause fires once when a transition enters ScreenPause; OnResume
	// fires once when a transition leaves it. Either may be nil.
	OnPause  func()
	OnResume func()
}

// NewMachine creates a machine starting on the given screen.
func NewMachine(start Screen) *Machine {
	return &Machine{current: start}
}

// Current returns the active screen.
func (m *Machine) Current() Screen { return m.current }

// BeginFrame re-arms the once-per-frame transition latch. Called at the
// top of every update tick.
func (m *Machine) BeginFrame() { m.transitioned = false }

// Set requests a transition to the given screen. Returns true when the
// transition was applied. Transitions to the current screen, or after a
// transition already happened this frame, are dropped, so pause and resume
// hooks cannot double fire inside a single frame.
func (m *Machine) Set(next Screen) bool {
	if next == m.current || m.transitioned {
		return false
	}

	prev := m.current
	m.current = next
	m.transitioned = true
	log.Printf("screen: %s -> %s", prev, next)

	if next == ScreenPause && m.OnPause != nil {
		m.OnPause()
	}
	if prev == ScreenPause && m.OnResume != nil {
		m.OnResume()
	}
	return true
}

// HandleKey applies the global key bindings: Escape toggles between the
// game and the pause overlay, U opens the upgrade screen from the game,
// and Enter or N restarts from the game-over screen. Keys pressed on
// screens they do not bind to are ignored.
func (m *Machine) HandleKey(k input.Key) bool {
	switch k {
	case input.KeyEscape:
		switch m.current {
		case ScreenGame:
			return m.Set(ScreenPause)
		case ScreenPause, ScreenUpgrade:
			return m.Set(ScreenGame)
		}
	case input.KeyU:
		if m.current == ScreenGame {
			return m.Set(ScreenUpgrade)
		}
	case input.KeyEnter, input.KeyN:
		if m.current == ScreenGameOver {
			return m.Set(ScreenNewGame)
		}
	}
	return false
}
