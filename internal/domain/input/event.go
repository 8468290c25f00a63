// Package input defines the normalized event stream consumed by the UI
// core. The application layer polls the engine once per frame and converts
// raw device state into these events; the core never talks to the engine
// directly, which keeps widget logic testable without a window.
package input

// Kind identifies the type of an input event.
type Kind int

const (
	PointerMove Kind = iota
	PointerDown
	PointerUp
	KeyDown
	Resize
)

// Key is a logical key code. Only the keys the UI core reacts to are
// enumerated; everything else arrives as KeyNone and is ignored.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyU
	KeyN
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyU:
		return "U"
	case KeyN:
		return "N"
	default:
		return "None"
	}
}

// Event is a single normalized input event. X and Y are logical pixels in
// the same coordinate space as resolved widget rectangles.
type Event struct {
	Kind Kind
	X, Y float64
	Key  Key
	W, H int
}

// Move creates a PointerMove event.
func Move(x, y float64) Event { return Event{Kind: PointerMove, X: x, Y: y} }

// Down creates a PointerDown event at the pointer's current position.
func Down(x, y float64) Event { return Event{Kind: PointerDown, X: x, Y: y} }

// Up creates a PointerUp event at the pointer's current position.
func Up(x, y float64) Event { return Event{Kind: PointerUp, X: x, Y: y} }

// Press creates a KeyDown event.
func Press(k Key) Event { return Event{Kind: KeyDown, Key: k} }

// Resized creates a Resize event.
func Resized(w, h int) Event { return Event{Kind: Resize, W: w, H: h} }
