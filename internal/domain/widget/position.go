package widget

// Anchor determines how a Position's origin maps to the drawn top-left
// corner.
type Anchor int

const (
	// AnchorTopLeft places the origin at the top-left corner directly.
	AnchorTopLeft Anchor = iota
	// AnchorCenter centers the box on the origin.
	AnchorCenter
)

// Position is a button's placement request: origin, size, and anchor.
// Proportional spacing policies override W or H from the window size when
// the rectangle is resolved.
type Position struct {
	X, Y   float64
	W, H   float64
	Anchor Anchor
}

// At creates a top-left anchored position.
func At(x, y, w, h float64) Position {
	return Position{X: x, Y: y, W: w, H: h, Anchor: AnchorTopLeft}
}

// WithAnchor returns the position with the given anchor.
func (p Position) WithAnchor(a Anchor) Position {
	p.Anchor = a
	return p
}

// topLeft resolves the anchor against the final box size.
func (p Position) topLeft(w, h float64) (float64, float64) {
	switch p.Anchor {
	case AnchorCenter:
		return p.X - w/2, p.Y - h/2
	default:
		return p.X, p.Y
	}
}
