package widget

import "github.com/DetectiveFierce/pause-menu/internal/domain/geom"

// State is a button's transient interaction state, mutated once per input
// poll by the owning manager.
type State int

const (
	StateIdle State = iota
	StateHovered
	StatePressed
	StateDisabled
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovered:
		return "Hovered"
	case StatePressed:
		return "Pressed"
	case StateDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// Button is a single interactive rectangular widget. Buttons are built with
// the chained With* calls at menu construction time and owned by exactly
// one Manager afterwards.
type Button struct {
	ID      string
	Label   string
	Style   Style
	Pos     Position
	Align   Align
	Spacing Spacing
	Enabled bool
	Visible bool

	// Icon, when set, names a texture drawn centered in the lower half of
	// Tall buttons with a circular mask.
	Icon string

	state State
}

// New creates a button with the default style and a placeholder position.
// Uniqueness of id is enforced by the manager the button is added to, not
// here.
func New(id, label string) *Button {
	return &Button{
		ID:      id,
		Label:   label,
		Style:   DefaultStyle(),
		Pos:     At(0, 0, 200, 50),
		Spacing: Hbar(0.3),
		Enabled: true,
		Visible: true,
	}
}

// WithStyle sets the visual style.
func (b *Button) WithStyle(s Style) *Button {
	b.Style = s
	return b
}

// WithPosition sets the placement request.
func (b *Button) WithPosition(p Position) *Button {
	b.Pos = p
	return b
}

// WithTextAlign sets the label alignment.
func (b *Button) WithTextAlign(a Align) *Button {
	b.Align = a
	return b
}

// WithSpacing sets the sizing policy.
func (b *Button) WithSpacing(sp Spacing) *Button {
	b.Spacing = sp
	return b
}

// WithIcon sets the icon texture for Tall buttons.
func (b *Button) WithIcon(texture string) *Button {
	b.Icon = texture
	return b
}

// State returns the current interaction state.
func (b *Button) State() State {
	if !b.Enabled {
		return StateDisabled
	}
	return b.state
}

// SetVisible shows or hides the button. Hidden buttons neither render nor
// hit-test.
func (b *Button) SetVisible(v bool) { b.Visible = v }

// ResolveRect computes the button's final on-screen rectangle for the
// current window size. Proportional dimensions re-derive from the window,
// Wrap sizing re-measures the label, and the anchor maps the origin to the
// drawn top-left. The result is never cached: callers resolve again after
// every resize.
func (b *Button) ResolveRect(winW, winH float64, m TextMeasurer) geom.Rect {
	w, h := b.Pos.W, b.Pos.H

	switch b.Spacing.Mode {
	case SpacingWrap:
		if m != nil {
			layout := LayoutLabel(b.Label, m, b.Style.Text, b.Spacing, maxWrapWidth(b), 0)
			w = layout.Width + 2*b.Style.PaddingX
			h = layout.Height + 2*b.Style.PaddingY
		}
	case SpacingHbar:
		w = winW * b.Spacing.Frac
		if m != nil {
			h = b.Style.Text.LineHeight + 2*b.Style.PaddingY
		}
	case SpacingTall:
		h = winH * b.Spacing.Frac
		if w <= 0 && m != nil {
			w = m.Advance(b.Label, b.Style.Text.FontSize) + 2*b.Style.PaddingX
		}
	}

	x, y := b.Pos.topLeft(w, h)
	return geom.NewRect(x, y, w, h)
}

// maxWrapWidth bounds Wrap measurement: a positive configured width wins,
// otherwise lines run unbounded and the box grows to the longest line.
func maxWrapWidth(b *Button) float64 {
	if b.Pos.W > 0 {
		return b.Pos.W - 2*b.Style.PaddingX
	}
	return 0
}

// HitTest reports whether the point lands on the button's resolved
// rectangle. Hidden and disabled buttons never hit.
func (b *Button) HitTest(p geom.Point, winW, winH float64, m TextMeasurer) bool {
	if !b.Visible || !b.Enabled {
		return false
	}
	return b.ResolveRect(winW, winH, m).Contains(p)
}
