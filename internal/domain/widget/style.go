// Package widget implements the retained-mode widget layer: styled buttons,
// the manager that owns them, hit-testing, and text layout within widget
// boxes. It is engine-free; rendering happens against the draw-primitive
// list it produces.
package widget

import "image/color"

// Align governs horizontal text placement within a button box.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// SpacingMode selects how a button derives its size and lays out its label.
type SpacingMode int

const (
	// SpacingWrap reflows the label to multiple lines bounded by the
	// button width; the button shrinks to fit its text.
	SpacingWrap SpacingMode = iota
	// SpacingHbar keeps the label on a single line; the button width is a
	// fraction of the window width.
	SpacingHbar
	// SpacingTall keeps the configured width; the button height is a
	// fraction of the window height. Used for icon-bearing panel buttons.
	SpacingTall
)

// Spacing is the button sizing policy: a mode plus, for the proportional
// modes, the window fraction.
type Spacing struct {
	Mode SpacingMode
	Frac float64
}

// Wrap returns the text-reflow sizing policy.
func Wrap() Spacing { return Spacing{Mode: SpacingWrap} }

// Hbar returns the single-line policy with width = frac of window width.
func Hbar(frac float64) Spacing { return Spacing{Mode: SpacingHbar, Frac: frac} }

// Tall returns the panel policy with height = frac of window height.
func Tall(frac float64) Spacing { return Spacing{Mode: SpacingTall, Frac: frac} }

// TextStyle describes how a label is set.
type TextStyle struct {
	FontSize   float64
	LineHeight float64
	Color      color.RGBA
	Bold       bool
	Italic     bool
}

// Style is the visual configuration of a button. Immutable once attached
// unless explicitly replaced.
type Style struct {
	Background color.RGBA
	Hover      color.RGBA
	Pressed    color.RGBA
	Disabled   color.RGBA

	Border      color.RGBA
	BorderWidth float64

	// CornerRadius below zero is treated as zero (sharp corners, no SDF).
	CornerRadius float64

	PaddingX float64
	PaddingY float64

	Text TextStyle
}
