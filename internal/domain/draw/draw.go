// Package draw defines the draw-primitive list the UI core hands to the
// render layer. Primitives are plain data in z-order; the rasterizer decides
// how to batch and shade them.
package draw

import (
	"image/color"

	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
)

// Kind identifies the type of a draw primitive.
type Kind int

const (
	KindRoundedRect Kind = iota
	KindIcon
	KindText
)

// Primitive is a single draw descriptor. Only the fields relevant to its
// Kind are populated.
type Primitive struct {
	Kind   Kind
	Rect   geom.Rect
	Color  color.RGBA
	Radius float64

	// Icon fields
	Texture    string
	CircleMask bool

	// Text fields
	Lines      []string
	FontSize   float64
	LineHeight float64
	Bold       bool
	Italic     bool
}

// RoundedRect creates a filled rectangle primitive. A radius of zero draws
// a sharp rectangle on the flat-color fast path.
func RoundedRect(r geom.Rect, c color.RGBA, radius float64) Primitive {
	if radius < 0 {
		radius = 0
	}
	return Primitive{Kind: KindRoundedRect, Rect: r, Color: c, Radius: radius}
}

// Icon creates a textured icon primitive. When circleMask is set the
// rasterizer clips the quad to an inscribed circle.
func Icon(r geom.Rect, texture string, circleMask bool) Primitive {
	return Primitive{
		Kind:       KindIcon,
		Rect:       r,
		Color:      color.RGBA{255, 255, 255, 255},
		Texture:    texture,
		CircleMask: circleMask,
	}
}

// Text creates a text primitive. Rect.X/Rect.Y position the first line's
// top-left corner; Rect.W carries the laid-out line width for reference.
func Text(r geom.Rect, lines []string, c color.RGBA, fontSize, lineHeight float64) Primitive {
	return Primitive{
		Kind:       KindText,
		Rect:       r,
		Color:      c,
		Lines:      lines,
		FontSize:   fontSize,
		LineHeight: lineHeight,
	}
}

// List is an ordered sequence of primitives. The zero value is ready to use.
// Building is cheap and restartable: callers Reset and re-append every frame.
type List struct {
	ps []Primitive
}

// Reset clears the list, keeping the backing array for reuse.
func (l *List) Reset() { l.ps = l.ps[:0] }

// Append adds primitives in z-order (later entries draw on top).
func (l *List) Append(ps ...Primitive) { l.ps = append(l.ps, ps...) }

// Primitives returns the primitives in draw order.
func (l *List) Primitives() []Primitive { return l.ps }

// Len returns the number of primitives.
func (l *List) Len() int { return len(l.ps) }
