package render

import (
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// baseFontSize is the native size of the bitmap face. Other sizes scale
// from it.
const baseFontSize = 13

// FaceMeasurer adapts the render font to the text measurement interface
// the widget layer lays out against, so layout and rasterization agree on
// every advance.
type FaceMeasurer struct {
	face text.Face
}

// NewFaceMeasurer creates a measurer over the built-in bitmap face.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Advance returns the width of s at the given font size in logical pixels.
func (f *FaceMeasurer) Advance(s string, size float64) float64 {
	return text.Advance(s, f.face) * size / baseFontSize
}

// Face returns the underlying face for drawing.
func (f *FaceMeasurer) Face() text.Face { return f.face }
