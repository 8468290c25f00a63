// Package geom provides the primitive geometry used by the widget layer:
// points, rectangles, and the signed-distance evaluators that back the
// rounded-rectangle and circular-icon shaders.
package geom

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the half-open interval
// [left, right) x [top, bottom). Points on the right or bottom edge are
// outside, so adjacent rectangles never both claim a shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Scaled returns the rectangle scaled by factor around its center.
func (r Rect) Scaled(factor float64) Rect {
	sw := r.W * factor
	sh := r.H * factor
	return Rect{
		X: r.X - (sw-r.W)/2,
		Y: r.Y - (sh-r.H)/2,
		W: sw,
		H: sh,
	}
}
