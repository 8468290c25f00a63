package geom

import "math"

// DefaultCircleEdge is the smoothstep half-width used by the circular icon
// mask, in normalized UV units.
const DefaultCircleEdge = 0.01

// Smoothstep is the GLSL smoothstep: Hermite interpolation of x between
// edge0 and edge1, clamped to [0, 1]. Reversed edges invert the ramp.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// RoundedRectSDF returns the signed distance from p (in the rectangle's
// local coordinates, origin at the top-left) to the boundary of a w x h
// rounded rectangle with the given corner radius. Negative inside.
func RoundedRectSDF(p Point, w, h, radius float64) float64 {
	hw, hh := w/2, h/2
	qx := math.Abs(p.X-hw) - hw + radius
	qy := math.Abs(p.Y-hh) - hh + radius
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - radius
}

// RoundedRectAlpha returns the coverage multiplier for a fragment at p
// inside a w x h rounded rectangle. The edge is blended over a two-pixel
// band via smoothstep. A radius of zero or below bypasses the distance
// field entirely and returns full coverage, so sharp rectangles keep their
// exact input alpha with no antialiasing band.
func RoundedRectAlpha(p Point, w, h, radius float64) float64 {
	if radius <= 0 {
		return 1
	}
	return 1 - Smoothstep(-1, 1, RoundedRectSDF(p, w, h, radius))
}

// CircleMaskAlpha masks a source alpha with a circle inscribed in the unit
// square. u and v are normalized coordinates in [0, 1]; edge is the
// smoothstep half-width (DefaultCircleEdge when in doubt). The result is
// min(srcAlpha, circle), so the mask only trims pixels that are already
// opaque and never invents opacity on transparent source texels.
func CircleMaskAlpha(u, v, srcAlpha, edge float64) float64 {
	dist := math.Hypot(u-0.5, v-0.5)
	circle := Smoothstep(0.5+edge, 0.5-edge, dist)
	return math.Min(srcAlpha, circle)
}
