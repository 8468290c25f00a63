package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundedRectSDFSign(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want func(t *testing.T, d float64)
	}{
		{"center is inside", Point{X: 50, Y: 25}, func(t *testing.T, d float64) {
			assert.Negative(t, d)
		}},
		{"edge midpoint is on the boundary", Point{X: 50, Y: 0}, func(t *testing.T, d float64) {
			assert.InDelta(t, 0, d, 1e-9)
		}},
		{"far outside is positive", Point{X: 200, Y: 25}, func(t *testing.T, d float64) {
			assert.InDelta(t, 100, d, 1e-9)
		}},
		{"sharp corner is shaved by the radius", Point{X: 0, Y: 0}, func(t *testing.T, d float64) {
			assert.Positive(t, d, "the corner of the bounding box lies outside the rounded shape")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, RoundedRectSDF(tt.p, 100, 50, 8))
		})
	}
}

func TestRoundedRectAlphaBypassesZeroRadius(t *testing.T) {
	// With no rounding there is no distance field: coverage is exactly 1
	// even at the corner, where an SDF evaluation would feather it.
	assert.Equal(t, 1.0, RoundedRectAlpha(Point{X: 0, Y: 0}, 100, 50, 0))
	assert.Equal(t, 1.0, RoundedRectAlpha(Point{X: 0, Y: 0}, 100, 50, -4))
}

func TestRoundedRectAlphaBand(t *testing.T) {
	// Deep inside the band alpha saturates at 1, outside it falls to 0,
	// and exactly on the boundary it sits at the band midpoint.
	assert.Equal(t, 1.0, RoundedRectAlpha(Point{X: 50, Y: 25}, 100, 50, 8))
	assert.Equal(t, 0.0, RoundedRectAlpha(Point{X: 200, Y: 25}, 100, 50, 8))
	assert.InDelta(t, 0.5, RoundedRectAlpha(Point{X: 50, Y: 0}, 100, 50, 8), 1e-9)
}

func TestCircleMaskAlphaNeverAddsOpacity(t *testing.T) {
	tests := []struct {
		name     string
		u, v     float64
		srcAlpha float64
		want     float64
	}{
		{"opaque center passes through", 0.5, 0.5, 1, 1},
		{"transparent center stays transparent", 0.5, 0.5, 0, 0},
		{"translucent center keeps its alpha", 0.5, 0.5, 0.4, 0.4},
		{"corner is fully masked", 0, 0, 1, 0},
		{"outside the circle, any source is masked", 0.5, 0.98, 1, 0},
		// On the rim the circle coverage is 0.5; a more opaque source is
		// trimmed to exactly that, not multiplied by it.
		{"rim takes the smaller of source and circle", 1.0, 0.5, 0.8, 0.5},
		{"rim keeps a source already below the circle", 1.0, 0.5, 0.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleMaskAlpha(tt.u, tt.v, tt.srcAlpha, DefaultCircleEdge)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCircleMaskEdgeBlend(t *testing.T) {
	// (1.0, 0.5) is exactly on the rim, halfway through the blend band.
	mid := CircleMaskAlpha(1.0, 0.5, 1, DefaultCircleEdge)
	assert.InDelta(t, 0.5, mid, 1e-9)
}
