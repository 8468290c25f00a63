package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
)

func TestNewDefaults(t *testing.T) {
	b := New("resume", "Resume")

	assert.Equal(t, "resume", b.ID)
	assert.Equal(t, "Resume", b.Label)
	assert.True(t, b.Enabled)
	assert.True(t, b.Visible)
	assert.Equal(t, SpacingHbar, b.Spacing.Mode)
	assert.Equal(t, StateIdle, b.State())
}

func TestStateDisabledOverridesInteraction(t *testing.T) {
	b := New("x", "X")
	b.state = StateHovered
	b.Enabled = false

	assert.Equal(t, StateDisabled, b.State())
}

func TestResolveRectCenterAnchorTall(t *testing.T) {
	b := New("resume", "Resume").
		WithSpacing(Tall(0.13)).
		WithPosition(At(500, 300, 420, 0).WithAnchor(AnchorCenter))

	rect := b.ResolveRect(1000, 800, fixedMeasurer{perRune: 1})

	assert.Equal(t, 290.0, rect.X)
	assert.Equal(t, 248.0, rect.Y)
	assert.Equal(t, 710.0, rect.Right())
	assert.Equal(t, 352.0, rect.Bottom())
}

func TestResolveRectRecomputesAfterResize(t *testing.T) {
	b := New("b", "B").WithSpacing(Hbar(0.3)).WithPosition(At(0, 0, 0, 0))
	m := fixedMeasurer{perRune: 1}

	assert.Equal(t, 300.0, b.ResolveRect(1000, 800, m).W)
	assert.Equal(t, 150.0, b.ResolveRect(500, 400, m).W, "proportional width follows the window")
}

func TestResolveRectWrapSizesToLabel(t *testing.T) {
	st := DefaultStyle()
	st.PaddingX, st.PaddingY = 16, 10
	st.Text = testTextStyle()
	b := New("b", "hello").WithStyle(st).WithSpacing(Wrap()).WithPosition(At(0, 0, 0, 0))

	rect := b.ResolveRect(1000, 800, fixedMeasurer{perRune: 1})

	assert.Equal(t, 50.0+32, rect.W)
	assert.Equal(t, 20.0+20, rect.H)
}

func TestHitTestHalfOpenEdges(t *testing.T) {
	b := New("b", "B").
		WithSpacing(Tall(0.5)).
		WithPosition(At(100, 100, 100, 0))
	m := fixedMeasurer{perRune: 1}

	tests := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"top-left inclusive", geom.Point{X: 100, Y: 100}, true},
		{"right exclusive", geom.Point{X: 200, Y: 150}, false},
		{"bottom exclusive", geom.Point{X: 150, Y: 200}, false},
		{"interior", geom.Point{X: 150, Y: 150}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.HitTest(tt.p, 400, 200, m))
		})
	}
}

func TestHitTestIgnoresHiddenAndDisabled(t *testing.T) {
	m := fixedMeasurer{perRune: 1}
	p := geom.Point{X: 150, Y: 150}

	b := New("b", "B").WithSpacing(Tall(0.5)).WithPosition(At(100, 100, 100, 0))
	assert.True(t, b.HitTest(p, 400, 200, m))

	b.SetVisible(false)
	assert.False(t, b.HitTest(p, 400, 200, m))

	b.SetVisible(true)
	b.Enabled = false
	assert.False(t, b.HitTest(p, 400, 200, m))
}
