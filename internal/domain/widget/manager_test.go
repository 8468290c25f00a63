package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
)

// tallAt builds a fixed-size button for hit tests: Tall sizing with an
// explicit width gives exact rectangles regardless of the measurer.
func tallAt(id string, x, y, w, hFrac float64) *Button {
	return New(id, id).
		WithSpacing(Tall(hFrac)).
		WithPosition(At(x, y, w, 0))
}

func newTestManager(t *testing.T, buttons ...*Button) *Manager {
	t.Helper()
	mg := NewManager(fixedMeasurer{perRune: 1}, 400, 200)
	for _, b := range buttons {
		require.NoError(t, mg.Add(b))
	}
	return mg
}

func TestAddRejectsDuplicateID(t *testing.T) {
	mg := newTestManager(t, New("resume", "Resume"))

	err := mg.Add(New("resume", "Again"))

	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, "Resume", mg.Get("resume").Label, "existing button must not be replaced")
	assert.Len(t, mg.Buttons(), 1)
}

func TestLayoutRejectsNonPositiveSize(t *testing.T) {
	mg := newTestManager(t)

	assert.False(t, mg.Layout(0, 200))
	assert.False(t, mg.Layout(400, -1))
	w, h := mg.WindowSize()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 200.0, h)

	assert.True(t, mg.Layout(800, 600))
}

func TestClickFiresOnReleaseInside(t *testing.T) {
	// Rect [100,200) x [100,200) in a 400x200 window.
	b := tallAt("resume", 100, 100, 100, 0.5)
	mg := newTestManager(t, b)

	_, ok := mg.HandleInput(input.Down(150, 150))
	assert.False(t, ok, "press alone must not fire")
	assert.Equal(t, StatePressed, b.State())

	action, ok := mg.HandleInput(input.Up(160, 160))
	require.True(t, ok)
	assert.Equal(t, "resume", action.ButtonID)
	assert.Equal(t, StateHovered, b.State(), "pointer still over the button")
}

func TestDragOffCancelsClick(t *testing.T) {
	b := tallAt("resume", 100, 100, 100, 0.5)
	mg := newTestManager(t, b)

	mg.HandleInput(input.Down(150, 150))
	_, ok := mg.HandleInput(input.Up(50, 50))
	assert.False(t, ok)

	// The press was consumed: releasing inside later must not fire either.
	_, ok = mg.HandleInput(input.Up(150, 150))
	assert.False(t, ok)
}

func TestPressOutsideReleaseInsideDoesNotFire(t *testing.T) {
	b := tallAt("resume", 100, 100, 100, 0.5)
	mg := newTestManager(t, b)

	mg.HandleInput(input.Down(10, 10))
	_, ok := mg.HandleInput(input.Up(150, 150))

	assert.False(t, ok)
	assert.Equal(t, StateHovered, b.State())
}

func TestFrontMostButtonWins(t *testing.T) {
	back := tallAt("back", 100, 100, 100, 0.5)
	front := tallAt("front", 100, 100, 100, 0.5)
	mg := newTestManager(t, back, front)

	mg.HandleInput(input.Down(150, 150))
	assert.Equal(t, StatePressed, front.State())
	assert.Equal(t, StateIdle, back.State(), "only one button may be pressed")

	action, ok := mg.HandleInput(input.Up(150, 150))
	require.True(t, ok)
	assert.Equal(t, "front", action.ButtonID)
}

func TestHoverTracksPointer(t *testing.T) {
	b := tallAt("b", 100, 100, 100, 0.5)
	mg := newTestManager(t, b)

	mg.HandleInput(input.Move(150, 150))
	assert.Equal(t, StateHovered, b.State())

	mg.HandleInput(input.Move(10, 10))
	assert.Equal(t, StateIdle, b.State())
}

func TestResetStatesCancelsInFlightPress(t *testing.T) {
	b := tallAt("b", 100, 100, 100, 0.5)
	mg := newTestManager(t, b)

	mg.HandleInput(input.Down(150, 150))
	mg.ResetStates()
	assert.Equal(t, StateIdle, b.State())

	_, ok := mg.HandleInput(input.Up(150, 150))
	assert.False(t, ok, "reset must clear the captured press")
}

func TestResizeEventRelaysout(t *testing.T) {
	b := New("b", "B").WithSpacing(Hbar(0.5)).WithPosition(At(0, 0, 0, 0))
	mg := newTestManager(t, b)

	mg.HandleInput(input.Resized(800, 600))

	w, h := mg.WindowSize()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	assert.Equal(t, 400.0, b.ResolveRect(w, h, fixedMeasurer{perRune: 1}).W)
}

func TestCenteredButtonClickEndToEnd(t *testing.T) {
	mg := NewManager(fixedMeasurer{perRune: 1}, 1000, 800)
	resume := New("resume", "Resume").
		WithSpacing(Tall(0.13)).
		WithPosition(At(500, 300, 420, 0).WithAnchor(AnchorCenter))
	require.NoError(t, mg.Add(resume))

	rect := resume.ResolveRect(1000, 800, fixedMeasurer{perRune: 1})
	assert.Equal(t, 290.0, rect.X)
	assert.Equal(t, 248.0, rect.Y)
	assert.Equal(t, 710.0, rect.Right())
	assert.Equal(t, 352.0, rect.Bottom())

	mg.HandleInput(input.Down(500, 300))
	action, ok := mg.HandleInput(input.Up(500, 300))
	require.True(t, ok)
	assert.Equal(t, "resume", action.ButtonID)

	_, ok = mg.HandleInput(input.Up(500, 300))
	assert.False(t, ok, "a release without a press emits nothing")
}

func TestAppendPrimitivesSkipsInvisible(t *testing.T) {
	shown := tallAt("shown", 0, 0, 100, 0.5)
	hidden := tallAt("hidden", 200, 0, 100, 0.5)
	hidden.SetVisible(false)
	mg := newTestManager(t, shown, hidden)

	var list draw.List
	mg.AppendPrimitives(&list)

	for _, p := range list.Primitives() {
		assert.NotEqual(t, 200.0, p.Rect.X, "hidden button must not emit primitives")
	}
	assert.Greater(t, list.Len(), 0)
}

func TestAppendPrimitivesClampsNegativeRadius(t *testing.T) {
	st := DefaultStyle()
	st.CornerRadius = -8
	st.BorderWidth = 0
	b := tallAt("b", 0, 0, 100, 0.5).WithStyle(st)
	mg := newTestManager(t, b)

	var list draw.List
	mg.AppendPrimitives(&list)

	require.Greater(t, list.Len(), 0)
	for _, p := range list.Primitives() {
		if p.Kind == draw.KindRoundedRect {
			assert.Equal(t, 0.0, p.Radius)
		}
	}
}
