package widget

import (
	"errors"
	"fmt"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
)

// ErrDuplicateID reports an attempt to add a button whose id is already
// registered with the manager.
var ErrDuplicateID = errors.New("widget: duplicate button id")

// Action is a discrete event emitted when a button completes a
// press-then-release cycle inside its rectangle.
type Action struct {
	ButtonID string
}

// Manager owns an ordered set of buttons. Order is z-order: later additions
// draw on top and win hit-testing. At most one button holds the Pressed
// state per pointer, and at most one Action is emitted per input poll.
type Manager struct {
	buttons []*Button
	index   map[string]*Button

	measurer TextMeasurer
	winW     float64
	winH     float64

	pointer     geom.Point
	pointerHeld bool
	pressedID   string
}

// NewManager creates a manager laying out against the given window size.
func NewManager(m TextMeasurer, winW, winH float64) *Manager {
	return &Manager{
		measurer: m,
		winW:     winW,
		winH:     winH,
		index:    make(map[string]*Button),
	}
}

// Add appends a button on top of the z-order. Adding a duplicate id is
// rejected with ErrDuplicateID; the existing button is never overwritten.
func (mg *Manager) Add(b *Button) error {
	if _, ok := mg.index[b.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, b.ID)
	}
	mg.index[b.ID] = b
	mg.buttons = append(mg.buttons, b)
	return nil
}

// Get returns the button with the given id, or nil.
func (mg *Manager) Get(id string) *Button { return mg.index[id] }

// Buttons returns the buttons in z-order (back to front).
func (mg *Manager) Buttons() []*Button { return mg.buttons }

// WindowSize returns the window size the manager currently lays out against.
func (mg *Manager) WindowSize() (float64, float64) { return mg.winW, mg.winH }

// Layout records a new window size so every subsequent rectangle resolution
// and hit-test uses it. Zero or negative dimensions are rejected without
// touching the current layout, which keeps proportional sizing away from
// division by zero.
func (mg *Manager) Layout(winW, winH float64) bool {
	if winW <= 0 || winH <= 0 {
		return false
	}
	mg.winW = winW
	mg.winH = winH
	return true
}

// ResetStates returns every button to Idle and releases any in-flight
// press. Called when a menu becomes visible so stale hover or press state
// from before it was hidden cannot leak into the new interaction.
func (mg *Manager) ResetStates() {
	for _, b := range mg.buttons {
		b.state = StateIdle
	}
	mg.pointerHeld = false
	mg.pressedID = ""
}

// HandleInput dispatches one normalized event to the buttons and reports
// the emitted action, if any. Hit-testing walks front to back; the first
// hit wins, so overlapping buttons cannot both react. A click is emitted
// exactly when the press and the release both land on the same button;
// releasing elsewhere cancels (drag-off).
func (mg *Manager) HandleInput(ev input.Event) (Action, bool) {
	switch ev.Kind {
	case input.PointerMove:
		mg.pointer = geom.Point{X: ev.X, Y: ev.Y}
		mg.refreshStates()

	case input.PointerDown:
		mg.pointer = geom.Point{X: ev.X, Y: ev.Y}
		mg.pointerHeld = true
		if hit := mg.topHit(mg.pointer); hit != nil {
			mg.pressedID = hit.ID
		}
		mg.refreshStates()

	case input.PointerUp:
		mg.pointer = geom.Point{X: ev.X, Y: ev.Y}
		mg.pointerHeld = false
		clicked := ""
		if mg.pressedID != "" {
			if b := mg.index[mg.pressedID]; b != nil && b.HitTest(mg.pointer, mg.winW, mg.winH, mg.measurer) {
				clicked = mg.pressedID
			}
		}
		mg.pressedID = ""
		mg.refreshStates()
		if clicked != "" {
			return Action{ButtonID: clicked}, true
		}

	case input.Resize:
		mg.Layout(float64(ev.W), float64(ev.H))
		mg.refreshStates()
	}

	return Action{}, false
}

// topHit returns the front-most visible, enabled button under p.
func (mg *Manager) topHit(p geom.Point) *Button {
	for i := len(mg.buttons) - 1; i >= 0; i-- {
		if mg.buttons[i].HitTest(p, mg.winW, mg.winH, mg.measurer) {
			return mg.buttons[i]
		}
	}
	return nil
}

// refreshStates recomputes hover and pressed states from the current
// pointer snapshot. Only the button whose id captured the press may show
// Pressed; everything else under the pointer hovers.
func (mg *Manager) refreshStates() {
	top := mg.topHit(mg.pointer)
	for _, b := range mg.buttons {
		if !b.Enabled {
			b.state = StateDisabled
			continue
		}
		switch {
		case b == top && mg.pointerHeld && b.ID == mg.pressedID:
			b.state = StatePressed
		case b == top:
			b.state = StateHovered
		default:
			b.state = StateIdle
		}
	}
}

// stateScale is the hover/press emphasis applied to Tall panel buttons.
func stateScale(b *Button) float64 {
	if b.Spacing.Mode != SpacingTall {
		return 1
	}
	switch b.state {
	case StateHovered:
		return 1.1
	case StatePressed:
		return 1.05
	default:
		return 1
	}
}

// AppendPrimitives writes the manager's draw descriptors to dst in z-order:
// for each visible button a background rounded rect, an optional
// circle-masked icon, and the laid-out label runs. The output is a pure
// function of current state and is rebuilt every frame.
func (mg *Manager) AppendPrimitives(dst *draw.List) {
	for _, b := range mg.buttons {
		if !b.Visible {
			continue
		}

		rect := b.ResolveRect(mg.winW, mg.winH, mg.measurer).Scaled(stateScale(b))

		radius := b.Style.CornerRadius
		if radius < 0 {
			radius = 0
		}

		bg := b.Style.Background
		switch b.State() {
		case StateHovered:
			bg = b.Style.Hover
		case StatePressed:
			bg = b.Style.Pressed
		case StateDisabled:
			bg = b.Style.Disabled
		}

		if b.Style.BorderWidth > 0 {
			borderRect := geom.NewRect(
				rect.X-b.Style.BorderWidth,
				rect.Y-b.Style.BorderWidth,
				rect.W+2*b.Style.BorderWidth,
				rect.H+2*b.Style.BorderWidth,
			)
			dst.Append(draw.RoundedRect(borderRect, b.Style.Border, radius+b.Style.BorderWidth))
		}
		dst.Append(draw.RoundedRect(rect, bg, radius*stateScale(b)))

		if b.Icon != "" && b.Spacing.Mode == SpacingTall {
			dst.Append(draw.Icon(iconRect(b, rect), b.Icon, true))
		}

		mg.appendLabel(dst, b, rect)
	}
}

// iconRect centers a square icon in the lower half of a Tall button,
// matching the panel layout the upgrade menu uses.
func iconRect(b *Button, rect geom.Rect) geom.Rect {
	margin := 16.0 * stateScale(b)
	size := rect.W - 2*margin
	if maxH := rect.H * 0.4; size > maxH {
		size = maxH
	}
	return geom.NewRect(rect.X+(rect.W-size)/2, rect.Y+rect.H*0.5, size, size)
}

func (mg *Manager) appendLabel(dst *draw.List, b *Button, rect geom.Rect) {
	if mg.measurer == nil || b.Label == "" {
		return
	}

	ts := b.Style.Text
	layout := LayoutLabel(b.Label, mg.measurer, ts, b.Spacing,
		rect.W-2*b.Style.PaddingX, rect.H-2*b.Style.PaddingY)

	textColor := Darken(b.Style.Background, 0.35)
	switch b.State() {
	case StateHovered:
		textColor = Saturate(b.Style.Hover, 0.9)
	case StatePressed:
		textColor = Saturate(Brighten(b.Style.Pressed, 0.15), 0.35)
	case StateDisabled:
		textColor = Darken(b.Style.Disabled, 0.5)
	}
	if ts.Color.A != 0 && b.State() == StateIdle {
		textColor = ts.Color
	}

	// Tall buttons pin text to the top; everything else centers vertically.
	textY := rect.Y + (rect.H-layout.Height)/2
	if b.Spacing.Mode == SpacingTall {
		textY = rect.Y + b.Style.PaddingY
	}

	for i, line := range layout.Lines {
		lineW := mg.measurer.Advance(line, ts.FontSize)
		x := alignLineX(b.Align, rect.X, rect.W, b.Style.PaddingX, lineW)
		y := textY + float64(i)*ts.LineHeight
		p := draw.Text(geom.NewRect(x, y, lineW, ts.LineHeight), []string{line}, textColor, ts.FontSize, ts.LineHeight)
		p.Bold = ts.Bold || b.State() == StateHovered
		p.Italic = ts.Italic
		dst.Append(p)
	}
}
