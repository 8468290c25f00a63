// Package menu implements the overlay menus: the pause menu and the
// upgrade picker. Each menu owns a button manager, translates its clicks
// into menu-level actions, and emits draw primitives for the render layer.
package menu

import (
	"image/color"
	"log"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
	"github.com/DetectiveFierce/pause-menu/internal/domain/widget"
)

// PauseAction is a consumed pause-menu decision.
type PauseAction int

const (
	PauseNone PauseAction = iota
	PauseResume
	PauseRestartRun
	PauseToggleTestMode
	PauseQuitToLobby
	PauseQuit
	PauseToggleDebug
)

// overlayColor dims the frozen game scene behind the menu.
var overlayColor = color.RGBA{R: 20, G: 23, B: 28, A: 224}

// pauseEntries defines the centered button column, top to bottom. Styles
// are referenced by theme name so a loaded theme can recolor them.
var pauseEntries = []struct {
	id     string
	label  string
	style  string
	action PauseAction
}{
	{"resume", "Resume", "primary", PauseResume},
	{"restart_run", "Restart Run", "accent", PauseRestartRun},
	{"toggle_test_mode", "Toggle Test Mode", "warning", PauseToggleTestMode},
	{"quit_lobby", "Quit to Lobby", "muted_warning", PauseQuitToLobby},
	{"quit_app", "Quit", "danger", PauseQuit},
}

// builtinStyles backs style lookup when no theme is supplied.
var builtinStyles = map[string]func() widget.Style{
	"default":       widget.DefaultStyle,
	"primary":       widget.PrimaryStyle,
	"accent":        widget.AccentStyle,
	"warning":       widget.WarningStyle,
	"muted_warning": widget.MutedWarningStyle,
	"danger":        widget.DangerStyle,
}

// styleFor resolves a named style from the theme, falling back to the
// compiled-in preset of the same name.
func styleFor(styles map[string]widget.Style, name string) widget.Style {
	if s, ok := styles[name]; ok {
		return s
	}
	if preset, ok := builtinStyles[name]; ok {
		return preset()
	}
	return widget.DefaultStyle()
}

// PauseMenu is the full-screen pause overlay: a dimming layer, a centered
// column of five buttons, and a small debug toggle in the corner.
type PauseMenu struct {
	mgr     *widget.Manager
	visible bool
	pending PauseAction

	// TestMode mirrors the toggle button's state for labeling.
	TestMode bool
}

// NewPauseMenu builds the menu against the given window size. styles is
// the loaded theme; nil falls back to the compiled-in presets.
func NewPauseMenu(m widget.TextMeasurer, styles map[string]widget.Style, winW, winH float64) *PauseMenu {
	p := &PauseMenu{mgr: widget.NewManager(m, winW, winH)}

	for _, e := range pauseEntries {
		b := widget.New(e.id, e.label).
			WithStyle(styleFor(styles, e.style)).
			WithSpacing(widget.Tall(0.09))
		if err := p.mgr.Add(b); err != nil {
			// Duplicate ids here are a programming error in the entry
			// table; skip the button rather than crash mid-game.
			log.Printf("pause menu: %v", err)
		}
	}

	debug := widget.New("debug", "dbg").
		WithStyle(styleFor(styles, "accent")).
		WithSpacing(widget.Tall(0.04))
	if err := p.mgr.Add(debug); err != nil {
		log.Printf("pause menu: %v", err)
	}

	p.Relayout(winW, winH)
	return p
}

// Relayout recomputes every button rectangle for a new window size. Sizes
// derive from the window with DPI-aware clamps so the column stays usable
// from small laptop windows up to 4K.
func (p *PauseMenu) Relayout(winW, winH float64) {
	if !p.mgr.Layout(winW, winH) {
		return
	}

	scale := widget.DPIScale(winH)
	btnW := clamp(winW*0.38*scale, 180, 600)
	btnH := clamp(winH*0.09*scale, 32, 140)
	gap := clamp(winH*0.015*scale, 2, 24)

	n := len(pauseEntries)
	total := float64(n)*btnH + float64(n-1)*gap
	startY := (winH - total) / 2

	for i, e := range pauseEntries {
		b := p.mgr.Get(e.id)
		if b == nil {
			continue
		}
		cy := startY + float64(i)*(btnH+gap) + btnH/2
		b.WithSpacing(widget.Tall(btnH / winH)).
			WithPosition(widget.At(winW/2, cy, btnW, 0).WithAnchor(widget.AnchorCenter))
	}

	if d := p.mgr.Get("debug"); d != nil {
		side := clamp(48*scale, 32, 96)
		d.WithSpacing(widget.Tall(side / winH)).
			WithPosition(widget.At(winW-side-12, winH-side-12, side, 0))
	}
}

// SetVisible shows or hides the menu. Showing resets every button to Idle
// and drops any unconsumed action, so state from the previous visit never
// leaks into this one.
func (p *PauseMenu) SetVisible(v bool) {
	if v && !p.visible {
		p.mgr.ResetStates()
		p.pending = PauseNone
	}
	p.visible = v
}

// Visible reports whether the menu is shown.
func (p *PauseMenu) Visible() bool { return p.visible }

// HandleInput routes one event to the menu's buttons. Hidden menus ignore
// input entirely. A completed click queues its action for Action to
// consume.
func (p *PauseMenu) HandleInput(ev input.Event) {
	if !p.visible {
		return
	}
	action, ok := p.mgr.HandleInput(ev)
	if !ok {
		return
	}
	if a, found := actionFor(action.ButtonID); found {
		p.pending = a
		if a == PauseToggleTestMode {
			p.TestMode = !p.TestMode
		}
	}
}

func actionFor(id string) (PauseAction, bool) {
	if id == "debug" {
		return PauseToggleDebug, true
	}
	for _, e := range pauseEntries {
		if e.id == id {
			return e.action, true
		}
	}
	return PauseNone, false
}

// Action returns the queued action and clears it. Each click is observed
// exactly once.
func (p *PauseMenu) Action() PauseAction {
	a := p.pending
	p.pending = PauseNone
	return a
}

// Button exposes a menu button by id, for the app layer to tweak labels.
func (p *PauseMenu) Button(id string) *widget.Button { return p.mgr.Get(id) }

// AppendPrimitives writes the overlay and buttons to dst. Hidden menus
// emit nothing.
func (p *PauseMenu) AppendPrimitives(dst *draw.List) {
	if !p.visible {
		return
	}

	winW, winH := p.mgr.WindowSize()
	dst.Append(draw.RoundedRect(geom.NewRect(0, 0, winW, winH), overlayColor, 0))

	title := "Paused"
	titleSize := clamp(winH*0.05, 24, 64)
	titleW := float64(len(title)) * titleSize * 0.6
	dst.Append(draw.Text(
		geom.NewRect((winW-titleW)/2, winH*0.12, titleW, titleSize*1.2),
		[]string{title}, color.RGBA{R: 241, G: 245, B: 249, A: 255}, titleSize, titleSize*1.2,
	))

	if b := p.mgr.Get("toggle_test_mode"); b != nil {
		b.Label = "Toggle Test Mode"
		if p.TestMode {
			b.Label = "Toggle Test Mode (on)"
		}
	}

	p.mgr.AppendPrimitives(dst)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
