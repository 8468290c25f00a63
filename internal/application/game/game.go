// Package game provides the main loop: it owns the screen machine, the
// menus, and the HUD, routes input between them, and hands the assembled
// primitive list to the renderer every frame.
package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DetectiveFierce/pause-menu/internal/application/hud"
	"github.com/DetectiveFierce/pause-menu/internal/application/menu"
	"github.com/DetectiveFierce/pause-menu/internal/application/state"
	"github.com/DetectiveFierce/pause-menu/internal/application/system"
	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
	"github.com/DetectiveFierce/pause-menu/internal/domain/widget"
	"github.com/DetectiveFierce/pause-menu/internal/infrastructure/config"
	"github.com/DetectiveFierce/pause-menu/internal/render"
)

var colorBG = color.RGBA{R: 15, G: 18, B: 24, A: 255}

// upgradePool is the fixed set of upgrades offered between levels.
var upgradePool = []menu.UpgradeChoice{
	{Name: "Haste", Description: "Move faster", Icon: "haste"},
	{Name: "Reach", Description: "Grab further", Icon: "reach"},
	{Name: "Focus", Description: "Slow time", Icon: "focus"},
}

// Game implements ebiten.Game and wires the UI layers together.
type Game struct {
	cfg     *config.UIConfig
	machine *state.Machine
	hud     *hud.HUD
	pause   *menu.PauseMenu
	upgrade *menu.UpgradeMenu
	raster  *render.Rasterizer

	screenW int
	screenH int

	debugOverlay  bool
	testMode      bool
	upgradeLevels [3]int

	// poll is replaced in tests to feed synthetic events.
	poll func(winW, winH int) []input.Event
}

// New creates a game from loaded configuration. raster may be nil in
// tests that never call Draw.
func New(cfg *config.AppConfig, m widget.TextMeasurer, raster *render.Rasterizer) *Game {
	winW := cfg.UI.Display.ScreenWidth
	winH := cfg.UI.Display.ScreenHeight

	timerCfg := hud.DefaultTimerConfig()
	if cfg.UI.Timer.DurationSec > 0 {
		timerCfg.Duration = time.Duration(cfg.UI.Timer.DurationSec * float64(time.Second))
	}
	if cfg.UI.Timer.WarningSec > 0 {
		timerCfg.WarningThreshold = time.Duration(cfg.UI.Timer.WarningSec * float64(time.Second))
	}
	if cfg.UI.Timer.CriticalSec > 0 {
		timerCfg.CriticalThreshold = time.Duration(cfg.UI.Timer.CriticalSec * float64(time.Second))
	}

	g := &Game{
		cfg:          cfg.UI,
		machine:      state.NewMachine(state.ScreenLoading),
		hud:          hud.New(timerCfg),
		pause:        menu.NewPauseMenu(m, cfg.Styles, float64(winW), float64(winH)),
		upgrade:      menu.NewUpgradeMenu(m, cfg.Styles, float64(winW), float64(winH)),
		raster:       raster,
		screenW:      winW,
		screenH:      winH,
		debugOverlay: cfg.UI.Debug.Overlay,
	}

	g.machine.OnPause = g.hud.Timer.Pause
	g.machine.OnResume = g.hud.Timer.Resume

	inputSys := system.NewInputSystem()
	g.poll = inputSys.PollEvents

	return g
}

// Update advances the UI one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.machine.BeginFrame()

	for _, ev := range g.poll(g.screenW, g.screenH) {
		g.routeEvent(ev)
	}

	if err := g.consumeActions(); err != nil {
		return err
	}

	switch g.machine.Current() {
	case state.ScreenLoading:
		g.machine.Set(state.ScreenGame)
		g.hud.Reset()
	case state.ScreenNewGame:
		g.restartRun()
	case state.ScreenGame:
		if g.hud.Update() {
			g.machine.Set(state.ScreenGameOver)
		}
	}

	g.syncScreen()
	return nil
}

func (g *Game) routeEvent(ev input.Event) {
	switch ev.Kind {
	case input.Resize:
		g.pause.Relayout(float64(ev.W), float64(ev.H))
		g.upgrade.Relayout(float64(ev.W), float64(ev.H))
	case input.KeyDown:
		g.machine.HandleKey(ev.Key)
	default:
		g.pause.HandleInput(ev)
		g.upgrade.HandleInput(ev)
	}
}

// consumeActions applies the queued menu decisions.
func (g *Game) consumeActions() error {
	switch g.pause.Action() {
	case menu.PauseResume:
		g.machine.Set(state.ScreenGame)
	case menu.PauseRestartRun:
		g.machine.Set(state.ScreenNewGame)
	case menu.PauseToggleTestMode:
		g.testMode = g.pause.TestMode
	case menu.PauseQuitToLobby:
		g.machine.Set(state.ScreenNewGame)
	case menu.PauseQuit:
		return ebiten.Termination
	case menu.PauseToggleDebug:
		g.debugOverlay = !g.debugOverlay
	}

	if i, ok := g.upgrade.Picked(); ok {
		g.upgradeLevels[i]++
		g.hud.Level++
		g.machine.Set(state.ScreenGame)
	}
	return nil
}

// restartRun begins a fresh run and returns to the game screen.
func (g *Game) restartRun() {
	g.hud.Reset()
	g.offerUpgrades()
	g.machine.Set(state.ScreenGame)
}

func (g *Game) offerUpgrades() {
	choices := make([]menu.UpgradeChoice, len(upgradePool))
	copy(choices, upgradePool)
	for i := range choices {
		if i < len(g.upgradeLevels) {
			choices[i].Level = g.upgradeLevels[i]
		}
	}
	g.upgrade.Offer(choices)
}

// syncScreen reconciles menu visibility and the timer with the active
// screen. Timer pause and resume are idempotent, so repeating them here
// after the transition hooks is harmless.
func (g *Game) syncScreen() {
	cur := g.machine.Current()
	g.pause.SetVisible(cur == state.ScreenPause)

	if cur == state.ScreenUpgrade && !g.upgrade.Visible() {
		g.offerUpgrades()
	}
	g.upgrade.SetVisible(cur == state.ScreenUpgrade)

	if cur == state.ScreenGame {
		g.hud.Timer.Resume()
	} else {
		g.hud.Timer.Pause()
	}
}

// Draw renders the frame.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if g.raster == nil {
		return
	}

	var list draw.List
	g.appendFrame(&list)
	g.raster.Draw(screen, &list)

	if g.debugOverlay {
		render.DrawDebugOverlay(screen, g.screenW, g.screenH)
	}
}

// appendFrame assembles the frame's primitive list back to front.
func (g *Game) appendFrame(list *draw.List) {
	w, h := float64(g.screenW), float64(g.screenH)
	cur := g.machine.Current()

	if cur != state.ScreenLoading {
		g.hud.AppendPrimitives(list, w, h)
	}

	if cur == state.ScreenGameOver {
		list.Append(draw.RoundedRect(geom.NewRect(0, 0, w, h), color.RGBA{R: 60, G: 10, B: 10, A: 200}, 0))
		msg := "Game Over - press Enter"
		size := 28.0
		msgW := float64(len(msg)) * size * 0.6
		list.Append(draw.Text(
			geom.NewRect((w-msgW)/2, h/2-size, msgW, size*1.2),
			[]string{msg}, color.RGBA{R: 254, G: 226, B: 226, A: 255}, size, size*1.2,
		))
	}

	g.pause.AppendPrimitives(list)
	g.upgrade.AppendPrimitives(list)
}

// Layout reports the logical screen size. With a resizable window the
// logical size tracks the window, so widget coordinates stay 1:1 with
// cursor coordinates.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Display.Resizable && outsideWidth > 0 && outsideHeight > 0 {
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	return g.screenW, g.screenH
}

// Machine exposes the screen machine for the composition root.
func (g *Game) Machine() *state.Machine { return g.machine }

// PauseMenu exposes the pause menu for the composition root.
func (g *Game) PauseMenu() *menu.PauseMenu { return g.pause }
