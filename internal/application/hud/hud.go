package hud

import (
	"fmt"
	"image/color"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
)

// HUD is the in-game overlay: timer top-center, level top-left, score
// top-right. Font sizes and margins scale down at narrow window widths so
// the readouts never collide.
type HUD struct {
	Timer *Timer

	Level int
	Score int
}

// New creates a HUD with a fresh timer.
func New(cfg TimerConfig) *HUD {
	return &HUD{Timer: NewTimer(cfg), Level: 1}
}

// Reset returns the HUD to its new-run state and restarts the timer.
func (h *HUD) Reset() {
	h.Level = 1
	h.Score = 0
	h.Timer.Start()
}

// Update advances the timer and reports whether the countdown just
// expired this tick.
func (h *HUD) Update() bool {
	return h.Timer.Update()
}

// fontSize picks the readout size for the window width. Thresholds keep
// the three readouts clear of each other on narrow windows.
func fontSize(winW float64) float64 {
	switch {
	case winW < 640:
		return 16
	case winW < 1024:
		return 22
	default:
		return 28
	}
}

// margin picks the screen-edge inset for the window width.
func margin(winW float64) float64 {
	if winW < 640 {
		return 8
	}
	return 16
}

// AppendPrimitives writes the HUD readouts to dst for the given window size.
func (h *HUD) AppendPrimitives(dst *draw.List, winW, winH float64) {
	size := fontSize(winW)
	lineH := size * 1.2
	inset := margin(winW)
	textGray := color.RGBA{R: 203, G: 213, B: 225, A: 255}

	timerText := h.Timer.Format()
	timerW := approxWidth(timerText, size)
	dst.Append(draw.Text(
		geom.NewRect((winW-timerW)/2, inset, timerW, lineH),
		[]string{timerText}, h.Timer.Color(), size, lineH,
	))

	levelText := fmt.Sprintf("Level %d", h.Level)
	dst.Append(draw.Text(
		geom.NewRect(inset, inset, approxWidth(levelText, size), lineH),
		[]string{levelText}, textGray, size, lineH,
	))

	scoreText := fmt.Sprintf("Score %d", h.Score)
	scoreW := approxWidth(scoreText, size)
	dst.Append(draw.Text(
		geom.NewRect(winW-inset-scoreW, inset, scoreW, lineH),
		[]string{scoreText}, textGray, size, lineH,
	))
}

// approxWidth estimates monospace-ish text width for right and center
// alignment of the readouts. The rasterizer re-measures with the real
// face before drawing; this only places the primitive's rect.
func approxWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.6
}
