package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugLineColor = color.RGBA{R: 74, G: 222, B: 128, A: 200}

// DrawDebugOverlay draws the development aids: a dashed vertical guide at
// the horizontal center of the window and an FPS/size readout in the top
// left corner.
func DrawDebugOverlay(dst *ebiten.Image, winW, winH int) {
	cx := float32(winW) / 2
	const dash, gap = 10.0, 6.0
	for y := float32(0); y < float32(winH); y += dash + gap {
		end := y + dash
		if end > float32(winH) {
			end = float32(winH)
		}
		vector.StrokeLine(dst, cx, y, cx, end, 1, debugLineColor, false)
	}

	msg := fmt.Sprintf("fps %0.1f  tps %0.1f  %dx%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), winW, winH)
	ebitenutil.DebugPrintAt(dst, msg, 4, 4)
}
