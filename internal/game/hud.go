package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudGraphWidth  = 160
	hudGraphHeight = 40
	hudX           = 12
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	rs := g.globe.Rotation()
	vp := g.globe.Viewport()

	state := "placeholder"
	if g.globe.Rendering() {
		state = "rendering"
	}
	status := fmt.Sprintf("theme: %s | %s | width: %d", g.globe.Theme(), state, vp.CurrentWidthPx)
	if rs.Dragging {
		status += " | dragging"
	}
	ebitenutil.DebugPrintAt(screen, status, hudX, 12)
	ebitenutil.DebugPrintAt(screen, "phi: "+formatAngle(rs.AutoPhi+rs.Smoothed), hudX, 28)
	ebitenutil.DebugPrintAt(screen, "T: theme  O: open config  R: reset  H: hud  Esc/Q: quit", hudX, g.height-20)

	if err := g.globe.Err(); err != nil {
		ebitenutil.DebugPrintAt(screen, "renderer: "+err.Error(), hudX, 44)
	} else if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "error: "+g.lastErr.Error(), hudX, 44)
	}

	g.drawOffsetGraph(screen, hudX, 64)
}

// drawOffsetGraph plots the smoothed drag offset over the recorded frames.
func (g *Game) drawOffsetGraph(screen *ebiten.Image, x, y float32) {
	samples := g.globe.tap.snapshot(hudGraphWidth)
	vector.StrokeRect(screen, x, y, hudGraphWidth, hudGraphHeight, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	if len(samples) < 2 {
		return
	}

	lo, hi := samples[0].Offset, samples[0].Offset
	for _, s := range samples {
		lo = min(lo, s.Offset)
		hi = max(hi, s.Offset)
	}
	span := hi - lo
	if span < 1e-6 {
		span = 1
	}

	mid := y + hudGraphHeight/2
	for i := 1; i < len(samples); i++ {
		y0 := mid
		y1 := mid
		if hi-lo >= 1e-6 {
			y0 = y + hudGraphHeight - float32((samples[i-1].Offset-lo)/span)*hudGraphHeight
			y1 = y + hudGraphHeight - float32((samples[i].Offset-lo)/span)*hudGraphHeight
		}
		vector.StrokeLine(screen, x+float32(i-1), y0, x+float32(i), y1, 1, color.RGBA{R: 153, G: 102, B: 255, A: 255}, false)
	}
}
