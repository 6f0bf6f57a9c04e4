package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const placeholderRadius = 28

var (
	placeholderTrack = color.RGBA{R: 233, G: 213, B: 255, A: 255}
	placeholderArc   = color.RGBA{R: 147, G: 51, B: 234, A: 255}
)

// DrawPlaceholder draws the static spinner ring shown before the globe is
// mounted or when no renderer could be built. angle is the arc position in
// radians.
func DrawPlaceholder(dst *ebiten.Image, angle float64) {
	b := dst.Bounds()
	cx := float32(b.Min.X) + float32(b.Dx())/2
	cy := float32(b.Min.Y) + float32(b.Dy())/2

	vector.StrokeCircle(dst, cx, cy, placeholderRadius, 4, placeholderTrack, true)

	const segments = 12
	for i := 0; i < segments; i++ {
		a0 := angle + float64(i)*(math.Pi/2)/segments
		a1 := angle + float64(i+1)*(math.Pi/2)/segments
		x0 := cx + placeholderRadius*float32(math.Cos(a0))
		y0 := cy + placeholderRadius*float32(math.Sin(a0))
		x1 := cx + placeholderRadius*float32(math.Cos(a1))
		y1 := cy + placeholderRadius*float32(math.Sin(a1))
		vector.StrokeLine(dst, x0, y0, x1, y1, 4, placeholderArc, true)
	}
}
