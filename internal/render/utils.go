package render

import (
	"image/color"

	"github.com/iburimskiy/globe-visualization/internal/config"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rgba scales a normalized color by k and converts it to 8-bit.
func rgba(c config.Color, k float64, alpha float64) color.RGBA {
	a := clamp01(alpha)
	// vector and DrawImage expect premultiplied alpha.
	return color.RGBA{
		R: uint8(clamp01(c[0]*k) * a * 255),
		G: uint8(clamp01(c[1]*k) * a * 255),
		B: uint8(clamp01(c[2]*k) * a * 255),
		A: uint8(a * 255),
	}
}

// mix blends a towards b by t.
func mix(a, b config.Color, t float64) config.Color {
	t = clamp01(t)
	return config.Color{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
