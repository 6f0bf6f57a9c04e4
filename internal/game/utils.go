package game

import (
	"fmt"
	"math"

	"github.com/iburimskiy/globe-visualization/internal/config"
)

// clampWidth applies the viewport clamp to a measured container width.
func clampWidth(w int) int {
	if w < 0 {
		return 0
	}
	return min(w, config.MaxViewport)
}

// formatAngle formats radians as degrees in [0, 360).
func formatAngle(rad float64) string {
	deg := math.Mod(rad*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return fmt.Sprintf("%06.2f deg", deg)
}
