package render

import (
	_ "embed"
	"math"
	"strings"
)

//go:embed assets/earth.txt
var earthMap string

// landMask is an equirectangular bitmap, north up, '#' for land.
type landMask struct {
	rows  []string
	width int
}

var builtinMask = parseMask(earthMap)

func parseMask(src string) landMask {
	rows := strings.Fields(src)
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return landMask{rows: rows, width: width}
}

// land reports whether lat/lon (degrees) falls on land.
func (m landMask) land(lat, lon float64) bool {
	if len(m.rows) == 0 || m.width == 0 {
		return false
	}
	y := int((90 - lat) / 180 * float64(len(m.rows)-1))
	x := int((lon + 180) / 360 * float64(m.width-1))
	y = min(max(y, 0), len(m.rows)-1)
	x = min(max(x, 0), m.width-1)
	row := m.rows[y]
	if x >= len(row) {
		return false
	}
	return row[x] == '#'
}

type point struct {
	lat, lon float64 // radians
}

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// landPoints spreads n samples evenly over the sphere and keeps the ones that
// land on the map.
func landPoints(m landMask, n int) []point {
	out := make([]point, 0, n/3)
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		lat := math.Asin(y)
		lon := math.Mod(float64(i)*goldenAngle, 2*math.Pi) - math.Pi
		if m.land(lat*180/math.Pi, lon*180/math.Pi) {
			out = append(out, point{lat: lat, lon: lon})
		}
	}
	return out
}

// project rotates a surface point by phi about the polar axis, tilts it by
// theta towards the viewer, and returns unit-sphere coordinates with z
// pointing out of the screen.
func project(lat, lon, phi, theta float64) (x, y, z float64) {
	cl := math.Cos(lat)
	x = cl * math.Sin(lon+phi)
	y = math.Sin(lat)
	z = cl * math.Cos(lon+phi)
	st, ct := math.Sincos(theta)
	y, z = y*ct-z*st, y*st+z*ct
	return x, y, z
}
