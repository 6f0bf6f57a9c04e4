package render

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/globe-visualization/internal/config"
)

func TestBuiltinMaskKnowsLand(t *testing.T) {
	require.True(t, builtinMask.land(5, 20), "central Africa")
	require.True(t, builtinMask.land(37.77, -122.4), "San Francisco")
	require.True(t, builtinMask.land(-25, 134), "Australia")
	require.False(t, builtinMask.land(0, -150), "Pacific")
	require.False(t, builtinMask.land(0, -30), "Atlantic")
}

func TestLandPointsCoverPartOfTheSphere(t *testing.T) {
	pts := landPoints(builtinMask, 8000)
	require.Greater(t, len(pts), 1500)
	require.Less(t, len(pts), 4000)
	for _, p := range pts {
		require.LessOrEqual(t, math.Abs(p.lat), math.Pi/2)
		require.LessOrEqual(t, math.Abs(p.lon), math.Pi)
	}

	require.Empty(t, landPoints(parseMask(""), 100))
}

func TestProjectFacesViewer(t *testing.T) {
	x, y, z := project(0, 0, 0, 0)
	require.InDelta(t, 0, x, 1e-12)
	require.InDelta(t, 0, y, 1e-12)
	require.InDelta(t, 1, z, 1e-12)

	// A quarter turn brings the point to the edge.
	x, _, z = project(0, 0, math.Pi/2, 0)
	require.InDelta(t, 1, x, 1e-12)
	require.InDelta(t, 0, z, 1e-12)

	// Positive theta tilts the north pole towards the viewer.
	_, _, z = project(math.Pi/2, 0, 0, 0.3)
	require.Greater(t, z, 0.0)
}

func TestProjectPreservesLength(t *testing.T) {
	for _, p := range []point{{0.3, 1.2}, {-1.1, -2.9}, {1.5, 0.1}} {
		x, y, z := project(p.lat, p.lon, 0.7, 0.3)
		require.InDelta(t, 1, x*x+y*y+z*z, 1e-12)
	}
}

func TestConstructReportsUnavailable(t *testing.T) {
	b := NewGlobe(zerolog.Nop())

	_, err := b.Construct(nil, Options{Config: config.Dark()})
	require.ErrorIs(t, err, ErrBackendUnavailable)

	cfg := config.Dark()
	cfg.MapSamples = 0
	_, err = b.Construct(NewSurface(), Options{Config: cfg})
	require.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestSurfaceOpacityIsClamped(t *testing.T) {
	s := NewSurface()
	require.Equal(t, 0.0, s.Opacity())
	s.SetOpacity(2)
	require.Equal(t, 1.0, s.Opacity())
	s.SetOpacity(-1)
	require.Equal(t, 0.0, s.Opacity())
}

func TestRGBAPremultiplies(t *testing.T) {
	c := rgba(config.Color{1, 0.5, 0}, 1, 0.5)
	require.Equal(t, uint8(127), c.R)
	require.Equal(t, uint8(63), c.G)
	require.Equal(t, uint8(0), c.B)
	require.Equal(t, uint8(127), c.A)

	require.Equal(t, config.Color{0.5, 0.5, 0.5}, mix(config.Color{1, 1, 1}, config.Color{0, 0, 0}, 0.5))
}
