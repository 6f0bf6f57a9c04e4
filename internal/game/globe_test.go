package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/theme"
)

func TestGlobeWideContainerDarkTheme(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	g.Resize(600)
	require.NoError(t, g.SetTheme(theme.Dark))
	require.NoError(t, g.Mount())

	frames(g, 1)

	require.Equal(t, 450, g.Viewport().CurrentWidthPx)
	require.Equal(t, config.Color{0.6, 0.4, 1}, backend.last().opts.Config.MarkerColor)
	last := backend.last().frames[0]
	require.Equal(t, 450, last.Width)
	require.Equal(t, 450, last.Height)
}

func TestGlobeUnresolvedThemeRendersDarkImmediately(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	require.NoError(t, g.Mount())

	require.True(t, g.Rendering())
	require.Equal(t, config.Dark(), backend.last().opts.Config)

	// Resolving to the same palette is still a replacement.
	require.NoError(t, g.SetTheme(theme.Dark))
	require.Equal(t, []string{"construct", "destroy", "construct"}, backend.events)
}

func TestGlobeThemeChangeReplacesRendererOnce(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	require.NoError(t, g.SetTheme(theme.Dark))
	require.NoError(t, g.Mount())
	frames(g, 3)

	require.NoError(t, g.SetTheme(theme.Light))
	require.NoError(t, g.SetTheme(theme.Light))

	require.Equal(t, 1, backend.count("destroy"))
	require.Equal(t, 2, backend.count("construct"))
	require.Equal(t, []string{"frame", "destroy", "construct"}, backend.events[len(backend.events)-3:])
	require.Equal(t, config.Light(), g.Config())
}

func TestGlobeThemeToggleMidDrag(t *testing.T) {
	backend := &fakeBackend{}
	cursor := &cursorLog{}
	g := newTestGlobe(backend, newFakeClock(), cursor)
	require.NoError(t, g.SetTheme(theme.Dark))
	require.NoError(t, g.Mount())

	frames(g, 10)
	phi := g.Rotation().AutoPhi

	g.Pointer().Down(100)
	g.Pointer().Move(240)
	frames(g, 5)
	require.True(t, g.Rotation().Dragging)
	require.Equal(t, phi, g.Rotation().AutoPhi)

	require.NoError(t, g.SetTheme(theme.Light))
	require.False(t, g.Pointer().Dragging())
	require.Equal(t, cursorGrab, cursor.shapes[len(cursor.shapes)-1])
	require.Equal(t, config.Light().MarkerColor, backend.last().opts.Config.MarkerColor)

	frames(g, 1)
	rs := g.Rotation()
	require.False(t, rs.Dragging)
	require.InDelta(t, phi+config.AutoRotateStep, rs.AutoPhi, 1e-12)
	require.InDelta(t, 0.1, rs.RawTarget, 1e-12)
}

func TestGlobeUnmountWhileDragging(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	require.NoError(t, g.Mount())
	frames(g, 2)

	g.Pointer().Down(10)
	g.Pointer().Move(50)
	frames(g, 1)
	h := backend.last()
	submitted := len(h.frames)

	g.Unmount()

	require.False(t, g.Pointer().Dragging())
	require.True(t, h.destroyed)
	require.False(t, g.Rendering())

	h.Present(nil)
	require.Len(t, h.frames, submitted)
	require.Equal(t, RotationState{}, g.Rotation())
	require.Equal(t, "present-after-destroy", backend.events[len(backend.events)-1])
}

func TestGlobeOverrideWinsOverTheme(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	require.NoError(t, g.Mount())

	custom := config.Light()
	custom.MarkerColor = config.Color{1, 0, 0}
	require.NoError(t, g.SetOverride(&custom))
	require.Equal(t, custom, backend.last().opts.Config)

	require.NoError(t, g.SetTheme(theme.Dark))
	require.Equal(t, custom, backend.last().opts.Config)

	constructs := backend.count("construct")
	require.NoError(t, g.SetOverride(&custom))
	require.Equal(t, constructs, backend.count("construct"), "same override identity does not rebuild")

	same := custom
	require.NoError(t, g.SetOverride(&same))
	require.Equal(t, constructs+1, backend.count("construct"), "new override identity rebuilds")

	require.NoError(t, g.SetOverride(nil))
	require.Equal(t, config.Dark(), backend.last().opts.Config)
}

func TestGlobeFadeInFollowsConstruction(t *testing.T) {
	backend := &fakeBackend{}
	clock := newFakeClock()
	g := newTestGlobe(backend, clock, nil)
	require.NoError(t, g.Mount())
	surface := backend.last().surface

	clock.Advance(50 * time.Millisecond)
	g.Update()
	require.Equal(t, 0.0, surface.Opacity())

	// A theme change before the timer fires restarts the fade.
	require.NoError(t, g.SetTheme(theme.Light))
	clock.Advance(60 * time.Millisecond)
	g.Update()
	require.Equal(t, 0.0, surface.Opacity())

	clock.Advance(40 * time.Millisecond)
	g.Update()
	require.Equal(t, 1.0, surface.Opacity())
}

func TestGlobeResizeIsNotALifecycleEvent(t *testing.T) {
	backend := &fakeBackend{}
	g := newTestGlobe(backend, newFakeClock(), nil)
	require.NoError(t, g.Mount())

	for _, w := range []int{200, 800, 451, 449} {
		g.Resize(w)
		frames(g, 1)
		require.Equal(t, min(w, 450), g.Viewport().CurrentWidthPx)
	}
	require.Equal(t, 1, backend.count("construct"))
	require.Zero(t, backend.count("destroy"))

	for _, fs := range backend.last().frames {
		require.Equal(t, fs.Width, fs.Height)
	}
}

func TestGlobeBoundsCenterTheViewport(t *testing.T) {
	g := newTestGlobe(&fakeBackend{}, newFakeClock(), nil)
	b := g.Bounds(600, 500)
	require.Equal(t, config.DefaultViewport, b.Dx())
	require.Equal(t, config.DefaultViewport, b.Dy())
	require.Equal(t, (600-config.DefaultViewport)/2, b.Min.X)

	require.NoError(t, g.Mount())
	g.Resize(300)
	frames(g, 1)
	require.Equal(t, 300, g.Bounds(300, 300).Dx())
}
