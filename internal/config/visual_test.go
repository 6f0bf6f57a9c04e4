package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/globe-visualization/internal/theme"
)

func TestSelectByTheme(t *testing.T) {
	require.Equal(t, Light(), Select(theme.Light, nil))
	require.Equal(t, Dark(), Select(theme.Dark, nil))
	require.Equal(t, Dark(), Select(theme.Unresolved, nil))
}

func TestSelectOverrideIgnoresTheme(t *testing.T) {
	override := Light()
	override.GlowColor = Color{0, 1, 0}
	override.Markers = nil

	for _, th := range []theme.Theme{theme.Unresolved, theme.Light, theme.Dark} {
		require.Equal(t, override, Select(th, &override))
	}
}

func TestPalettes(t *testing.T) {
	dark := Dark()
	require.Equal(t, Color{0.6, 0.4, 1}, dark.MarkerColor)
	require.Equal(t, 0.3, dark.Theta)
	require.Len(t, dark.Markers, 4)
	require.Equal(t, 0.05, dark.Markers[3].Size)

	light := Light()
	require.Equal(t, Color{0.3, 0.1, 0.9}, light.MarkerColor)
	require.Equal(t, 0.08, light.Markers[0].Size)
	require.Equal(t, light.Size, dark.Size)

	require.NoError(t, Validate(&light))
	require.NoError(t, Validate(&dark))
}

func TestPalettesAreIndependentCopies(t *testing.T) {
	a := Dark()
	a.Markers[0].Size = 1
	require.Equal(t, 0.06, Dark().Markers[0].Size)
}
