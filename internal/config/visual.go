package config

import "github.com/iburimskiy/globe-visualization/internal/theme"

// Color is a normalized RGB triple.
type Color [3]float64

// Marker is a point drawn on the globe surface.
type Marker struct {
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Size float64 `yaml:"size" validate:"gt=0,lte=1"`
}

// VisualConfig describes how a globe looks. A value is never mutated once a
// renderer has been built from it.
type VisualConfig struct {
	Size          int      `yaml:"size" validate:"gte=0,lte=450"`
	Phi           float64  `yaml:"phi"`
	Theta         float64  `yaml:"theta" validate:"gte=-1.5708,lte=1.5708"`
	Dark          float64  `yaml:"dark" validate:"gte=0,lte=1"`
	Diffuse       float64  `yaml:"diffuse" validate:"gt=0"`
	MapSamples    int      `yaml:"map_samples" validate:"gt=0,lte=100000"`
	MapBrightness float64  `yaml:"map_brightness" validate:"gt=0"`
	BaseColor     Color    `yaml:"base_color" validate:"dive,gte=0,lte=1"`
	MarkerColor   Color    `yaml:"marker_color" validate:"dive,gte=0,lte=1"`
	GlowColor     Color    `yaml:"glow_color" validate:"dive,gte=0,lte=1"`
	Markers       []Marker `yaml:"markers" validate:"dive"`
}

func markers(big, small float64) []Marker {
	return []Marker{
		{Lat: 37.7749, Lon: -122.4194, Size: big},  // San Francisco
		{Lat: 51.5074, Lon: -0.1278, Size: big},    // London
		{Lat: 35.6762, Lon: 139.6503, Size: big},   // Tokyo
		{Lat: -23.5505, Lon: -46.6333, Size: small}, // São Paulo
	}
}

// Light returns the palette used for the light theme.
func Light() VisualConfig {
	return VisualConfig{
		Size:          DefaultViewport,
		Phi:           0,
		Theta:         0.3,
		Dark:          0,
		Diffuse:       1.2,
		MapSamples:    8000,
		MapBrightness: 2.5,
		BaseColor:     Color{1, 1, 1},
		MarkerColor:   Color{0.3, 0.1, 0.9},
		GlowColor:     Color{0.3, 0.1, 0.9},
		Markers:       markers(0.08, 0.07),
	}
}

// Dark returns the palette used for the dark theme and while the theme is
// still unresolved.
func Dark() VisualConfig {
	return VisualConfig{
		Size:          DefaultViewport,
		Phi:           0,
		Theta:         0.3,
		Dark:          0.3,
		Diffuse:       0.6,
		MapSamples:    8000,
		MapBrightness: 1.2,
		BaseColor:     Color{0.7, 0.7, 0.7},
		MarkerColor:   Color{0.6, 0.4, 1},
		GlowColor:     Color{0.6, 0.4, 1},
		Markers:       markers(0.06, 0.05),
	}
}

// Select picks the config for a resolved theme. An override wins
// unconditionally; an unresolved theme falls back to the dark palette so the
// globe can render before the theme is known.
func Select(t theme.Theme, override *VisualConfig) VisualConfig {
	if override != nil {
		return *override
	}
	if t == theme.Light {
		return Light()
	}
	return Dark()
}
