package config

import "time"

const (
	WindowWidth  = 640
	WindowHeight = 560

	// Viewport sizing
	MaxViewport     = 450
	DefaultViewport = 380

	// Rotation parameters
	AutoRotateStep  = 0.005
	MovementDamping = 1400.0

	// Spring parameters for the drag offset
	SpringMass      = 1.0
	SpringDamping   = 30.0
	SpringStiffness = 100.0

	TicksPerSecond = 60

	FadeInDelay = 100 * time.Millisecond

	FrameHistorySize = 240
)
