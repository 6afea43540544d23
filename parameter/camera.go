package parameter

import "math"

// Free camera navigation bounds
const (
	// DefaultMinDistance and DefaultMaxDistance bound camera-target distance with no focused body
	DefaultMinDistance = 5.0
	DefaultMaxDistance = 300.0

	// MaxPolarAngle keeps the camera above the ecliptic-ish; measured from +Y
	MaxPolarAngle = math.Pi / 1.5

	// OrbitStep is the azimuth/polar change per navigation key press, radians
	OrbitStep = 0.08

	// ZoomStep scales distance per zoom key press or wheel notch
	ZoomStep = 1.1

	// PanStep moves target and camera per pan key press, scene units
	PanStep = 2.0
)

// Focus transition
const (
	// FocusRate is the fraction of remaining distance covered per tick
	FocusRate = 0.05

	// FocusTolerance is the convergence distance for both target and camera
	FocusTolerance = 0.1

	// FocusReferenceFPS anchors the time-scaled mode so both modes agree at this frame rate
	FocusReferenceFPS = 60.0

	// Focus bounds derived from body radius
	FocusMinDistanceFloor  = 0.1
	FocusMinDistanceFactor = 1.2
	FocusMaxDistanceFactor = 8.0
	FocusMaxDistancePad    = 25.0

	// View distance derived from body radius, clamped to [min, max*FocusViewMaxShare]
	FocusViewRadiusFactor = 2.5
	FocusViewPadFactor    = 2.0
	FocusViewPadFloor     = 10.0
	FocusViewMaxShare     = 0.8
)

// Initial camera placement
const (
	InitialCameraX = 0.0
	InitialCameraY = 20.0
	InitialCameraZ = 50.0
)
