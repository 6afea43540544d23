package parameter

import "time"

// Perspective projection
const (
	FieldOfViewDeg = 75.0
	NearPlane      = 0.1
	FarPlane       = 1000.0

	// TerminalCellAspect is cell height over width for typical monospace fonts
	TerminalCellAspect = 2.0
)

// Star field
const (
	StarCount          = 1000
	StarCountLowDetail = 250
	StarShellInner     = 150.0
	StarShellDepth     = 40.0
)

// Frame-rate monitor
const (
	// PerfWindow is the sampling window for FPS measurement
	PerfWindow = time.Second

	// LowQualityEnterFPS switches to low quality below this rate
	LowQualityEnterFPS = 30.0

	// LowQualityExitFPS restores full quality above this rate
	LowQualityExitFPS = 45.0
)

// Frontend pacing
const (
	TerminalFPS = 30
	WindowTPS   = 60
)
