package parameter

// Orbital pacing
const (
	// BaseOrbitalConstant converts 1/period (Earth years) into radians per second at 1x speed
	// A body with period 1.0 sweeps 0.2 rad/s, a full orbit in ~31s
	BaseOrbitalConstant = 0.2

	// SatelliteSpeedBoost multiplies satellite angular speed relative to planets
	SatelliteSpeedBoost = 5.0

	// OrbitPathSegments is the default number of points in a sampled orbit guide
	OrbitPathSegments = 128

	// SunSpinPerTick and SkySpinPerTick are per-frame yaw increments, not time-scaled
	SunSpinPerTick = 0.001
	SkySpinPerTick = 0.0001
)

// Clock
const (
	// DefaultSimulationSpeed is the speed multiplier when no preference exists
	DefaultSimulationSpeed = 1.0

	// MaxSimulationSpeed bounds the speed slider
	MaxSimulationSpeed = 10.0

	// SimulationSpeedStep is the increment for keyboard speed adjustment
	SimulationSpeedStep = 0.5

	// MaxFrameDelta caps a single tick's delta in seconds
	// A stalled frame (debugger, suspended terminal) must not fling bodies around their orbits
	MaxFrameDelta = 0.1
)
