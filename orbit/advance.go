package orbit

import (
	"github.com/lixenwraith/orrery/parameter"
)

// Tick carries everything one simulation step needs
// Built by the host each frame; the model never reads a clock
type Tick struct {
	Delta          float64 // elapsed seconds since the previous tick
	Speed          float64 // user speed multiplier
	TimeMultiplier float64 // time-control multiplier
	Paused         bool
}

// Advance steps every body and its satellites by one tick
// Paused ticks leave all state untouched. Axial spin adds RotationSpeed once per tick
// regardless of Delta, so spin rate follows frame rate
func Advance(bodies []*Body, tick Tick) {
	if tick.Paused {
		return
	}

	for _, b := range bodies {
		b.Rotation += b.RotationSpeed
		b.Angle += b.AngularSpeed(parameter.BaseOrbitalConstant, tick.Speed, tick.TimeMultiplier) * tick.Delta

		for _, s := range b.Satellites {
			s.Rotation += s.RotationSpeed
			s.Angle += s.AngularSpeed(parameter.BaseOrbitalConstant, tick.Speed, tick.TimeMultiplier) *
				parameter.SatelliteSpeedBoost * tick.Delta
		}
	}
}
