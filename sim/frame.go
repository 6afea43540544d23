package sim

import (
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/prefs"
	"github.com/lixenwraith/orrery/vmath"
)

// Frame is a read-only snapshot for renderers
type Frame struct {
	Number uint64
	Delta  float64

	Camera camera.Pose
	Bodies []orbit.Pose

	SunRadius   float64
	SunRotation float64
	SkyRotation float64

	Selected   string
	Focus      camera.State
	Paused     bool
	Speed      float64
	LowQuality bool
	Prefs      prefs.Preferences

	Stars []vmath.Vec3F
}

// Frame captures the current state without stepping
func (s *Sim) Frame() Frame {
	stars := s.stars
	if s.lowQuality && len(stars) > parameter.StarCountLowDetail {
		stars = stars[:parameter.StarCountLowDetail]
	}
	return Frame{
		Number:      s.frames,
		Delta:       s.lastDelta,
		Camera:      s.controls.Pose(),
		Bodies:      s.system.Poses(),
		SunRadius:   s.system.SunRadius,
		SunRotation: s.system.SunRotation,
		SkyRotation: s.system.SkyRotation,
		Selected:    s.selected,
		Focus:       s.focus.State(),
		Paused:      s.clock.IsPaused(),
		Speed:       s.clock.Speed(),
		LowQuality:  s.lowQuality,
		Prefs:       s.prefs,
		Stars:       stars,
	}
}
