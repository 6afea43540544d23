package orbit

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// ErrDuplicateBody is returned when two bodies share a name
var ErrDuplicateBody = errors.New("duplicate body name")

// Pose is a body's resolved world placement for the renderer
type Pose struct {
	Name     string
	Parent   string // empty for top-level bodies
	Position vmath.Vec3F
	Rotation float64
	Radius   float64
}

// System is the set of top-level bodies orbiting the origin, plus the sun and sky spin
type System struct {
	Bodies []*Body

	SunRadius   float64
	SunRotation float64
	SkyRotation float64

	index map[string]*Body
	owner map[string]*Body
}

// NewSystem validates the bodies and builds the name index
// Fails fast on the first invariant violation
func NewSystem(sunRadius float64, bodies ...*Body) (*System, error) {
	s := &System{
		Bodies:    bodies,
		SunRadius: sunRadius,
		index:     make(map[string]*Body),
		owner:     make(map[string]*Body),
	}

	for _, b := range bodies {
		if b == nil {
			return nil, fmt.Errorf("%w: nil body", ErrInvalidBody)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if err := s.register(b, nil); err != nil {
			return nil, err
		}
		for _, sat := range b.Satellites {
			if err := s.register(sat, b); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *System) register(b, parent *Body) error {
	if _, exists := s.index[b.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBody, b.Name)
	}
	s.index[b.Name] = b
	if parent != nil {
		s.owner[b.Name] = parent
	}
	return nil
}

// Advance steps all bodies, then the sun and sky spin
func (s *System) Advance(tick Tick) {
	if tick.Paused {
		return
	}
	Advance(s.Bodies, tick)
	s.SunRotation += parameter.SunSpinPerTick
	s.SkyRotation += parameter.SkySpinPerTick
}

// Lookup returns the body with the given name, including satellites
func (s *System) Lookup(name string) (*Body, bool) {
	b, ok := s.index[name]
	return b, ok
}

// Parent returns the body a satellite orbits
func (s *System) Parent(name string) (*Body, bool) {
	p, ok := s.owner[name]
	return p, ok
}

// frame returns the local frame of a top-level body: its orbit position and its spin
func frame(b *Body) vmath.Transform {
	return vmath.Translate(b.OrbitPosition()).Then(vmath.RotateY(b.Rotation))
}

// satelliteWorld composes parent frame, pivot rotation and local offset
func satelliteWorld(parent, sat *Body) vmath.Vec3F {
	pivot := vmath.RotateY(sat.Angle)
	return frame(parent).Then(pivot).Apply(vmath.Vec3F{X: sat.Distance})
}

// WorldPosition resolves any body's position in scene space
func (s *System) WorldPosition(name string) (vmath.Vec3F, bool) {
	b, ok := s.index[name]
	if !ok {
		return vmath.Vec3F{}, false
	}
	if parent, isSat := s.owner[name]; isSat {
		return satelliteWorld(parent, b), true
	}
	return b.OrbitPosition(), true
}

// Poses resolves every body, planets first in order, each followed by its satellites
func (s *System) Poses() []Pose {
	poses := make([]Pose, 0, len(s.index))
	for _, b := range s.Bodies {
		poses = append(poses, Pose{
			Name:     b.Name,
			Position: b.OrbitPosition(),
			Rotation: b.Rotation,
			Radius:   b.Radius,
		})
		for _, sat := range b.Satellites {
			poses = append(poses, Pose{
				Name:     sat.Name,
				Parent:   b.Name,
				Position: satelliteWorld(b, sat),
				Rotation: b.Rotation + sat.Angle + sat.Rotation,
				Radius:   sat.Radius,
			})
		}
	}
	return poses
}

// Scatter places every body at a random orbital angle in [0, 2π)
func (s *System) Scatter(rng *rand.Rand) {
	for _, b := range s.Bodies {
		b.Angle = rng.Float64() * vmath.TwoPi
		for _, sat := range b.Satellites {
			sat.Angle = rng.Float64() * vmath.TwoPi
		}
	}
}

// Names returns top-level body names in order
func (s *System) Names() []string {
	names := make([]string, len(s.Bodies))
	for i, b := range s.Bodies {
		names[i] = b.Name
	}
	return names
}
