// Package orbit holds the orbital state model: bodies on uniform circular orbits
// with a fixed inclination, advanced tick by tick from externally supplied time
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// ErrInvalidBody is wrapped by every body validation failure
var ErrInvalidBody = errors.New("invalid body")

// ValidationError reports which field of which body failed validation
type ValidationError struct {
	Body   string
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	name := e.Body
	if name == "" {
		name = "<unnamed>"
	}
	if e.Field == "" {
		return fmt.Sprintf("body %s: %s", name, e.Reason)
	}
	return fmt.Sprintf("body %s: %s=%g: %s", name, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidBody }

// Body is a planet or moon
// Orbital parameters are fixed after construction; Angle and Rotation are simulation state
type Body struct {
	Name string

	Radius        float64 // relative units
	Distance      float64 // orbit radius around the parent
	Inclination   float64 // radians, tilt of the orbital plane about X
	OrbitalPeriod float64 // Earth years
	RotationSpeed float64 // axial yaw per tick

	Angle    float64 // orbital angle, radians, unbounded
	Rotation float64 // accumulated axial yaw, radians

	// Satellites orbit this body's position and inherit its spin
	Satellites []*Body
}

// Validate checks the construction-time invariants of b and its satellites
func (b *Body) Validate() error {
	switch {
	case b.Name == "":
		return &ValidationError{Reason: "name is required"}
	case !(b.Distance > 0):
		return &ValidationError{Body: b.Name, Field: "distance", Value: b.Distance, Reason: "must be positive"}
	case !(b.OrbitalPeriod > 0):
		return &ValidationError{Body: b.Name, Field: "orbitalPeriod", Value: b.OrbitalPeriod, Reason: "must be positive"}
	case !(b.Radius > 0):
		return &ValidationError{Body: b.Name, Field: "radius", Value: b.Radius, Reason: "must be positive"}
	}
	for _, s := range b.Satellites {
		if len(s.Satellites) > 0 {
			return &ValidationError{Body: s.Name, Reason: "satellites cannot have satellites"}
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("satellite of %s: %w", b.Name, err)
		}
	}
	return nil
}

// AngularSpeed returns radians per second for the given speed product
func (b *Body) AngularSpeed(baseConstant, speed, timeMultiplier float64) float64 {
	return (1 / b.OrbitalPeriod) * baseConstant * speed * timeMultiplier
}

// Position returns the point at angle on a circle of radius distance in the XZ plane
// tilted about X by inclination
func Position(distance, angle, inclination float64) vmath.Vec3F {
	x := distance * math.Cos(angle)
	u := distance * math.Sin(angle)
	return vmath.Vec3F{
		X: x,
		Y: u * math.Sin(inclination),
		Z: u * math.Cos(inclination),
	}
}

// OrbitPosition is the position of a top-level body relative to the origin
func (b *Body) OrbitPosition() vmath.Vec3F {
	return Position(b.Distance, b.Angle, b.Inclination)
}

// PivotPosition is a satellite's offset in its parent's local frame
// The angle spins a pivot about Y carrying the satellite at (distance, 0, 0)
func (b *Body) PivotPosition() vmath.Vec3F {
	return vmath.V3FRotateY(vmath.Vec3F{X: b.Distance}, b.Angle)
}
