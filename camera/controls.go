// Package camera provides free orbit navigation around a look-at target and the
// focus controller that glides the view onto a selected body
package camera

import (
	"math"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

const polarEpsilon = 1e-6

// Pose is a camera placement: where it sits and what it looks at
type Pose struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
}

// Controls is the free navigation state: orbit about the target, zoom, pan
// Distance and polar angle are clamped on every Update
type Controls struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F

	MinDistance float64
	MaxDistance float64
	MaxPolar    float64

	defaultMin float64
	defaultMax float64
}

// NewControls creates controls with the default distance bounds
func NewControls(position, target vmath.Vec3F) *Controls {
	return &Controls{
		Position:    position,
		Target:      target,
		MinDistance: parameter.DefaultMinDistance,
		MaxDistance: parameter.DefaultMaxDistance,
		MaxPolar:    parameter.MaxPolarAngle,
		defaultMin:  parameter.DefaultMinDistance,
		defaultMax:  parameter.DefaultMaxDistance,
	}
}

// Pose returns the current camera placement
func (c *Controls) Pose() Pose {
	return Pose{Position: c.Position, Target: c.Target}
}

// Distance returns the camera-target distance
func (c *Controls) Distance() float64 {
	return vmath.V3FDist(c.Position, c.Target)
}

// SetBounds replaces the zoom distance bounds
func (c *Controls) SetBounds(minDistance, maxDistance float64) {
	c.MinDistance = minDistance
	c.MaxDistance = maxDistance
}

// ResetBounds restores the bounds the controls were created with
func (c *Controls) ResetBounds() {
	c.MinDistance = c.defaultMin
	c.MaxDistance = c.defaultMax
}

// DefaultBounds reports the bounds ResetBounds restores
func (c *Controls) DefaultBounds() (minDistance, maxDistance float64) {
	return c.defaultMin, c.defaultMax
}

// spherical returns offset radius, azimuth about +Y measured from +Z, and polar angle from +Y
func spherical(offset vmath.Vec3F) (r, azimuth, polar float64) {
	r = vmath.V3FMag(offset)
	if r == 0 {
		return 0, 0, 0
	}
	azimuth = math.Atan2(offset.X, offset.Z)
	polar = math.Acos(vmath.Clamp(offset.Y/r, -1, 1))
	return r, azimuth, polar
}

func fromSpherical(r, azimuth, polar float64) vmath.Vec3F {
	sinPolar := math.Sin(polar)
	return vmath.Vec3F{
		X: r * sinPolar * math.Sin(azimuth),
		Y: r * math.Cos(polar),
		Z: r * sinPolar * math.Cos(azimuth),
	}
}

// Rotate orbits the camera about the target
func (c *Controls) Rotate(dAzimuth, dPolar float64) {
	r, az, pol := spherical(vmath.V3FSub(c.Position, c.Target))
	if r == 0 {
		return
	}
	c.Position = vmath.V3FAdd(c.Target, fromSpherical(r, az+dAzimuth, c.clampPolar(pol+dPolar)))
}

// Zoom scales the camera-target distance, >1 moves away
func (c *Controls) Zoom(scale float64) {
	if scale <= 0 {
		return
	}
	offset := vmath.V3FSub(c.Position, c.Target)
	r := vmath.V3FMag(offset)
	if r == 0 {
		return
	}
	r = vmath.Clamp(r*scale, c.MinDistance, c.MaxDistance)
	c.Position = vmath.V3FAdd(c.Target, vmath.V3FSetLength(offset, r))
}

// Pan translates camera and target together along the view's right and up axes
func (c *Controls) Pan(right, up float64) {
	forward := vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Position))
	rightAxis := vmath.V3FNormalize(vmath.V3FCross(forward, vmath.AxisY))
	if rightAxis == (vmath.Vec3F{}) {
		rightAxis = vmath.AxisX
	}
	upAxis := vmath.V3FCross(rightAxis, forward)

	delta := vmath.V3FAdd(vmath.V3FScale(rightAxis, right), vmath.V3FScale(upAxis, up))
	c.Position = vmath.V3FAdd(c.Position, delta)
	c.Target = vmath.V3FAdd(c.Target, delta)
}

// Update applies the distance and polar constraints to the current placement
func (c *Controls) Update() {
	r, az, pol := spherical(vmath.V3FSub(c.Position, c.Target))
	if r == 0 {
		return
	}
	r = vmath.Clamp(r, c.MinDistance, c.MaxDistance)
	c.Position = vmath.V3FAdd(c.Target, fromSpherical(r, az, c.clampPolar(pol)))
}

func (c *Controls) clampPolar(p float64) float64 {
	hi := math.Min(c.MaxPolar, math.Pi-polarEpsilon)
	return vmath.Clamp(p, polarEpsilon, hi)
}
