package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in scene units
// Right-handed, Y up; the reference orbital plane is XZ
type Vec3F struct {
	X, Y, Z float64
}

// Common axes
var (
	AxisX = Vec3F{1, 0, 0}
	AxisY = Vec3F{0, 1, 0}
	AxisZ = Vec3F{0, 0, 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FSetLength rescales v to the given length, zero vector stays zero
func V3FSetLength(v Vec3F, length float64) Vec3F {
	return V3FScale(V3FNormalize(v), length)
}

// V3FLerp moves a toward b by fraction t (t=0 returns a, t=1 returns b)
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FRotateX rotates v about the X axis by angle radians (right-hand rule)
func V3FRotateX(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// V3FRotateY rotates v about the Y axis by angle radians (right-hand rule)
// (1,0,0) rotated by a yields (cos a, 0, -sin a)
func V3FRotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}
