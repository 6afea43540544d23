package orbit

import (
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// SamplePath returns n points spaced 2π/n apart on the orbit circle of the given radius
// and inclination, starting at angle 0. The polyline is closed implicitly (last joins first)
// n <= 0 selects the default segment count
func SamplePath(radius, inclination float64, n int) []vmath.Vec3F {
	if n <= 0 {
		n = parameter.OrbitPathSegments
	}

	points := make([]vmath.Vec3F, n)
	for i := range points {
		angle := float64(i) / float64(n) * vmath.TwoPi
		points[i] = Position(radius, angle, inclination)
	}
	return points
}
