package scene

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// StarField scatters n points uniformly over directions on a shell [inner, inner+depth)
func StarField(rng *rand.Rand, n int, inner, depth float64) []vmath.Vec3F {
	if n <= 0 {
		return nil
	}
	stars := make([]vmath.Vec3F, n)
	for i := range stars {
		r := inner + rng.Float64()*depth
		theta := rng.Float64() * vmath.TwoPi
		phi := math.Acos(2*rng.Float64() - 1)
		stars[i] = vmath.Vec3F{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Cos(phi),
			Z: r * math.Sin(phi) * math.Sin(theta),
		}
	}
	return stars
}

// DefaultStarField uses the standard shell radii
func DefaultStarField(rng *rand.Rand, n int) []vmath.Vec3F {
	return StarField(rng, n, parameter.StarShellInner, parameter.StarShellDepth)
}
