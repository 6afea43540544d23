package scene

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// Sphere is a pickable body
type Sphere struct {
	Name   string
	Center vmath.Vec3F
	Radius float64
}

// RaySphere returns the distance along a unit ray to the first hit on s
func RaySphere(origin, dir vmath.Vec3F, s Sphere) (float64, bool) {
	oc := vmath.V3FSub(origin, s.Center)
	b := vmath.V3FDot(oc, dir)
	c := vmath.V3FMagSq(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		// Origin inside the sphere
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Pick casts a ray through grid position (x, y) and returns the nearest sphere hit
func (p *Projector) Pick(x, y float64, spheres []Sphere) (string, bool) {
	dir := p.Ray(x, y)
	best := math.Inf(1)
	name := ""
	for _, s := range spheres {
		if t, ok := RaySphere(p.Eye, dir, s); ok && t < best {
			best = t
			name = s.Name
		}
	}
	return name, name != ""
}
