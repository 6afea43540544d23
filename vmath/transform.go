package vmath

// Transform is a rigid placement restricted to translation plus rotation about Y
// Sufficient for the body hierarchy: every pivot in the scene spins about its local Y axis
type Transform struct {
	Translation Vec3F
	Yaw         float64
}

// Identity is the transform that leaves points unchanged
var Identity = Transform{}

// Translate returns a pure translation
func Translate(v Vec3F) Transform {
	return Transform{Translation: v}
}

// RotateY returns a pure rotation about Y
func RotateY(angle float64) Transform {
	return Transform{Yaw: angle}
}

// Apply maps a point from local space into the parent space of t
func (t Transform) Apply(p Vec3F) Vec3F {
	return V3FAdd(V3FRotateY(p, t.Yaw), t.Translation)
}

// Then composes t with inner so that t.Then(inner).Apply(p) == t.Apply(inner.Apply(p))
func (t Transform) Then(inner Transform) Transform {
	return Transform{
		Translation: t.Apply(inner.Translation),
		Yaw:         t.Yaw + inner.Yaw,
	}
}
