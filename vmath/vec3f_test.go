package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got Vec3F) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "X")
	assert.InDelta(t, want.Y, got.Y, eps, "Y")
	assert.InDelta(t, want.Z, got.Z, eps, "Z")
}

func TestV3FSetLength(t *testing.T) {
	v := V3FSetLength(Vec3F{3, 0, 4}, 10)
	assertVec(t, Vec3F{6, 0, 8}, v)

	assert.Equal(t, Vec3F{}, V3FSetLength(Vec3F{}, 5), "zero vector has no direction")
}

func TestV3FLerp(t *testing.T) {
	a := Vec3F{0, 0, 0}
	b := Vec3F{10, -20, 30}

	assertVec(t, a, V3FLerp(a, b, 0))
	assertVec(t, b, V3FLerp(a, b, 1))
	assertVec(t, Vec3F{0.5, -1, 1.5}, V3FLerp(a, b, 0.05))
}

func TestV3FRotateY(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec3F
	}{
		{"zero", 0, Vec3F{1, 0, 0}},
		{"quarter", math.Pi / 2, Vec3F{0, 0, -1}},
		{"half", math.Pi, Vec3F{-1, 0, 0}},
		{"three quarters", 3 * math.Pi / 2, Vec3F{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, V3FRotateY(AxisX, tt.angle))
		})
	}
}

func TestV3FRotateX(t *testing.T) {
	assertVec(t, Vec3F{0, 0, 1}, V3FRotateX(AxisY, math.Pi/2))
	assertVec(t, Vec3F{0, -1, 0}, V3FRotateX(AxisZ, math.Pi/2))
}

func TestV3FCross(t *testing.T) {
	assertVec(t, AxisZ, V3FCross(AxisX, AxisY))
	assertVec(t, AxisX, V3FCross(AxisY, AxisZ))
}

func TestTransformThen(t *testing.T) {
	parent := Translate(Vec3F{20, 0, 0}).Then(RotateY(math.Pi / 2))
	child := RotateY(math.Pi / 2)
	p := Vec3F{2.5, 0, 0}

	composed := parent.Then(child).Apply(p)
	stepwise := parent.Apply(child.Apply(p))

	assertVec(t, stepwise, composed)
	assertVec(t, Vec3F{17.5, 0, 0}, composed)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(0.5), eps)
	assert.InDelta(t, 0.5, WrapAngle(TwoPi+0.5), eps)
	assert.InDelta(t, TwoPi-0.5, WrapAngle(-0.5), eps)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0, 1, 2))
	assert.Equal(t, 2.0, Clamp(3, 1, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 1, 2))
}
