package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePath_FlatCircle(t *testing.T) {
	points := SamplePath(20, 0, 128)
	require.Len(t, points, 128)

	for i, p := range points {
		assert.InDelta(t, 400, p.X*p.X+p.Z*p.Z, 1e-9, "point %d off the circle", i)
		assert.InDelta(t, 0, p.Y, 1e-12, "point %d off the plane", i)
	}
}

func TestSamplePath_Spacing(t *testing.T) {
	const n = 128
	points := SamplePath(10, 0, n)

	step := 2 * math.Pi / n
	for i, p := range points {
		angle := math.Atan2(p.Z, p.X)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		assert.InDelta(t, float64(i)*step, angle, 1e-9)
	}
}

func TestSamplePath_DefaultCount(t *testing.T) {
	assert.Len(t, SamplePath(5, 0.1, 0), 128)
	assert.Len(t, SamplePath(5, 0.1, -4), 128)
	assert.Len(t, SamplePath(5, 0.1, 16), 16)
}

func TestSamplePath_MatchesBodyPosition(t *testing.T) {
	const incl = 0.1221730476
	points := SamplePath(10, incl, 64)
	b := &Body{Name: "Mercury", Radius: 0.38, Distance: 10, OrbitalPeriod: 0.24, Inclination: incl}

	for i, p := range points {
		b.Angle = float64(i) / 64 * 2 * math.Pi
		want := b.OrbitPosition()
		assert.InDelta(t, want.X, p.X, 1e-12)
		assert.InDelta(t, want.Y, p.Y, 1e-12)
		assert.InDelta(t, want.Z, p.Z, 1e-12)
	}
}
