package orbit

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orrery/vmath"
)

func TestBodyValidate(t *testing.T) {
	tests := []struct {
		name  string
		body  Body
		field string
	}{
		{"zero period", Body{Name: "a", Radius: 1, Distance: 1, OrbitalPeriod: 0}, "orbitalPeriod"},
		{"negative period", Body{Name: "a", Radius: 1, Distance: 1, OrbitalPeriod: -1}, "orbitalPeriod"},
		{"nan period", Body{Name: "a", Radius: 1, Distance: 1, OrbitalPeriod: math.NaN()}, "orbitalPeriod"},
		{"zero distance", Body{Name: "a", Radius: 1, Distance: 0, OrbitalPeriod: 1}, "distance"},
		{"zero radius", Body{Name: "a", Radius: 0, Distance: 1, OrbitalPeriod: 1}, "radius"},
		{"no name", Body{Radius: 1, Distance: 1, OrbitalPeriod: 1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.body.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBody)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBodyValidate_Satellite(t *testing.T) {
	b := earthLike()
	b.Satellites[0].OrbitalPeriod = 0

	err := b.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBody)
	assert.Contains(t, err.Error(), "satellite of Earth")
	assert.Contains(t, err.Error(), "Moon")
}

func TestNewSystem_Errors(t *testing.T) {
	_, err := NewSystem(5, earthLike(), earthLike())
	assert.ErrorIs(t, err, ErrDuplicateBody)

	_, err = NewSystem(5, &Body{Name: "bad", Radius: 1, Distance: -3, OrbitalPeriod: 1})
	assert.ErrorIs(t, err, ErrInvalidBody)

	_, err = NewSystem(5, nil)
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestSystemLookup(t *testing.T) {
	sys, err := NewSystem(5, earthLike())
	require.NoError(t, err)

	moon, ok := sys.Lookup("Moon")
	require.True(t, ok)
	assert.Equal(t, 2.5, moon.Distance)

	parent, ok := sys.Parent("Moon")
	require.True(t, ok)
	assert.Equal(t, "Earth", parent.Name)

	_, ok = sys.Parent("Earth")
	assert.False(t, ok)

	_, ok = sys.WorldPosition("Pluto")
	assert.False(t, ok)
}

func TestSystemScatter(t *testing.T) {
	sys, err := NewSystem(5, earthLike())
	require.NoError(t, err)

	sys.Scatter(rand.New(rand.NewPCG(1, 2)))
	for _, b := range []*Body{sys.Bodies[0], sys.Bodies[0].Satellites[0]} {
		assert.GreaterOrEqual(t, b.Angle, 0.0)
		assert.Less(t, b.Angle, vmath.TwoPi)
	}
}
