package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orrery/vmath"
)

func newTestControls() *Controls {
	return NewControls(vmath.Vec3F{Y: 20, Z: 50}, vmath.Vec3F{})
}

func TestFocus_SetsBoundsFromRadius(t *testing.T) {
	c := newTestControls()
	f := NewFocusController(FocusConfig{})

	require.True(t, f.Focus(Subject{Name: "Giant", Radius: 5}, c))
	assert.Equal(t, Focusing, f.State())
	assert.InDelta(t, 6.0, c.MinDistance, 1e-12)
	assert.InDelta(t, 65.0, c.MaxDistance, 1e-12)

	require.True(t, f.Clear(c))
	assert.Equal(t, Free, f.State())
	assert.Equal(t, 5.0, c.MinDistance)
	assert.Equal(t, 300.0, c.MaxDistance)
}

func TestFocusBounds_Floor(t *testing.T) {
	minD, maxD := FocusBounds(0.05)
	assert.Equal(t, 0.1, minD)
	assert.InDelta(t, 25.4, maxD, 1e-12)
}

func TestClear_IdempotentInFree(t *testing.T) {
	c := newTestControls()
	c.SetBounds(7, 70) // externally chosen bounds stay untouched
	f := NewFocusController(FocusConfig{})

	assert.False(t, f.Clear(c))
	assert.False(t, f.Clear(c))
	assert.Equal(t, 7.0, c.MinDistance)
	assert.Equal(t, 70.0, c.MaxDistance)
	assert.Equal(t, Free, f.State())
}

func TestClear_AfterConvergenceIsNoop(t *testing.T) {
	c := newTestControls()
	f := NewFocusController(FocusConfig{})
	body := vmath.Vec3F{X: 20}

	f.Focus(Subject{Name: "Earth", Radius: 1}, c)
	for range 1000 {
		if f.Update(c, body, 1.0/60) {
			break
		}
	}
	require.Equal(t, Free, f.State())
	pose := c.Pose()

	assert.False(t, f.Clear(c))
	assert.InDelta(t, 1.2, c.MinDistance, 1e-12, "converged bounds stay")
	assert.InDelta(t, 33.0, c.MaxDistance, 1e-12)
	assert.Equal(t, pose, c.Pose())

	// the next focus replaces them
	require.True(t, f.Focus(Subject{Name: "Giant", Radius: 5}, c))
	assert.InDelta(t, 65.0, c.MaxDistance, 1e-12)
	require.True(t, f.Clear(c))
	assert.Equal(t, 300.0, c.MaxDistance)
}

func TestFocus_SameSubjectIsNoop(t *testing.T) {
	c := newTestControls()
	f := NewFocusController(FocusConfig{})

	require.True(t, f.Focus(Subject{Name: "Earth", Radius: 1}, c))
	c.SetBounds(1, 2)
	assert.False(t, f.Focus(Subject{Name: "Earth", Radius: 1}, c))
	assert.Equal(t, 1.0, c.MinDistance, "bounds not re-applied")

	assert.True(t, f.Focus(Subject{Name: "Mars", Radius: 0.53}, c))
	s, ok := f.Subject()
	require.True(t, ok)
	assert.Equal(t, "Mars", s.Name)
}

func TestUpdate_ConvergesMonotonically(t *testing.T) {
	c := newTestControls()
	f := NewFocusController(FocusConfig{})
	body := vmath.Vec3F{X: 20, Z: 5}

	f.Focus(Subject{Name: "Earth", Radius: 1}, c)

	prev := vmath.V3FDist(c.Target, body)
	const maxTicks = 1000
	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		converged := f.Update(c, body, 1.0/60)
		d := vmath.V3FDist(c.Target, body)
		if converged {
			assert.Zero(t, d, "target snaps onto the body")
			break
		}
		assert.Less(t, d, prev, "tick %d did not approach", ticks)
		prev = d
	}

	require.Less(t, ticks, maxTicks, "did not converge")
	assert.Equal(t, Free, f.State())

	viewDistance := ViewDistance(1, c.MinDistance, c.MaxDistance)
	assert.InDelta(t, viewDistance, c.Distance(), 0.1)

	// Free controller leaves the pose to the user
	pose := c.Pose()
	assert.False(t, f.Update(c, vmath.Vec3F{X: 100}, 1.0/60))
	assert.Equal(t, pose, c.Pose())
}

func TestUpdate_FrameModeIgnoresDelta(t *testing.T) {
	body := vmath.Vec3F{X: 30}
	run := func(dt float64) vmath.Vec3F {
		c := newTestControls()
		f := NewFocusController(FocusConfig{Mode: ModeFrame})
		f.Focus(Subject{Name: "x", Radius: 1}, c)
		f.Update(c, body, dt)
		return c.Target
	}

	assert.Equal(t, run(1.0/120), run(1.0/15))
	assert.InDelta(t, 1.5, run(1.0/60).X, 1e-12)
}

func TestUpdate_TimeScaledMode(t *testing.T) {
	body := vmath.Vec3F{X: 30}

	c := newTestControls()
	f := NewFocusController(FocusConfig{Mode: ModeTimeScaled})
	f.Focus(Subject{Name: "x", Radius: 1}, c)

	f.Update(c, body, 1.0/60)
	assert.InDelta(t, 1.5, c.Target.X, 1e-9, "matches frame mode at the reference rate")

	f.Update(c, body, 0)
	assert.InDelta(t, 1.5, c.Target.X, 1e-9, "no elapsed time, no movement")

	// Two 60 Hz ticks equal one 30 Hz tick
	a := newTestControls()
	fa := NewFocusController(FocusConfig{Mode: ModeTimeScaled})
	fa.Focus(Subject{Name: "x", Radius: 1}, a)
	fa.Update(a, body, 1.0/60)
	fa.Update(a, body, 1.0/60)

	b := newTestControls()
	fb := NewFocusController(FocusConfig{Mode: ModeTimeScaled})
	fb.Focus(Subject{Name: "x", Radius: 1}, b)
	fb.Update(b, body, 1.0/30)

	assert.InDelta(t, a.Target.X, b.Target.X, 1e-9)
}

func TestUpdate_ZeroOffsetFallsBack(t *testing.T) {
	c := NewControls(vmath.Vec3F{}, vmath.Vec3F{})
	f := NewFocusController(FocusConfig{})
	f.Focus(Subject{Name: "x", Radius: 1}, c)

	f.Update(c, vmath.Vec3F{}, 1.0/60)
	assert.Greater(t, c.Position.Z, 0.0)
}

func TestViewDistance(t *testing.T) {
	// radius 1: 2.5 + max(10, 2) = 12.5, within [1.2, 33*0.8]
	minD, maxD := FocusBounds(1)
	assert.InDelta(t, 12.5, ViewDistance(1, minD, maxD), 1e-12)

	// radius 11.2: 28 + 22.4 = 50.4, capped to (11.2*8+25)*0.8 = 91.68 -> stays 50.4
	minD, maxD = FocusBounds(11.2)
	assert.InDelta(t, 50.4, ViewDistance(11.2, minD, maxD), 1e-9)

	// tight max clamps
	assert.InDelta(t, 8.0, ViewDistance(1, 0.1, 10), 1e-12)
	// min wins over max share
	assert.InDelta(t, 9.0, ViewDistance(1, 9, 10), 1e-12)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("time")
	require.NoError(t, err)
	assert.Equal(t, ModeTimeScaled, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeFrame, m)

	_, err = ParseMode("warp")
	assert.Error(t, err)
}
