package clock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDelta(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := New(mock)

	mock.Advance(16 * time.Millisecond)
	assert.InDelta(t, 0.016, c.Delta(), 1e-9)

	// Second read without time passing
	assert.Zero(t, c.Delta())

	mock.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.05, c.Delta(), 1e-9)
}

func TestDelta_Capped(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := New(mock)

	mock.Advance(3 * time.Second)
	assert.InDelta(t, 0.1, c.Delta(), 1e-9)

	c.SetMaxDelta(0)
	mock.Advance(3 * time.Second)
	assert.InDelta(t, 3.0, c.Delta(), 1e-9)
}

func TestDelta_BackwardsTime(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := New(mock)

	mock.SetTime(epoch.Add(-time.Second))
	assert.Zero(t, c.Delta())
}

func TestResumeDiscardsPausedInterval(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := New(mock)
	c.SetMaxDelta(0)

	c.Pause()
	mock.Advance(10 * time.Second)
	c.Resume()

	mock.Advance(20 * time.Millisecond)
	tick := c.Tick()
	assert.False(t, tick.Paused)
	assert.InDelta(t, 0.02, tick.Delta, 1e-9)
}

func TestTickCarriesControls(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := New(mock)

	require.NoError(t, c.SetSpeed(2.5))
	require.NoError(t, c.SetTimeMultiplier(3))
	c.Pause()

	mock.Advance(time.Millisecond)
	tick := c.Tick()
	assert.Equal(t, 2.5, tick.Speed)
	assert.Equal(t, 3.0, tick.TimeMultiplier)
	assert.True(t, tick.Paused)
}

func TestToggle(t *testing.T) {
	c := New(NewMockTimeProvider(epoch))

	assert.True(t, c.Toggle())
	assert.True(t, c.IsPaused())
	assert.False(t, c.Toggle())
	assert.False(t, c.IsPaused())
}

func TestSetSpeed_RejectsNegative(t *testing.T) {
	c := New(NewMockTimeProvider(epoch))

	assert.ErrorIs(t, c.SetSpeed(-1), ErrNegativeSpeed)
	assert.ErrorIs(t, c.SetSpeed(math.NaN()), ErrNegativeSpeed)
	assert.ErrorIs(t, c.SetTimeMultiplier(-0.5), ErrNegativeSpeed)
	assert.Equal(t, 1.0, c.Speed(), "rejected value leaves speed unchanged")

	require.NoError(t, c.SetSpeed(0))
	assert.Zero(t, c.Speed())
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	assert.True(t, mock.Now().Equal(epoch))

	mock.Advance(time.Hour)
	assert.True(t, mock.Now().Equal(epoch.Add(time.Hour)))

	next := epoch.Add(48 * time.Hour)
	mock.SetTime(next)
	assert.True(t, mock.Now().Equal(next))
}
