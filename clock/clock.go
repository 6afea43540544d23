// Package clock measures frame deltas and holds the pause and speed controls
// that shape each simulation tick
package clock

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/parameter"
)

// ErrNegativeSpeed is returned when a speed or time multiplier below zero is requested
var ErrNegativeSpeed = errors.New("speed multiplier must not be negative")

// Clock is the simulation clock
// Owned by the frame loop goroutine; not safe for concurrent use
type Clock struct {
	provider TimeProvider
	last     time.Time

	paused         bool
	speed          float64
	timeMultiplier float64
	maxDelta       float64
}

// New creates a running clock at 1x speed reading time from provider
func New(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider:       provider,
		last:           provider.Now(),
		speed:          parameter.DefaultSimulationSpeed,
		timeMultiplier: 1,
		maxDelta:       parameter.MaxFrameDelta,
	}
}

// SetMaxDelta caps the delta returned by Delta, zero disables the cap
func (c *Clock) SetMaxDelta(seconds float64) {
	c.maxDelta = seconds
}

// Delta returns seconds elapsed since the previous call and restarts the measurement
// Measurement continues while paused so the first tick after resume is not a jump
func (c *Clock) Delta() float64 {
	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Restart discards the time accumulated since the previous Delta
func (c *Clock) Restart() {
	c.last = c.provider.Now()
}

// Tick measures the delta and packages it with the current controls
func (c *Clock) Tick() orbit.Tick {
	return orbit.Tick{
		Delta:          c.Delta(),
		Speed:          c.speed,
		TimeMultiplier: c.timeMultiplier,
		Paused:         c.paused,
	}
}

// Pause freezes orbital advancement
func (c *Clock) Pause() {
	c.paused = true
}

// Resume continues advancement without counting the paused interval
func (c *Clock) Resume() {
	if c.paused {
		c.paused = false
		c.Restart()
	}
}

// SetPaused pauses or resumes
func (c *Clock) SetPaused(paused bool) {
	if paused {
		c.Pause()
	} else {
		c.Resume()
	}
}

// Toggle flips the pause state and returns the new state
func (c *Clock) Toggle() bool {
	c.SetPaused(!c.paused)
	return c.paused
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}

// Speed returns the user speed multiplier
func (c *Clock) Speed() float64 {
	return c.speed
}

// SetSpeed sets the user speed multiplier
func (c *Clock) SetSpeed(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %g", ErrNegativeSpeed, v)
	}
	c.speed = v
	return nil
}

// TimeMultiplier returns the time-control multiplier
func (c *Clock) TimeMultiplier() float64 {
	return c.timeMultiplier
}

// SetTimeMultiplier sets the time-control multiplier
func (c *Clock) SetTimeMultiplier(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: time multiplier %g", ErrNegativeSpeed, v)
	}
	c.timeMultiplier = v
	return nil
}
