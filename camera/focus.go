package camera

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// State of the focus controller
type State int

const (
	// Free leaves the camera to user navigation
	Free State = iota
	// Focusing glides target and camera toward a subject each tick
	Focusing
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Focusing:
		return "focusing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Mode selects how the per-tick interpolation rate relates to elapsed time
type Mode int

const (
	// ModeFrame applies the fixed rate once per tick; convergence speed follows frame rate
	ModeFrame Mode = iota
	// ModeTimeScaled derives the per-tick rate from elapsed time, matching ModeFrame at the reference FPS
	ModeTimeScaled
)

func (m Mode) String() string {
	if m == ModeTimeScaled {
		return "time"
	}
	return "frame"
}

// ParseMode maps "frame" or "time" to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "frame":
		return ModeFrame, nil
	case "time", "timescaled", "time-scaled":
		return ModeTimeScaled, nil
	}
	return ModeFrame, fmt.Errorf("unknown focus mode %q", s)
}

// Subject is what the controller needs to know about a focused body
type Subject struct {
	Name   string
	Radius float64
}

// FocusConfig tunes the controller, zero fields take defaults
type FocusConfig struct {
	Mode      Mode
	Rate      float64
	Tolerance float64
}

// FocusController moves the camera onto a subject and hands control back once converged
type FocusController struct {
	mode      Mode
	rate      float64
	tolerance float64

	subject Subject
	state   State
}

// NewFocusController creates a controller in the Free state
func NewFocusController(cfg FocusConfig) *FocusController {
	if cfg.Rate <= 0 || cfg.Rate > 1 {
		cfg.Rate = parameter.FocusRate
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = parameter.FocusTolerance
	}
	return &FocusController{
		mode:      cfg.Mode,
		rate:      cfg.Rate,
		tolerance: cfg.Tolerance,
	}
}

// FocusBounds returns the zoom bounds used while a body of the given radius is selected
func FocusBounds(radius float64) (minDistance, maxDistance float64) {
	minDistance = math.Max(parameter.FocusMinDistanceFloor, radius*parameter.FocusMinDistanceFactor)
	maxDistance = radius*parameter.FocusMaxDistanceFactor + parameter.FocusMaxDistancePad
	return minDistance, maxDistance
}

// ViewDistance returns the camera-target distance the glide aims for, clamped to the bounds
func ViewDistance(radius, minDistance, maxDistance float64) float64 {
	d := radius*parameter.FocusViewRadiusFactor + math.Max(parameter.FocusViewPadFloor, radius*parameter.FocusViewPadFactor)
	return math.Max(minDistance, math.Min(d, maxDistance*parameter.FocusViewMaxShare))
}

// State returns the current state
func (f *FocusController) State() State {
	return f.state
}

// Mode returns the interpolation mode
func (f *FocusController) Mode() Mode {
	return f.mode
}

// Subject returns the subject being approached
func (f *FocusController) Subject() (Subject, bool) {
	return f.subject, f.state == Focusing
}

// Focus starts gliding toward s and narrows the zoom bounds
// Selecting the subject already being approached changes nothing
func (f *FocusController) Focus(s Subject, c *Controls) bool {
	if f.state == Focusing && f.subject.Name == s.Name {
		return false
	}
	f.subject = s
	f.state = Focusing
	c.SetBounds(FocusBounds(s.Radius))
	return true
}

// Clear drops focus immediately and restores default bounds
// In Free it is a no-op, so bounds left by a converged glide stay until the next focus
func (f *FocusController) Clear(c *Controls) bool {
	if f.state == Free {
		return false
	}
	f.state = Free
	f.subject = Subject{}
	c.ResetBounds()
	return true
}

// tickRate returns the interpolation fraction for this tick
func (f *FocusController) tickRate(dt float64) float64 {
	if f.mode == ModeTimeScaled {
		if dt <= 0 {
			return 0
		}
		return 1 - math.Pow(1-f.rate, dt*parameter.FocusReferenceFPS)
	}
	return f.rate
}

// Update advances the glide one tick toward subjectPos
// Returns true on the tick the glide converges; the controller is Free afterwards
// and the converged pose stays in c
func (f *FocusController) Update(c *Controls, subjectPos vmath.Vec3F, dt float64) bool {
	if f.state != Focusing {
		return false
	}

	r := f.tickRate(dt)
	c.Target = vmath.V3FLerp(c.Target, subjectPos, r)

	viewDistance := ViewDistance(f.subject.Radius, c.MinDistance, c.MaxDistance)
	offset := vmath.V3FSub(c.Position, c.Target)
	if vmath.V3FMagSq(offset) == 0 {
		offset = vmath.AxisZ
	}
	desired := vmath.V3FAdd(c.Target, vmath.V3FSetLength(offset, viewDistance))
	c.Position = vmath.V3FLerp(c.Position, desired, r)

	if vmath.V3FDist(c.Position, desired) < f.tolerance && vmath.V3FDist(c.Target, subjectPos) < f.tolerance {
		c.Target = subjectPos
		c.Position = desired
		f.state = Free
		f.subject = Subject{}
		return true
	}
	return false
}
