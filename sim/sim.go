// Package sim drives one frame of the explorer: focus glide, camera controls, orbital advance,
// and the user commands that change them
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/clock"
	"github.com/lixenwraith/orrery/content"
	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/prefs"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/vmath"
)

// ErrUnknownBody is returned when a command names a body that is not in the system
var ErrUnknownBody = errors.New("unknown body")

// Saver persists preferences after each toggle
type Saver interface {
	Save(p prefs.Preferences) error
}

// Options configures a Sim; zero fields take defaults
type Options struct {
	Catalog  *catalog.Catalog
	Time     clock.TimeProvider
	Focus    camera.FocusConfig
	Prefs    *prefs.Preferences
	Saver    Saver
	Logger   *zerolog.Logger
	Registry *status.Registry
	Rand     *rand.Rand
	Stars    int
}

// Sim owns the system, camera and clock
// Single goroutine; frontends call Step once per frame and commands between frames
type Sim struct {
	catalog  *catalog.Catalog
	system   *orbit.System
	controls *camera.Controls
	focus    *camera.FocusController
	clock    *clock.Clock
	prefs    prefs.Preferences
	saver    Saver
	log      zerolog.Logger
	rng      *rand.Rand

	selected   string
	lowQuality bool
	frames     uint64
	lastDelta  float64

	stars []vmath.Vec3F
	paths map[string][]vmath.Vec3F

	speedCell  *status.Float
	pausedCell *atomic.Bool
	focusCell  *status.Text
	stateCell  *status.Text
}

// New builds the system from the catalog and applies the preferences
func New(opts Options) (*Sim, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}
	if opts.Stars == 0 {
		opts.Stars = parameter.StarCount
	}
	p := prefs.Defaults()
	if opts.Prefs != nil {
		p = *opts.Prefs
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	if err := opts.Catalog.Validate(); err != nil {
		return nil, err
	}
	sys, err := opts.Catalog.Build(opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("build system: %w", err)
	}

	s := &Sim{
		catalog: opts.Catalog,
		system:  sys,
		controls: camera.NewControls(
			vmath.Vec3F{X: parameter.InitialCameraX, Y: parameter.InitialCameraY, Z: parameter.InitialCameraZ},
			vmath.Vec3F{},
		),
		focus:      camera.NewFocusController(opts.Focus),
		clock:      clock.New(opts.Time),
		saver:      opts.Saver,
		log:        log,
		rng:        opts.Rand,
		stars:      scene.DefaultStarField(opts.Rand, opts.Stars),
		paths:      make(map[string][]vmath.Vec3F, len(sys.Bodies)),
		speedCell:  opts.Registry.Floats.Get(status.KeySpeed),
		pausedCell: opts.Registry.Bools.Get(status.KeyPaused),
		focusCell:  opts.Registry.Strings.Get(status.KeyFocus),
		stateCell:  opts.Registry.Strings.Get(status.KeyFocusState),
	}
	for _, b := range sys.Bodies {
		s.paths[b.Name] = orbit.SamplePath(b.Distance, b.Inclination, parameter.OrbitPathSegments)
	}

	if err := s.clock.SetSpeed(p.SimulationSpeed); err != nil {
		return nil, err
	}
	s.clock.SetPaused(p.IsPaused)
	s.prefs = p
	s.publish()
	return s, nil
}

func (s *Sim) publish() {
	s.speedCell.Store(s.clock.Speed())
	s.pausedCell.Store(s.clock.IsPaused())
	if subj, ok := s.focus.Subject(); ok {
		s.focusCell.Store(subj.Name)
	} else {
		s.focusCell.Store(s.selected)
	}
	s.stateCell.Store(s.focus.State().String())
}

// Step runs one frame: focus glide on the current positions, then control clamping,
// then orbital advance
func (s *Sim) Step() Frame {
	tick := s.clock.Tick()
	s.lastDelta = tick.Delta

	if subj, ok := s.focus.Subject(); ok {
		if pos, found := s.system.WorldPosition(subj.Name); found {
			if s.focus.Update(s.controls, pos, tick.Delta) {
				s.log.Debug().Str("body", subj.Name).Msg("focus converged")
			}
		}
	}
	s.controls.Update()
	s.system.Advance(tick)

	s.frames++
	s.publish()
	return s.Frame()
}

// Select shows a body's info and starts focusing on it
// Returns true when focus changed
func (s *Sim) Select(name string) (bool, error) {
	b, ok := s.system.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownBody, name)
	}
	s.selected = name
	changed := s.focus.Focus(camera.Subject{Name: name, Radius: b.Radius}, s.controls)
	if changed {
		s.log.Info().Str("body", name).Msg("focus")
	}
	s.publish()
	return changed, nil
}

// ClearFocus closes the info panel and stops any glide in progress, restoring default zoom bounds
func (s *Sim) ClearFocus() bool {
	had := s.selected != ""
	s.selected = ""
	changed := s.focus.Clear(s.controls)
	if changed {
		s.log.Info().Msg("focus cleared")
	}
	s.publish()
	return changed || had
}

// Pickables returns the planets as ray targets at their current positions
func (s *Sim) Pickables() []scene.Sphere {
	out := make([]scene.Sphere, 0, len(s.system.Bodies))
	for _, b := range s.system.Bodies {
		out = append(out, scene.Sphere{Name: b.Name, Center: b.OrbitPosition(), Radius: b.Radius})
	}
	return out
}

// PickAt selects the planet under grid position (x, y), or clears focus on a miss
func (s *Sim) PickAt(p *scene.Projector, x, y float64) (string, bool) {
	name, hit := p.Pick(x, y, s.Pickables())
	if !hit {
		s.ClearFocus()
		return "", false
	}
	_, _ = s.Select(name)
	return name, true
}

// Selected is the body shown in the info panel, empty when none
func (s *Sim) Selected() string {
	return s.selected
}

// FocusState reports whether the camera is gliding
func (s *Sim) FocusState() camera.State {
	return s.focus.State()
}

// Controls exposes the camera for user navigation
func (s *Sim) Controls() *camera.Controls {
	return s.controls
}

// System exposes the orbital state
func (s *Sim) System() *orbit.System {
	return s.system
}

// Catalog returns the catalog the system was built from
func (s *Sim) Catalog() *catalog.Catalog {
	return s.catalog
}

// Preferences returns the current viewer state
func (s *Sim) Preferences() prefs.Preferences {
	return s.prefs
}

func (s *Sim) save() {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(s.prefs); err != nil {
		s.log.Warn().Err(err).Msg("failed to save preferences")
	}
}

// SetPaused freezes or resumes orbital motion; the camera and labels keep updating
func (s *Sim) SetPaused(paused bool) {
	s.clock.SetPaused(paused)
	s.prefs.IsPaused = paused
	s.publish()
	s.save()
}

// TogglePause flips pause and returns the new state
func (s *Sim) TogglePause() bool {
	s.SetPaused(!s.clock.IsPaused())
	return s.prefs.IsPaused
}

// SetSpeed sets the speed multiplier, clamped to the slider range
func (s *Sim) SetSpeed(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: %g", clock.ErrNegativeSpeed, v)
	}
	v = math.Min(v, parameter.MaxSimulationSpeed)
	if err := s.clock.SetSpeed(v); err != nil {
		return err
	}
	s.prefs.SimulationSpeed = v
	s.log.Debug().Float64("speed", v).Msg("speed")
	s.publish()
	s.save()
	return nil
}

// AdjustSpeed moves the speed by steps slider increments
func (s *Sim) AdjustSpeed(steps int) float64 {
	v := s.clock.Speed() + float64(steps)*parameter.SimulationSpeedStep
	// clamped to [0, max], SetSpeed cannot reject it
	_ = s.SetSpeed(vmath.Clamp(v, 0, parameter.MaxSimulationSpeed))
	return s.clock.Speed()
}

// SetTimeMultiplier sets the time-control multiplier; it is not persisted
func (s *Sim) SetTimeMultiplier(v float64) error {
	return s.clock.SetTimeMultiplier(v)
}

// ToggleLabels flips body labels
func (s *Sim) ToggleLabels() bool {
	s.prefs.ShowLabels = !s.prefs.ShowLabels
	s.save()
	return s.prefs.ShowLabels
}

// ToggleOrbits flips orbit guides
func (s *Sim) ToggleOrbits() bool {
	s.prefs.ShowOrbits = !s.prefs.ShowOrbits
	s.save()
	return s.prefs.ShowOrbits
}

// ToggleConstellations flips constellation figures and their labels
func (s *Sim) ToggleConstellations() bool {
	s.prefs.ConstellationsVisible = !s.prefs.ConstellationsVisible
	s.save()
	return s.prefs.ConstellationsVisible
}

// ResetToNow scatters every body to a fresh random angle
func (s *Sim) ResetToNow() {
	s.system.Scatter(s.rng)
	s.log.Debug().Msg("orbital angles reset")
}

// SetLowQuality switches renderer detail and star density
func (s *Sim) SetLowQuality(low bool) {
	if s.lowQuality != low {
		s.log.Info().Bool("quality", !low).Msg("render quality")
	}
	s.lowQuality = low
}

// LowQuality reports the current detail level
func (s *Sim) LowQuality() bool {
	return s.lowQuality
}

// Rand is the generator used for scatter, quiz order and article picks
func (s *Sim) Rand() *rand.Rand {
	return s.rng
}

// Path returns the sampled orbit guide of a planet
func (s *Sim) Path(name string) ([]vmath.Vec3F, bool) {
	p, ok := s.paths[name]
	return p, ok
}

// Constellations returns the sky figures, nil while hidden
func (s *Sim) Constellations() []content.Constellation {
	if !s.prefs.ConstellationsVisible {
		return nil
	}
	return content.Constellations()
}
