// Package engine wires configuration, simulation, overlays, audio and frame-rate monitoring
// into one context that both frontends drive
package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/clock"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/hud"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/logging"
	"github.com/lixenwraith/orrery/prefs"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/status"
)

// Options overrides collaborators that are otherwise built from the config
type Options struct {
	Time   clock.TimeProvider
	Player audio.Player
	Logger *zerolog.Logger
}

// Explorer is the frontend-independent application context
// Not safe for concurrent use; frontends call it from their frame loop only
type Explorer struct {
	cfg      *config.Config
	log      zerolog.Logger
	time     clock.TimeProvider
	sim      *sim.Sim
	hud      *hud.HUD
	keys     *input.KeyTable
	player   audio.Player
	perf     *status.PerfMonitor
	registry *status.Registry
	closers  []io.Closer
}

// New builds the explorer from a loaded config
func New(cfg *config.Config, opts Options) (*Explorer, error) {
	e := &Explorer{
		cfg:      cfg,
		time:     opts.Time,
		registry: status.NewRegistry(),
	}
	if e.time == nil {
		e.time = clock.NewMonotonicTimeProvider()
	}

	if opts.Logger != nil {
		e.log = *opts.Logger
	} else {
		log, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		e.log = log
		e.closers = append(e.closers, closer)
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		loaded, err := catalog.Load(cfg.Catalog)
		if err != nil {
			e.Close()
			return nil, err
		}
		cat = loaded
	}

	e.keys = input.DefaultKeyTable()
	if err := e.keys.Bind(cfg.Keys); err != nil {
		e.Close()
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	store, p := e.loadPrefs()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	simOpts := sim.Options{
		Catalog: cat,
		Time:    e.time,
		Focus: camera.FocusConfig{
			Mode:      cfg.Focus.Mode,
			Rate:      cfg.Focus.Rate,
			Tolerance: cfg.Focus.Tolerance,
		},
		Prefs:    &p,
		Logger:   &e.log,
		Registry: e.registry,
		Rand:     rng,
		Stars:    cfg.View.Stars,
	}
	// A nil *prefs.Store must not become a non-nil Saver
	if store != nil {
		simOpts.Saver = store
	}
	s, err := sim.New(simOpts)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.sim = s
	e.sim.SetLowQuality(cfg.View.LowDetail)
	e.hud = hud.New(rng)
	e.perf = status.NewPerfMonitor(e.registry)

	e.player = opts.Player
	if e.player == nil {
		e.player = e.openAudio()
	}

	e.log.Info().
		Uint64("seed", seed).
		Int("bodies", len(s.System().Bodies)).
		Str("focus_mode", cfg.Focus.Mode.String()).
		Msg("explorer ready")
	return e, nil
}

func (e *Explorer) loadPrefs() (*prefs.Store, prefs.Preferences) {
	path := e.cfg.PrefsFile
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			e.log.Warn().Err(err).Msg("preferences will not persist")
			return nil, prefs.Defaults()
		}
		path = p
	}
	store := prefs.NewStore(path)
	p, err := store.Load()
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("using default preferences")
	}
	return store, p
}

func (e *Explorer) openAudio() audio.Player {
	if !e.cfg.Audio.Enabled {
		return audio.Nop{}
	}
	p := audio.NewBeepPlayer(e.cfg.Audio.Volume)
	if err := p.Init(); err != nil {
		e.log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		return audio.Nop{}
	}
	return p
}

// Close releases audio and the log sink
func (e *Explorer) Close() {
	if e.player != nil {
		e.player.Close()
	}
	for _, c := range e.closers {
		_ = c.Close()
	}
	e.closers = nil
}

// Sim returns the simulation
func (e *Explorer) Sim() *sim.Sim { return e.sim }

// HUD returns the overlay state
func (e *Explorer) HUD() *hud.HUD { return e.hud }

// Keys returns the active key table
func (e *Explorer) Keys() *input.KeyTable { return e.keys }

// Registry returns the metrics registry
func (e *Explorer) Registry() *status.Registry { return e.registry }

// Logger returns the explorer logger
func (e *Explorer) Logger() *zerolog.Logger { return &e.log }

// Config returns the configuration the explorer was built from
func (e *Explorer) Config() *config.Config { return e.cfg }

// Perf returns the frame-rate monitor
func (e *Explorer) Perf() *status.PerfMonitor { return e.perf }

// Time returns the wall-clock source
func (e *Explorer) Time() clock.TimeProvider { return e.time }

// Step advances one frame and feeds the frame-rate monitor
// A forced low-detail config keeps quality low regardless of measured FPS
func (e *Explorer) Step() sim.Frame {
	fr := e.sim.Step()
	switch e.perf.Frame(e.time.Now()) {
	case status.QualityLowered:
		e.log.Info().Float64("fps", e.perf.FPS()).Msg("frame rate low, reducing detail")
		e.sim.SetLowQuality(true)
	case status.QualityRestored:
		if !e.cfg.View.LowDetail {
			e.log.Info().Float64("fps", e.perf.FPS()).Msg("frame rate recovered, restoring detail")
			e.sim.SetLowQuality(false)
		}
	}
	return fr
}

// FPS is the rate measured over the last completed window
func (e *Explorer) FPS() float64 {
	return e.perf.FPS()
}

// Click picks the planet under a grid position; a miss clears focus
func (e *Explorer) Click(p *scene.Projector, x, y float64) (string, bool) {
	if p == nil {
		return "", false
	}
	name, hit := e.sim.PickAt(p, x, y)
	if hit {
		e.player.Play(audio.CueSelect)
	}
	return name, hit
}

// Drag orbits the camera by a pointer movement in grid units
func (e *Explorer) Drag(dx, dy, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	// A full-width drag is one turn around the target
	e.sim.Controls().Rotate(-dx/width*2*math.Pi, -dy/height*math.Pi)
}

// Do applies an action; it returns true when the user asked to quit
func (e *Explorer) Do(a input.Action) bool {
	if a.Intent == input.IntentQuit {
		e.log.Info().Msg("quit")
		return true
	}
	if err := e.apply(a); err != nil && !isBenign(err) {
		e.log.Debug().Err(err).Str("intent", a.Intent.String()).Msg("action ignored")
	}
	return false
}

func isBenign(err error) bool {
	return errors.Is(err, hud.ErrQuizClosed)
}
