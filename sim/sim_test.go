package sim

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/clock"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/prefs"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/vmath"
)

const frame = 16 * time.Millisecond

type recordingSaver struct {
	saved []prefs.Preferences
	err   error
}

func (r *recordingSaver) Save(p prefs.Preferences) error {
	r.saved = append(r.saved, p)
	return r.err
}

type fixture struct {
	sim   *Sim
	time  *clock.MockTimeProvider
	saver *recordingSaver
	reg   *status.Registry
}

func newFixture(t *testing.T, p *prefs.Preferences) fixture {
	t.Helper()
	mt := clock.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	saver := &recordingSaver{}
	reg := status.NewRegistry()
	s, err := New(Options{
		Time:     mt,
		Prefs:    p,
		Saver:    saver,
		Registry: reg,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	return fixture{sim: s, time: mt, saver: saver, reg: reg}
}

func (f fixture) step(n int) Frame {
	var fr Frame
	for range n {
		f.time.Advance(frame)
		fr = f.sim.Step()
	}
	return fr
}

func bodyAngle(t *testing.T, s *Sim, name string) float64 {
	t.Helper()
	b, ok := s.System().Lookup(name)
	require.True(t, ok)
	return b.Angle
}

func TestNew_AppliesPreferences(t *testing.T) {
	p := prefs.Preferences{SimulationSpeed: 2, IsPaused: true, ShowLabels: true}
	f := newFixture(t, &p)

	fr := f.sim.Frame()
	assert.True(t, fr.Paused)
	assert.Equal(t, 2.0, fr.Speed)
	assert.Equal(t, p, fr.Prefs)
	assert.Len(t, fr.Bodies, 9)
	assert.Equal(t, 5.0, fr.SunRadius)
	assert.Len(t, fr.Stars, 1000)
	assert.True(t, f.reg.Bools.Get(status.KeyPaused).Load())
}

func TestNew_RejectsInvalidCatalog(t *testing.T) {
	c := catalog.Default()
	c.Bodies[3].OrbitalPeriod = 0
	_, err := New(Options{Catalog: c})
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestStep_AdvancesWithDelta(t *testing.T) {
	f := newFixture(t, nil)
	before := bodyAngle(t, f.sim, "Earth")

	fr := f.step(1)
	assert.InDelta(t, 0.016, fr.Delta, 1e-9)
	assert.InDelta(t, before+0.2*0.016, bodyAngle(t, f.sim, "Earth"), 1e-12)
	assert.InDelta(t, 0.001, fr.SunRotation, 1e-12)
	assert.Equal(t, uint64(1), fr.Number)
}

func TestStep_PausedFreezesOrbits(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.SetPaused(true)
	before := bodyAngle(t, f.sim, "Mars")

	f.step(30)
	assert.Equal(t, before, bodyAngle(t, f.sim, "Mars"))

	// Long pause must not produce a jump on resume
	f.time.Advance(10 * time.Second)
	f.sim.SetPaused(false)
	fr := f.step(1)
	assert.InDelta(t, 0.016, fr.Delta, 1e-9)
}

func TestSelect_ConvergesWhilePaused(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.SetPaused(true)

	changed, err := f.sim.Select("Earth")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, camera.Focusing, f.sim.FocusState())
	c := f.sim.Controls()
	assert.InDelta(t, 1.2, c.MinDistance, 1e-12)
	assert.InDelta(t, 33, c.MaxDistance, 1e-12)
	assert.Equal(t, "Earth", f.reg.Strings.Get(status.KeyFocus).Load())

	earth, _ := f.sim.System().WorldPosition("Earth")
	converged := false
	for range 1000 {
		f.step(1)
		if f.sim.FocusState() == camera.Free {
			converged = true
			break
		}
	}
	require.True(t, converged)
	assert.Equal(t, earth, c.Target)
	assert.InDelta(t, 12.5, c.Distance(), parameter.FocusTolerance)
	assert.Equal(t, "Earth", f.sim.Selected(), "info panel stays open")
	assert.InDelta(t, 33, c.MaxDistance, 1e-12, "bounds stay narrowed")
}

func TestSelect_FollowsMovingBody(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.sim.Select("Jupiter")
	require.NoError(t, err)

	f.step(300)
	jupiter, _ := f.sim.System().WorldPosition("Jupiter")
	assert.Less(t, vmath.V3FDist(f.sim.Controls().Target, jupiter), 2.0)
}

func TestSelect_SameBodyTwice(t *testing.T) {
	f := newFixture(t, nil)
	changed, err := f.sim.Select("Mars")
	require.NoError(t, err)
	require.True(t, changed)

	f.step(3)
	changed, err = f.sim.Select("Mars")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSelect_Unknown(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.sim.Select("Pluto")
	assert.ErrorIs(t, err, ErrUnknownBody)
	assert.Equal(t, camera.Free, f.sim.FocusState())
}

func TestClearFocus_RestoresBounds(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.sim.Select("Saturn")
	require.NoError(t, err)
	f.step(5)

	assert.True(t, f.sim.ClearFocus())
	c := f.sim.Controls()
	assert.Equal(t, camera.Free, f.sim.FocusState())
	assert.Equal(t, 5.0, c.MinDistance)
	assert.Equal(t, 300.0, c.MaxDistance)
	assert.Empty(t, f.sim.Selected())

	assert.False(t, f.sim.ClearFocus(), "second clear is a no-op")
}

func TestClearFocus_AfterConvergenceKeepsBounds(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.SetPaused(true)
	_, err := f.sim.Select("Earth")
	require.NoError(t, err)
	for f.sim.FocusState() == camera.Focusing {
		f.step(1)
	}

	assert.True(t, f.sim.ClearFocus(), "info panel closes")
	assert.Empty(t, f.sim.Selected())
	c := f.sim.Controls()
	assert.InDelta(t, 1.2, c.MinDistance, 1e-12)
	assert.InDelta(t, 33, c.MaxDistance, 1e-12)
	assert.False(t, f.sim.ClearFocus())
}

func TestPickAt(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.SetPaused(true)
	_, err := f.sim.Select("Neptune")
	require.NoError(t, err)
	for f.sim.FocusState() == camera.Focusing {
		f.step(1)
	}
	f.sim.ClearFocus()

	p := scene.NewProjector(f.sim.Frame().Camera, 80, 24, 2, 75)
	name, hit := f.sim.PickAt(p, 40, 12)
	require.True(t, hit)
	assert.Equal(t, "Neptune", name)
	assert.Equal(t, camera.Focusing, f.sim.FocusState())

	away := scene.NewProjector(camera.Pose{
		Position: vmath.Vec3F{Y: 500},
		Target:   vmath.Vec3F{Y: 1000},
	}, 80, 24, 2, 75)
	_, hit = f.sim.PickAt(away, 40, 12)
	assert.False(t, hit)
	assert.Equal(t, camera.Free, f.sim.FocusState())
	assert.Equal(t, 300.0, f.sim.Controls().MaxDistance)
}

func TestToggles_Persist(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.sim.ToggleLabels())
	assert.False(t, f.sim.ToggleOrbits())
	assert.True(t, f.sim.ToggleConstellations())
	assert.True(t, f.sim.TogglePause())

	require.Len(t, f.saver.saved, 4)
	last := f.saver.saved[3]
	assert.False(t, last.ShowLabels)
	assert.False(t, last.ShowOrbits)
	assert.True(t, last.ConstellationsVisible)
	assert.True(t, last.IsPaused)
	assert.Len(t, f.sim.Constellations(), 5)
}

func TestToggles_SaveErrorIsNotFatal(t *testing.T) {
	f := newFixture(t, nil)
	f.saver.err = errors.New("disk full")
	assert.False(t, f.sim.ToggleLabels())
	assert.False(t, f.sim.Preferences().ShowLabels)
}

func TestSpeed(t *testing.T) {
	f := newFixture(t, nil)

	assert.ErrorIs(t, f.sim.SetSpeed(-1), clock.ErrNegativeSpeed)
	require.NoError(t, f.sim.SetSpeed(50))
	assert.Equal(t, 10.0, f.sim.Preferences().SimulationSpeed)

	assert.Equal(t, 9.5, f.sim.AdjustSpeed(-1))
	require.NoError(t, f.sim.SetSpeed(0.25))
	assert.Equal(t, 0.0, f.sim.AdjustSpeed(-1))
	assert.InDelta(t, 0.0, f.reg.Floats.Get(status.KeySpeed).Load(), 1e-12)

	require.NoError(t, f.sim.SetSpeed(3))
	before := bodyAngle(t, f.sim, "Earth")
	f.step(1)
	assert.InDelta(t, before+0.2*3*0.016, bodyAngle(t, f.sim, "Earth"), 1e-12)
}

func TestTimeMultiplier(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.sim.SetTimeMultiplier(4))
	before := bodyAngle(t, f.sim, "Earth")
	f.step(1)
	assert.InDelta(t, before+0.2*4*0.016, bodyAngle(t, f.sim, "Earth"), 1e-12)
	assert.Error(t, f.sim.SetTimeMultiplier(-2))
}

func TestResetToNow(t *testing.T) {
	f := newFixture(t, nil)
	before := bodyAngle(t, f.sim, "Venus")
	f.sim.ResetToNow()
	after := bodyAngle(t, f.sim, "Venus")
	assert.NotEqual(t, before, after)
	assert.GreaterOrEqual(t, after, 0.0)
	assert.Less(t, after, vmath.TwoPi)
}

func TestLowQuality(t *testing.T) {
	f := newFixture(t, nil)
	f.sim.SetLowQuality(true)
	assert.Len(t, f.sim.Frame().Stars, 250)
	f.sim.SetLowQuality(false)
	assert.Len(t, f.sim.Frame().Stars, 1000)
}

func TestPath(t *testing.T) {
	f := newFixture(t, nil)
	p, ok := f.sim.Path("Uranus")
	require.True(t, ok)
	assert.Len(t, p, 128)
	assert.InDelta(t, 58, vmath.V3FMag(p[0]), 1e-9)

	_, ok = f.sim.Path("Moon")
	assert.False(t, ok)
}
