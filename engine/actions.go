package engine

import (
	"errors"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/content"
	"github.com/lixenwraith/orrery/hud"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/parameter"
)

func (e *Explorer) apply(a input.Action) error {
	ctl := e.sim.Controls()

	switch a.Intent {
	case input.IntentEscape:
		// Overlays close first, a second press drops focus
		if e.hud.Overlay() != hud.OverlayNone {
			e.hud.Close()
			return nil
		}
		e.sim.ClearFocus()
	case input.IntentHelp:
		e.hud.ToggleHelp()

	case input.IntentOrbitLeft:
		ctl.Rotate(parameter.OrbitStep, 0)
	case input.IntentOrbitRight:
		ctl.Rotate(-parameter.OrbitStep, 0)
	case input.IntentOrbitUp:
		ctl.Rotate(0, -parameter.OrbitStep)
	case input.IntentOrbitDown:
		ctl.Rotate(0, parameter.OrbitStep)
	case input.IntentPanLeft:
		ctl.Pan(-parameter.PanStep, 0)
	case input.IntentPanRight:
		ctl.Pan(parameter.PanStep, 0)
	case input.IntentPanUp:
		ctl.Pan(0, parameter.PanStep)
	case input.IntentPanDown:
		ctl.Pan(0, -parameter.PanStep)
	case input.IntentZoomIn:
		ctl.Zoom(1 / parameter.ZoomStep)
	case input.IntentZoomOut:
		ctl.Zoom(parameter.ZoomStep)

	case input.IntentPause:
		e.sim.TogglePause()
	case input.IntentSlower:
		e.sim.AdjustSpeed(-1)
	case input.IntentFaster:
		e.sim.AdjustSpeed(1)
	case input.IntentResetNow:
		e.sim.ResetToNow()

	case input.IntentLabels:
		e.sim.ToggleLabels()
	case input.IntentOrbits:
		e.sim.ToggleOrbits()
	case input.IntentConstellations:
		e.sim.ToggleConstellations()

	case input.IntentEquinox:
		e.hud.ShowEvent(content.Equinox, e.time.Now())
	case input.IntentSolstice:
		e.hud.ShowEvent(content.Solstice, e.time.Now())
	case input.IntentArticle:
		e.hud.ShowArticle()
	case input.IntentQuiz:
		e.hud.StartQuiz()
	case input.IntentQuizNext:
		return e.hud.NextQuestion(false)
	case input.IntentQuizSkip:
		return e.hud.NextQuestion(true)

	case input.IntentNumber:
		return e.number(a.Arg)
	}
	return nil
}

// number answers the open quiz, otherwise selects the n-th planet from the sun
func (e *Explorer) number(n int) error {
	if e.hud.Overlay() == hud.OverlayQuiz {
		res, err := e.hud.Answer(n - 1)
		if err != nil {
			return err
		}
		if res.Correct {
			e.player.Play(audio.CueCorrect)
		} else {
			e.player.Play(audio.CueIncorrect)
		}
		return nil
	}

	bodies := e.sim.System().Bodies
	if n < 1 || n > len(bodies) {
		return errNoSuchPlanet
	}
	if _, err := e.sim.Select(bodies[n-1].Name); err != nil {
		return err
	}
	e.player.Play(audio.CueSelect)
	return nil
}

var errNoSuchPlanet = errors.New("no planet at that index")
