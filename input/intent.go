// Package input maps keys to explorer intents
// Both frontends resolve their native key events through a KeyTable so bindings stay in one place
package input

// Intent is a semantic user action
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit
	IntentEscape
	IntentHelp

	// Camera
	IntentOrbitLeft
	IntentOrbitRight
	IntentOrbitUp
	IntentOrbitDown
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentZoomIn
	IntentZoomOut

	// Simulation
	IntentPause
	IntentSlower
	IntentFaster
	IntentResetNow

	// Display toggles
	IntentLabels
	IntentOrbits
	IntentConstellations

	// Learning overlays
	IntentEquinox
	IntentSolstice
	IntentArticle
	IntentQuiz
	IntentQuizNext
	IntentQuizSkip

	// IntentNumber carries a 1-based argument: planet index, or quiz option while a quiz is open
	IntentNumber

	intentCount
)

var intentNames = [intentCount]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentEscape:         "escape",
	IntentHelp:           "help",
	IntentOrbitLeft:      "orbit_left",
	IntentOrbitRight:     "orbit_right",
	IntentOrbitUp:        "orbit_up",
	IntentOrbitDown:      "orbit_down",
	IntentPanLeft:        "pan_left",
	IntentPanRight:       "pan_right",
	IntentPanUp:          "pan_up",
	IntentPanDown:        "pan_down",
	IntentZoomIn:         "zoom_in",
	IntentZoomOut:        "zoom_out",
	IntentPause:          "pause",
	IntentSlower:         "slower",
	IntentFaster:         "faster",
	IntentResetNow:       "reset_now",
	IntentLabels:         "toggle_labels",
	IntentOrbits:         "toggle_orbits",
	IntentConstellations: "toggle_constellations",
	IntentEquinox:        "next_equinox",
	IntentSolstice:       "next_solstice",
	IntentArticle:        "article",
	IntentQuiz:           "quiz",
	IntentQuizNext:       "quiz_next",
	IntentQuizSkip:       "quiz_skip",
	IntentNumber:         "number",
}

func (i Intent) String() string {
	if i < intentCount {
		return intentNames[i]
	}
	return "unknown"
}

// Action is a resolved intent with its numeric argument
type Action struct {
	Intent Intent
	Arg    int
}
