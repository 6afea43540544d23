package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps runes and special keys to intents
// Shifted special keys are looked up in ShiftKeys first
type KeyTable struct {
	Runes     map[rune]Intent
	Keys      map[tcell.Key]Intent
	ShiftKeys map[tcell.Key]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'?': IntentHelp,
			'l': IntentLabels,
			'o': IntentOrbits,
			'c': IntentConstellations,
			'+': IntentZoomIn,
			'=': IntentZoomIn,
			'-': IntentZoomOut,
			' ': IntentPause,
			'[': IntentSlower,
			']': IntentFaster,
			't': IntentResetNow,
			'e': IntentEquinox,
			'E': IntentSolstice,
			'a': IntentArticle,
			'z': IntentQuiz,
			'n': IntentQuizNext,
			's': IntentQuizSkip,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentEscape,
			tcell.KeyLeft:   IntentOrbitLeft,
			tcell.KeyRight:  IntentOrbitRight,
			tcell.KeyUp:     IntentOrbitUp,
			tcell.KeyDown:   IntentOrbitDown,
			tcell.KeyPgUp:   IntentZoomIn,
			tcell.KeyPgDn:   IntentZoomOut,
			tcell.KeyEnter:  IntentQuizNext,
		},
		ShiftKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:  IntentPanLeft,
			tcell.KeyRight: IntentPanRight,
			tcell.KeyUp:    IntentPanUp,
			tcell.KeyDown:  IntentPanDown,
		},
	}
}

// Rune resolves a printable key
// Digits 1-9 resolve to IntentNumber unless explicitly rebound
func (t *KeyTable) Rune(r rune) Action {
	if in, ok := t.Runes[r]; ok {
		return Action{Intent: in}
	}
	if r >= '1' && r <= '9' {
		return Action{Intent: IntentNumber, Arg: int(r - '0')}
	}
	return Action{}
}

// Key resolves a special key with modifiers
func (t *KeyTable) Key(k tcell.Key, shift bool) Action {
	if shift {
		if in, ok := t.ShiftKeys[k]; ok {
			return Action{Intent: in}
		}
	}
	if in, ok := t.Keys[k]; ok {
		return Action{Intent: in}
	}
	return Action{}
}

// Event resolves a tcell key event
func (t *KeyTable) Event(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return t.Rune(ev.Rune())
	}
	return t.Key(ev.Key(), ev.Modifiers()&tcell.ModShift != 0)
}
