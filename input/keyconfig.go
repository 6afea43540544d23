package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownBinding is returned for key or action names that do not resolve
var ErrUnknownBinding = errors.New("unknown binding")

// Rune aliases for keys that cannot be bare single-char config keys
var runeAliases = map[string]rune{
	"space":   ' ',
	"plus":    '+',
	"minus":   '-',
	"lbrack":  '[',
	"rbrack":  ']',
	"qmark":   '?',
	"equals":  '=',
	"percent": '%',
}

var keyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"pgup":   tcell.KeyPgUp,
	"pgdn":   tcell.KeyPgDn,
	"ctrl+c": tcell.KeyCtrlC,
}

// ParseIntent resolves a canonical action name such as "toggle_orbits"
func ParseIntent(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range intentNames {
		if n == name {
			return Intent(i), nil
		}
	}
	return IntentNone, fmt.Errorf("%w: action %q", ErrUnknownBinding, name)
}

// Bind applies key-name to action-name overrides onto the table
// Binding "none" removes the key; "number" is reserved for digits and rejected
func (t *KeyTable) Bind(bindings map[string]string) error {
	for key, action := range bindings {
		in, err := ParseIntent(action)
		if err != nil {
			return err
		}
		if in == IntentNumber {
			return fmt.Errorf("%w: %q cannot be bound", ErrUnknownBinding, action)
		}
		if err := t.bindOne(strings.ToLower(strings.TrimSpace(key)), key, in); err != nil {
			return err
		}
	}
	return nil
}

func (t *KeyTable) bindOne(lower, raw string, in Intent) error {
	if name, ok := strings.CutPrefix(lower, "shift+"); ok {
		if k, found := keyNames[name]; found {
			setOrDelete(t.ShiftKeys, k, in)
			return nil
		}
		// Config keys arrive lowercased, so uppercase letters are spelled shift+<letter>
		if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
			setOrDelete(t.Runes, rune(name[0]-'a'+'A'), in)
			return nil
		}
		return fmt.Errorf("%w: key %q", ErrUnknownBinding, raw)
	}
	if k, ok := keyNames[lower]; ok {
		setOrDelete(t.Keys, k, in)
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		setOrDelete(t.Runes, r, in)
		return nil
	}
	// Single characters keep their case so 'e' and 'E' stay distinct
	key := strings.TrimSpace(raw)
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		setOrDelete(t.Runes, r, in)
		return nil
	}
	return fmt.Errorf("%w: key %q", ErrUnknownBinding, raw)
}

func setOrDelete[K comparable](m map[K]Intent, k K, in Intent) {
	if in == IntentNone {
		delete(m, k)
		return
	}
	m[k] = in
}
