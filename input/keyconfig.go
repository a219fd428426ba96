package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames are the non-rune keys accepted in the [keys] table
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+r":    tcell.KeyCtrlR,
}

// WithBindings returns base overridden by a key name to action name table
// The "none" action unbinds a key
// Returns error on unknown action or key names
func WithBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	result := base.Clone()

	for keyStr, actionName := range bindings {
		action, ok := ActionByName(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("[keys] key %q: unknown action: %q", keyStr, actionName)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			if action == ActionNone {
				delete(result.SpecialKeys, k)
			} else {
				result.SpecialKeys[k] = action
			}
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		if action == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = action
		}
	}

	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character, alias or key name)", s)
}
