package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys awkward to write as bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named non-printable keys accepted in config
var specialKeyNames = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// LoadKeyConfig resolves key name → action name bindings into a sparse override KeyTable
// Returns error on unknown action or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for keyStr, actionName := range bindings {
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = a
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		kt.Runes[r] = a
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character or key name)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}

	return result
}
