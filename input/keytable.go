package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
// Printable keys are matched by rune, everything else by tcell key code
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'h': ActionLeft, 'a': ActionLeft,
			'j': ActionDown, 's': ActionDown,
			'k': ActionUp, 'w': ActionUp,
			'l': ActionRight, 'd': ActionRight,
			' ': ActionToggle,
			'r': ActionReset,
			'n': ActionStep,
			'p': ActionAutorun,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:  ActionLeft,
			tcell.KeyRight: ActionRight,
			tcell.KeyUp:    ActionUp,
			tcell.KeyDown:  ActionDown,
			tcell.KeyCtrlC: ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for r, a := range kt.Runes {
		c.Runes[r] = a
	}
	for k, a := range kt.Keys {
		c.Keys[k] = a
	}
	return c
}

// Decode maps a terminal event to an action
// Unbound keys and unrelated events decode to ActionNone
func (kt *KeyTable) Decode(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.Keys[ev.Key()]
	case *tcell.EventResize:
		return ActionRedraw
	}
	return ActionNone
}
