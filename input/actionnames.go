package input

import "strings"

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve config action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"left":    ActionLeft,
	"right":   ActionRight,
	"up":      ActionUp,
	"down":    ActionDown,
	"toggle":  ActionToggle,
	"reset":   ActionReset,
	"step":    ActionStep,
	"autorun": ActionAutorun,
	"quit":    ActionQuit,
}

var actionNames map[Action]string

func init() {
	actionNames = make(map[Action]string, len(actionRegistry)+1)
	for name, a := range actionRegistry {
		actionNames[a] = name
	}
	actionNames[ActionRedraw] = "redraw"
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
