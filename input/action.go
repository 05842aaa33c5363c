package input

// Action is a decoded user command consumed by the control loop
type Action uint8

const (
	ActionNone Action = iota

	// Cursor motion
	ActionLeft
	ActionRight
	ActionUp
	ActionDown

	// Grid edits
	ActionToggle
	ActionReset
	ActionStep

	// Loop control
	ActionAutorun
	ActionQuit
	ActionRedraw // Terminal resize, frame must be redrawn
)

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
