package game

// State is the control loop run state
type State uint8

const (
	StateIdle    State = iota // Blocks for one action per iteration
	StateAutorun              // Polls input and steps once per tick
	StateStopped              // Terminal; Run returns
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAutorun:
		return "Autorun"
	case StateStopped:
		return "Stopped"
	}
	return "Unknown"
}

var validTransitions = map[State][]State{
	StateIdle:    {StateAutorun, StateStopped},
	StateAutorun: {StateIdle, StateStopped},
}

// CanTransition reports whether the state machine allows from -> to
func (s State) CanTransition(to State) bool {
	for _, t := range validTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}
