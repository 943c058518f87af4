package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit
	ActionPause          // P - accepted from input, ignored by the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the drained, ordered list of actions for one simulation tick.
type InputFrame struct {
	Events []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(events ...Action) InputFrame {
	return InputFrame{Events: events}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e == a {
			return true
		}
	}
	return false
}

// Count returns how many times the action occurred this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, e := range f.Events {
		if e == a {
			n++
		}
	}
	return n
}

// Clear resets all actions for the next frame, keeping the allocation.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Events: append([]Action(nil), f.Events...)}
}
