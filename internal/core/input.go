package core

import "strings"

// Action is a semantic input, decoupled from the physical key that caused it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Move left while held
	ActionRight          // Move right while held
	ActionFire           // One shot per key event
	ActionConfirm        // Menu selection
	ActionBack           // Leave a paused or finished game
	ActionRestart        // New game after game over
	ActionQuit           // End the program or SSH session
	ActionPause          // Toggle pause
	numActions
)

var actionNames = [numActions]string{
	"None", "Left", "Right", "Fire", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions collected for one simulation tick.
// The zero value is an empty frame, and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= numActions {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < numActions && f.bits&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < numActions; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String lists the triggered actions, e.g. "Left+Fire".
func (f InputFrame) String() string {
	acts := f.Actions()
	if len(acts) == 0 {
		return "None"
	}
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
