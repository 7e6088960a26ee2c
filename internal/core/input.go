package core

import "strings"

// Action is a semantic input intent, decoupled from the physical key.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // W, Up arrow, Space - fire projectile
	ActionDash           // S, Down arrow - dash in the held direction
	ActionConfirm        // Enter - start from the menu
	ActionRestart        // R - back to the menu after game over
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionDash:
		return "Dash"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of intents held during one tick.
// It is a value type; copies never alias.
type InputFrame struct {
	bits uint16
}

// NewInputFrame builds a frame with the given actions held.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action is held in this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// With returns a copy of the frame with the action held.
func (f InputFrame) With(a Action) InputFrame {
	f.Set(a)
	return f
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Direction folds the horizontal intents into -1, 0 or +1.
// Holding both directions cancels out.
func (f InputFrame) Direction() int {
	dir := 0
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

// String lists the held actions, e.g. "Left+Fire".
func (f InputFrame) String() string {
	if f.Empty() {
		return "None"
	}
	var parts []string
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, "+")
}

// EdgeDetector turns held intents into one-shot presses.
// An action fires only on the tick it goes from released to held.
type EdgeDetector struct {
	prev InputFrame
}

// Pressed returns the actions that became held in this frame and remembers
// the frame for the next call.
func (d *EdgeDetector) Pressed(in InputFrame) InputFrame {
	edges := InputFrame{bits: in.bits &^ d.prev.bits}
	d.prev = in
	return edges
}

// Reset forgets the previous frame.
func (d *EdgeDetector) Reset() {
	d.prev = InputFrame{}
}
