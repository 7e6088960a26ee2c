package tui

import (
	"time"

	"github.com/vovakirdan/star-fire/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases, so a held
// key is one that keeps repeating inside this window.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker synthesizes held intents from key presses.
type HoldTracker struct {
	window    time.Duration
	lastPress map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:    window,
		lastPress: make(map[core.Action]time.Time),
	}
}

// Press records a key press at time t. Pressing one direction releases the
// other one at once.
func (h *HoldTracker) Press(a core.Action, t time.Time) {
	if a == core.ActionNone {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.lastPress, core.ActionRight)
	case core.ActionRight:
		delete(h.lastPress, core.ActionLeft)
	}
	h.lastPress[a] = t
}

// Frame returns the intents held at time t and forgets expired ones.
func (h *HoldTracker) Frame(t time.Time) core.InputFrame {
	var f core.InputFrame
	for a, pressed := range h.lastPress {
		if t.Sub(pressed) < h.window {
			f.Set(a)
		} else {
			delete(h.lastPress, a)
		}
	}
	return f
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.lastPress)
}
