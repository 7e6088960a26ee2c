package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/star-fire/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionFire, t0)

	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{99 * time.Millisecond, true},
		{100 * time.Millisecond, false},
	}
	for _, tt := range tests {
		if got := h.Frame(t0.Add(tt.after)).Has(core.ActionFire); got != tt.held {
			t.Errorf("after %v: held = %v, want %v", tt.after, got, tt.held)
		}
	}

	// Once expired the key stays released.
	if h.Frame(t0.Add(10 * time.Millisecond)).Has(core.ActionFire) {
		t.Error("expired press should be forgotten")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := range 5 {
		h.Press(core.ActionLeft, t0.Add(time.Duration(i)*80*time.Millisecond))
	}
	if !h.Frame(t0.Add(400 * time.Millisecond)).Has(core.ActionLeft) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionFire, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionFire) {
		t.Errorf("frame = %s", f)
	}

	h.Reset()
	if !h.Frame(t0.Add(20 * time.Millisecond)).Empty() {
		t.Error("Reset should release everything")
	}
}

func TestHoldTrackerIgnoresNone(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionNone, time.Now())
	if !h.Frame(time.Now()).Empty() {
		t.Error("ActionNone must not be held")
	}
}
