package tui

import (
	"testing"

	"github.com/ogawakh/game-test/internal/core"
)

func applyLatch(h *HoldLatch) core.InputFrame {
	frame := core.NewInputFrame()
	h.Apply(&frame)
	return frame
}

func TestHoldWindow(t *testing.T) {
	tests := []struct {
		tickRate int
		expected int
	}{
		{60, 10},
		{30, 5},
		{6, 1},
		{1, 1},
		{0, 1},
	}

	for _, tc := range tests {
		if got := HoldWindow(tc.tickRate); got != tc.expected {
			t.Errorf("HoldWindow(%d) = %d, expected %d", tc.tickRate, got, tc.expected)
		}
	}
}

func TestHoldLatchHoldsForWindow(t *testing.T) {
	h := NewHoldLatch(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		if frame := applyLatch(h); !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}
	if frame := applyLatch(h); frame.Has(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHoldLatchRepeatExtends(t *testing.T) {
	h := NewHoldLatch(3)
	h.Press(core.ActionRight)
	applyLatch(h)
	applyLatch(h)

	// Key auto-repeat arrives before the window ends
	h.Press(core.ActionRight)
	for i := 0; i < 3; i++ {
		if frame := applyLatch(h); !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d after repeat: right should be held", i)
		}
	}
}

func TestHoldLatchOppositeCancels(t *testing.T) {
	h := NewHoldLatch(5)
	h.Press(core.ActionLeft)
	applyLatch(h)
	h.Press(core.ActionRight)

	frame := applyLatch(h)
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should cancel left")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}

	left, right := h.Held()
	if left || !right {
		t.Errorf("Held() = %v, %v, expected false, true", left, right)
	}
}

func TestHoldLatchIgnoresOtherActions(t *testing.T) {
	h := NewHoldLatch(5)
	h.Press(core.ActionFire)
	h.Press(core.ActionPause)

	if frame := applyLatch(h); !frame.Empty() {
		t.Errorf("frame = %v, expected no latched actions", frame)
	}
}

func TestHoldLatchReset(t *testing.T) {
	h := NewHoldLatch(5)
	h.Press(core.ActionLeft)
	h.Reset()

	if left, right := h.Held(); left || right {
		t.Error("Reset() should release both directions")
	}
}
