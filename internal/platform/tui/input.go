package tui

import "github.com/ogawakh/game-test/internal/core"

// HoldLatch turns key press events into held movement.
//
// Terminals report presses and auto-repeats but never releases, so a
// direction stays active for a short window after its last press event.
// Pressing the opposite direction cancels it at once. Only movement is
// latched; fire remains one action per key event.
type HoldLatch struct {
	window int
	left   int // Ticks of left movement remaining
	right  int // Ticks of right movement remaining
}

// HoldWindow returns a latch window of about a sixth of a second, long
// enough to bridge the gap between key auto-repeat events.
func HoldWindow(tickRate int) int {
	return core.Max(tickRate/6, 1)
}

// NewHoldLatch creates a latch that holds a direction for window ticks.
func NewHoldLatch(window int) *HoldLatch {
	return &HoldLatch{window: core.Max(window, 1)}
}

// Press registers a key event. Actions other than Left and Right are ignored.
func (h *HoldLatch) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.window
		h.right = 0
	case core.ActionRight:
		h.right = h.window
		h.left = 0
	}
}

// Apply adds the held directions to frame and consumes one tick of the
// window.
func (h *HoldLatch) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Held reports which directions are currently latched.
func (h *HoldLatch) Held() (left, right bool) {
	return h.left > 0, h.right > 0
}

// Reset releases both directions.
func (h *HoldLatch) Reset() {
	h.left, h.right = 0, 0
}
