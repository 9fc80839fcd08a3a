package tui

import (
	"time"

	"github.com/vovakirdan/giftrun/internal/core"
)

// Control is one held input.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlUp
	ControlDown
	ControlJump
	controlCount
)

// HeldInput turns key presses into held controls.
// Terminals report presses and repeats but never releases, so a control
// counts as held until hold has passed since its last press.
type HeldInput struct {
	hold    time.Duration
	now     time.Time
	pressed [controlCount]time.Time
}

// NewHeldInput creates an input source with the given hold window.
func NewHeldInput(hold time.Duration) *HeldInput {
	return &HeldInput{hold: hold}
}

// Press records a press of c. Pressing a direction releases its opposite.
func (h *HeldInput) Press(c Control, at time.Time) {
	h.pressed[c] = at
	switch c {
	case ControlLeft:
		h.pressed[ControlRight] = time.Time{}
	case ControlRight:
		h.pressed[ControlLeft] = time.Time{}
	case ControlUp:
		h.pressed[ControlDown] = time.Time{}
	case ControlDown:
		h.pressed[ControlUp] = time.Time{}
	}
}

// At sets the time the next poll is evaluated at.
func (h *HeldInput) At(now time.Time) {
	h.now = now
}

// Release drops every held control.
func (h *HeldInput) Release() {
	h.pressed = [controlCount]time.Time{}
}

// Held reports whether c is currently held.
func (h *HeldInput) Held(c Control) bool {
	t := h.pressed[c]
	if t.IsZero() {
		return false
	}
	age := h.now.Sub(t)
	return age >= 0 && age < h.hold
}

// Axis implements core.InputSource.
func (h *HeldInput) Axis() core.Axis {
	var a core.Axis
	if h.Held(ControlLeft) {
		a.X--
	}
	if h.Held(ControlRight) {
		a.X++
	}
	if h.Held(ControlUp) {
		a.Y++
	}
	if h.Held(ControlDown) {
		a.Y--
	}
	return a
}

// JumpPressed implements core.InputSource.
func (h *HeldInput) JumpPressed() bool {
	return h.Held(ControlJump)
}
