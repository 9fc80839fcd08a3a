package giftrun

import "time"

// Clock turns wall-clock frame times into simulation deltas.
// Deltas are clamped to a maximum so a stalled host slows the game
// down instead of taking one huge step.
type Clock struct {
	maxDelta float64
	last     time.Time
	running  bool
}

// NewClock creates a stopped clock.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Start runs the clock from now.
func (c *Clock) Start(now time.Time) {
	c.last = now
	c.running = true
}

// Stop halts the clock. Tick reports nothing until Start is called again.
func (c *Clock) Stop() {
	c.running = false
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Tick returns the seconds elapsed since the previous tick, clamped to
// [0, maxDelta]. ok is false while the clock is stopped.
func (c *Clock) Tick(now time.Time) (dt float64, ok bool) {
	if !c.running {
		return 0, false
	}
	dt = now.Sub(c.last).Seconds()
	c.last = now
	switch {
	case dt < 0:
		dt = 0
	case dt > c.maxDelta:
		dt = c.maxDelta
	}
	return dt, true
}
