package core

// Axis is a two-axis digital input state. Each component is -1, 0 or 1.
// Y is positive upward, matching world space.
type Axis struct {
	X, Y int
}

// InputSource is polled by the simulation once per step.
// Implementations return snapshots of the currently held controls.
type InputSource interface {
	Axis() Axis
	JumpPressed() bool
}

// StaticInput is an InputSource with fixed values.
// Used by tests and scripted runs.
type StaticInput struct {
	Dir  Axis
	Jump bool
}

// Axis returns the fixed axis state.
func (s StaticInput) Axis() Axis {
	return s.Dir
}

// JumpPressed returns the fixed jump state.
func (s StaticInput) JumpPressed() bool {
	return s.Jump
}

// NoInput is an InputSource with nothing held.
var NoInput InputSource = StaticInput{}
