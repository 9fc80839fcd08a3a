package giftrun

import (
	"github.com/vovakirdan/giftrun/internal/core"
)

// Integrate moves an entity by its velocity for dt seconds, resolving
// collisions against solids one axis at a time: x first, then y.
func Integrate(e *Entity, dt float64, solids []core.Rect) {
	e.Rect.X += e.VX * dt
	ResolveX(e, solids)

	e.Rect.Y += e.VY * dt
	e.Grounded = false
	ResolveY(e, solids)
}

// ResolveX pushes the entity out of every overlapping solid along x,
// snapping to the near edge in the direction of travel.
// Solids are visited in slice order.
func ResolveX(e *Entity, solids []core.Rect) {
	dir := core.Sign(e.VX)
	if dir == 0 {
		return
	}
	for _, s := range solids {
		if !e.Rect.Intersects(s) {
			continue
		}
		if dir > 0 {
			e.Rect.X = s.X - e.Rect.W
		} else {
			e.Rect.X = s.Right()
		}
		e.VX = 0
	}
}

// ResolveY pushes the entity out of every overlapping solid along y.
// Moving down lands on top and sets Grounded; moving up stops at the ceiling.
func ResolveY(e *Entity, solids []core.Rect) {
	dir := core.Sign(e.VY)
	if dir == 0 {
		return
	}
	for _, s := range solids {
		if !e.Rect.Intersects(s) {
			continue
		}
		if dir < 0 {
			e.Rect.Y = s.Top()
			e.Grounded = true
		} else {
			e.Rect.Y = s.Y - e.Rect.H
		}
		e.VY = 0
	}
}

// Bounds is the playable world area.
type Bounds struct {
	W, H float64
}

// Clamp keeps the entity within the horizontal world edges, zeroing vx on
// contact. It reports whether the entity has dropped below the world floor.
func (b Bounds) Clamp(e *Entity) (fellOut bool) {
	maxX := b.W - e.Rect.W
	switch {
	case e.Rect.X < 0:
		e.Rect.X = 0
		e.VX = 0
	case e.Rect.X > maxX:
		e.Rect.X = maxX
		e.VX = 0
	}
	return e.Rect.Y < 0
}

// Wrap moves an entity that fell out of the world back to the top.
func (b Bounds) Wrap(e *Entity) {
	e.Rect.Y = b.H
}
