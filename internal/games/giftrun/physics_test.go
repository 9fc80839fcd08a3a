package giftrun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/giftrun/internal/core"
)

var groundRow = []core.Rect{
	core.NewRect(0, 0, 32, 32),
	core.NewRect(32, 0, 32, 32),
	core.NewRect(64, 0, 32, 32),
}

func actor(x, y float64) *Entity {
	return &Entity{Kind: KindPlayer, Rect: core.NewRect(x, y, 24, 28), Dir: 1}
}

func TestResolveIsIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		e      *Entity
		solids []core.Rect
	}{
		{"resting on ground", actor(4, 32), groundRow},
		{"beside a wall", actor(40, 0), []core.Rect{core.NewRect(64, 0, 32, 32)}},
		{"under a ceiling", actor(4, 36), []core.Rect{core.NewRect(0, 64, 32, 32)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.e.VX, tc.e.VY = 50, -50
			before := tc.e.Rect

			ResolveX(tc.e, tc.solids)
			ResolveY(tc.e, tc.solids)
			assert.Equal(t, before, tc.e.Rect)

			ResolveX(tc.e, tc.solids)
			ResolveY(tc.e, tc.solids)
			assert.Equal(t, before, tc.e.Rect)
		})
	}
}

func TestIntegrateLanding(t *testing.T) {
	e := actor(4, 33)
	e.VY = -100

	Integrate(e, 0.1, groundRow)

	assert.Equal(t, 32.0, e.Rect.Y)
	assert.Equal(t, 0.0, e.VY)
	assert.True(t, e.Grounded)
}

func TestIntegrateCeilingDoesNotGround(t *testing.T) {
	ceiling := []core.Rect{core.NewRect(0, 64, 32, 32)}
	e := actor(4, 30)
	e.VY = 100

	Integrate(e, 0.1, ceiling)

	assert.Equal(t, 36.0, e.Rect.Y)
	assert.Equal(t, 0.0, e.VY)
	assert.False(t, e.Grounded)
}

func TestIntegrateClearsGroundedInAir(t *testing.T) {
	e := actor(4, 100)
	e.Grounded = true
	e.VY = -10

	Integrate(e, 0.1, groundRow)

	assert.False(t, e.Grounded)
	assert.InDelta(t, 99.0, e.Rect.Y, 1e-9)
}

func TestResolveXSnapsToNearEdge(t *testing.T) {
	wall := []core.Rect{core.NewRect(64, 0, 32, 32)}

	right := actor(40, 0)
	right.VX = 100
	Integrate(right, 0.1, wall)
	assert.Equal(t, 40.0, right.Rect.X)
	assert.Equal(t, 0.0, right.VX)

	left := actor(100, 0)
	left.VX = -100
	Integrate(left, 0.1, wall)
	assert.Equal(t, 96.0, left.Rect.X)
	assert.Equal(t, 0.0, left.VX)
}

func TestResolveXMultipleSolidsDeterministic(t *testing.T) {
	column := []core.Rect{
		core.NewRect(64, 0, 32, 32),
		core.NewRect(64, 32, 32, 32),
	}
	reversed := []core.Rect{column[1], column[0]}

	for _, solids := range [][]core.Rect{column, reversed} {
		e := actor(45, 20)
		e.VX = 100
		ResolveX(e, solids)
		assert.Equal(t, 40.0, e.Rect.X)
		assert.Equal(t, 0.0, e.VX)
	}
}

func TestResolveXIgnoresStationary(t *testing.T) {
	e := actor(50, 0)
	ResolveX(e, []core.Rect{core.NewRect(64, 0, 32, 32)})
	assert.Equal(t, 50.0, e.Rect.X, "no direction means no snap")
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{W: 800, H: 480}

	left := actor(-5, 40)
	left.VX = -10
	assert.False(t, b.Clamp(left))
	assert.Equal(t, 0.0, left.Rect.X)
	assert.Equal(t, 0.0, left.VX)

	right := actor(790, 40)
	right.VX = 10
	assert.False(t, b.Clamp(right))
	assert.Equal(t, 776.0, right.Rect.X)
	assert.Equal(t, 0.0, right.VX)

	below := actor(100, -1)
	assert.True(t, b.Clamp(below))

	b.Wrap(below)
	assert.Equal(t, 480.0, below.Rect.Y)
}
