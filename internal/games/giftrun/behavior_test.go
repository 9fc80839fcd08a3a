package giftrun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

func input(x, y int, jump bool) core.StaticInput {
	return core.StaticInput{Dir: core.Axis{X: x, Y: y}, Jump: jump}
}

func TestControllerPlayerWalking(t *testing.T) {
	c := NewController(config.DefaultConfig())

	tests := []struct {
		name    string
		in      core.StaticInput
		wantVX  float64
		wantDir int
	}{
		{"right", input(1, 0, false), 200, 1},
		{"left", input(-1, 0, false), -200, -1},
		{"idle keeps facing", input(0, 0, false), 0, -1},
	}

	p := actor(100, 32)
	p.Grounded = true
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.Player(p, tc.in, nil, 0.1)
			assert.Equal(t, tc.wantVX, p.VX)
			assert.Equal(t, tc.wantDir, p.Dir)
			assert.False(t, p.OnLadder)
		})
	}
}

func TestControllerPlayerJumpAndGravity(t *testing.T) {
	c := NewController(config.DefaultConfig())

	grounded := actor(100, 32)
	grounded.Grounded = true
	c.Player(grounded, input(0, 0, true), nil, 0.1)
	assert.Equal(t, 520.0, grounded.VY)
	assert.False(t, grounded.Grounded)

	airborne := actor(100, 80)
	c.Player(airborne, input(0, 0, true), nil, 0.1)
	assert.InDelta(t, -120.0, airborne.VY, 1e-9, "no jump in the air, only gravity")
}

func TestControllerPlayerClimbing(t *testing.T) {
	c := NewController(config.DefaultConfig())
	ladders := []core.Rect{core.NewRect(652, 32, 8, 32)}

	// center (652, 54) sits on the ladder's left edge, 4 units off its center
	p := actor(640, 40)
	p.VY = -300
	c.Player(p, input(0, 1, false), ladders, 0.1)

	assert.True(t, p.OnLadder)
	assert.True(t, p.Grounded)
	assert.Equal(t, 150.0, p.VY)
	assert.Equal(t, 0.0, p.VX)
	assert.InDelta(t, 644.0, p.Rect.X, 1e-9, "pulled toward the ladder center")

	sideways := actor(640, 40)
	c.Player(sideways, input(1, 0, false), ladders, 0.1)
	assert.InDelta(t, 160.0, sideways.VX, 1e-9)
	assert.Equal(t, 0.0, sideways.VY, "no gravity on a ladder")
	assert.Equal(t, 640.0, sideways.Rect.X, "no alignment without vertical input")
}

func TestLadderAt(t *testing.T) {
	ladders := []core.Rect{core.NewRect(652, 32, 8, 32), core.NewRect(140, 160, 8, 32)}

	l, ok := LadderAt(actor(640, 40).Rect, ladders)
	assert.True(t, ok)
	assert.Equal(t, ladders[0], l)

	_, ok = LadderAt(actor(600, 40).Rect, ladders)
	assert.False(t, ok)
}

func TestControllerEnemy(t *testing.T) {
	c := NewController(config.DefaultConfig())

	tests := []struct {
		name    string
		player  *Entity
		dir     int
		wantVX  float64
		wantDir int
	}{
		{"chase right", actor(300, 32), -1, 96, 1},
		{"chase left", actor(10, 32), 1, -96, -1},
		{"too far to chase", actor(500, 32), -1, -80, -1},
		{"different floor", actor(300, 100), 1, 80, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Entity{Kind: KindReindeer, Rect: core.NewRect(100, 32, 24, 28), Dir: tc.dir}
			c.Enemy(e, tc.player, 0.1)
			assert.InDelta(t, tc.wantVX, e.VX, 1e-9)
			assert.Equal(t, tc.wantDir, e.Dir)
			assert.InDelta(t, -120.0, e.VY, 1e-9)
		})
	}
}

func TestControllerAfterMove(t *testing.T) {
	c := NewController(config.DefaultConfig())

	blocked := &Entity{Kind: KindSnowman, Dir: 1}
	c.AfterMove(blocked)
	assert.Equal(t, -1, blocked.Dir)

	moving := &Entity{Kind: KindSnowman, Dir: 1, VX: 80}
	c.AfterMove(moving)
	assert.Equal(t, 1, moving.Dir)

	player := &Entity{Kind: KindPlayer, Dir: 1}
	c.AfterMove(player)
	assert.Equal(t, 1, player.Dir, "only enemies turn around")
}
