package giftrun

import (
	"math"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

// Controller applies per-kind movement rules before physics runs.
type Controller struct {
	cfg config.GameConfig
}

// NewController creates a controller for the given configuration.
func NewController(cfg config.GameConfig) Controller {
	return Controller{cfg: cfg}
}

// LadderAt returns the ladder zone containing the rect's center.
func LadderAt(r core.Rect, ladders []core.Rect) (core.Rect, bool) {
	cx, cy := r.Center()
	for _, l := range ladders {
		if l.ContainsPoint(cx, cy) {
			return l, true
		}
	}
	return core.Rect{}, false
}

// Player maps input to the player's velocity.
func (c Controller) Player(p *Entity, in core.InputSource, ladders []core.Rect, dt float64) {
	ph := c.cfg.Physics
	axis := in.Axis()
	if axis.X != 0 {
		p.Dir = core.Sign(float64(axis.X))
	}

	ladder, ok := LadderAt(p.Rect, ladders)
	p.OnLadder = ok
	if ok {
		p.VX = float64(axis.X) * ph.MoveSpeed * ph.LadderMoveFactor
		p.VY = float64(axis.Y) * ph.ClimbSpeed
		p.Grounded = true

		if axis.Y != 0 {
			offset := ladder.CenterX() - p.Rect.CenterX()
			if math.Abs(offset) <= c.cfg.Rules.LadderSnap {
				p.Rect.X += offset * c.cfg.Rules.LadderPull * dt
			}
		}
		return
	}

	p.VX = float64(axis.X) * ph.MoveSpeed
	p.VY -= ph.Gravity * dt
	if in.JumpPressed() && p.Grounded {
		p.VY = ph.JumpForce
		p.Grounded = false
	}
}

// Mode returns the enemy's behavior relative to the player.
func (c Controller) Mode(e, player *Entity) EnemyMode {
	if player == nil {
		return ModePatrol
	}
	tile := c.cfg.World.TileSize
	return EnemyModeFor(e.Rect, player.Rect, c.cfg.Rules.ChaseRangeX*tile, c.cfg.Rules.ChaseRangeY*tile)
}

// Enemy sets an enemy's velocity for patrol or chase.
func (c Controller) Enemy(e, player *Entity, dt float64) {
	ph := c.cfg.Physics
	speed := ph.EnemySpeed

	if c.Mode(e, player) == ModeChase {
		dx := player.Rect.CenterX() - e.Rect.CenterX()
		if dx != 0 {
			e.Dir = core.Sign(dx)
		}
		speed *= ph.ChaseFactor
	}

	e.VX = float64(e.Dir) * speed
	e.VY -= ph.Gravity * dt
}

// AfterMove turns an enemy around when its horizontal motion was stopped.
func (c Controller) AfterMove(e *Entity) {
	if e.Kind.IsEnemy() && e.VX == 0 {
		e.Dir = -e.Dir
	}
}
