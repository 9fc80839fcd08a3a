package giftrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/giftrun/internal/core"
)

// PlayerAnim is the player's animation state.
type PlayerAnim int

const (
	AnimIdle PlayerAnim = iota
	AnimRun
	AnimJump
	AnimClimb
)

func (a PlayerAnim) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimClimb:
		return "climb"
	default:
		return "idle"
	}
}

// EnemyMode is an enemy's movement behavior for the current step.
type EnemyMode int

const (
	ModePatrol EnemyMode = iota
	ModeChase
)

func (m EnemyMode) String() string {
	if m == ModeChase {
		return "chase"
	}
	return "patrol"
}

// Animation timing in seconds.
const (
	climbFrameTime    = 0.1
	runFrameTime      = 0.12
	reindeerFrameTime = 0.15
	motionThreshold   = 10.0 // world units per second
)

// PlayerAnimFor picks the animation from the player's physical state.
// Priority: climbing, airborne, running, idle.
func PlayerAnimFor(e *Entity) PlayerAnim {
	switch {
	case e.OnLadder:
		return AnimClimb
	case !e.Grounded:
		return AnimJump
	case math.Abs(e.VX) > motionThreshold:
		return AnimRun
	default:
		return AnimIdle
	}
}

// EnemyModeFor decides between patrol and chase from relative position.
// rangeX and rangeY are in world units and exclusive.
func EnemyModeFor(enemy, player core.Rect, rangeX, rangeY float64) EnemyMode {
	ex, ey := enemy.Center()
	px, py := player.Center()
	if math.Abs(py-ey) < rangeY && math.Abs(px-ex) < rangeX {
		return ModeChase
	}
	return ModePatrol
}

// animate advances an entity's frame counters by dt.
func animate(e *Entity, dt float64) {
	switch e.Kind {
	case KindPlayer:
		anim := PlayerAnimFor(e)
		if anim != e.Anim {
			e.Anim = anim
			e.Frame = 0
			e.FrameTimer = 0
		}
		switch anim {
		case AnimClimb:
			if math.Abs(e.VY) > motionThreshold {
				stepFrames(e, dt, climbFrameTime, 2)
			}
		case AnimRun:
			stepFrames(e, dt, runFrameTime, 2)
		default:
			e.Frame = 0
		}
	case KindReindeer:
		stepFrames(e, dt, reindeerFrameTime, 2)
	}
}

func stepFrames(e *Entity, dt, interval float64, frames int) {
	e.FrameTimer += dt
	for e.FrameTimer >= interval {
		e.FrameTimer -= interval
		e.Frame = (e.Frame + 1) % frames
	}
}

// SpriteKey returns the renderer key for an entity's current frame.
func SpriteKey(e *Entity) string {
	switch e.Kind {
	case KindPlayer:
		switch e.Anim {
		case AnimClimb:
			return fmt.Sprintf("player_climb_%d", e.Frame)
		case AnimJump:
			return "player_jump"
		case AnimRun:
			return fmt.Sprintf("player_run_%d", e.Frame)
		default:
			return "player_idle"
		}
	case KindReindeer:
		return fmt.Sprintf("reindeer_%d", e.Frame)
	case KindSnowman:
		return "snowman"
	case KindGift:
		return fmt.Sprintf("gift_%d", e.Variant)
	case KindTree:
		return fmt.Sprintf("tree_%d", e.Variant)
	}
	return ""
}

// Mirrored reports whether the sprite is drawn facing left.
// Climbing always faces right.
func Mirrored(e *Entity) bool {
	if e.Kind == KindPlayer && e.Anim == AnimClimb {
		return false
	}
	return e.Dir < 0
}
