// Package config provides YAML-based configuration loading for giftrun.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// GameConfig contains all tunable values for the simulation and its host.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Entities   EntitiesConfig   `yaml:"entities"`
	Rules      RulesConfig      `yaml:"rules"`
	Generation GenerationConfig `yaml:"generation"`
	Input      InputConfig      `yaml:"input"`
}

// WorldConfig defines world-space scale.
type WorldConfig struct {
	TileSize float64 `yaml:"tile_size"`
}

// PhysicsConfig defines movement parameters in world units per second.
type PhysicsConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	ClimbSpeed       float64 `yaml:"climb_speed"`
	LadderMoveFactor float64 `yaml:"ladder_move_factor"` // horizontal speed multiplier on ladders
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	ChaseFactor      float64 `yaml:"chase_factor"`
	MaxDelta         float64 `yaml:"max_delta"` // seconds
}

// EntitiesConfig defines hitbox sizes.
type EntitiesConfig struct {
	ActorWidth  float64 `yaml:"actor_width"`
	ActorHeight float64 `yaml:"actor_height"`
	GiftSize    float64 `yaml:"gift_size"`
	LadderWidth float64 `yaml:"ladder_width"`
}

// RulesConfig defines scoring and lives.
type RulesConfig struct {
	Lives        int     `yaml:"lives"`
	GiftPoints   int     `yaml:"gift_points"`
	ClearBonus   int     `yaml:"clear_bonus"`
	RespawnCol   int     `yaml:"respawn_col"`
	RespawnRow   int     `yaml:"respawn_row"`
	ChaseRangeX  float64 `yaml:"chase_range_x"` // tiles
	ChaseRangeY  float64 `yaml:"chase_range_y"` // tiles
	LadderSnap   float64 `yaml:"ladder_snap"`   // world units
	LadderPull   float64 `yaml:"ladder_pull"`   // alignment rate per second
}

// GenerationConfig defines procedural placement parameters.
type GenerationConfig struct {
	GiftsMin      int     `yaml:"gifts_min"`
	GiftsMax      int     `yaml:"gifts_max"`
	GiftVariants  int     `yaml:"gift_variants"`
	TreeChance    float64 `yaml:"tree_chance"`
	TreesPerFloor int     `yaml:"trees_per_floor"`
	TreeVariants  int     `yaml:"tree_variants"`
}

// InputConfig defines how the terminal host turns key presses into held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration can drive a simulation.
func (c GameConfig) Validate() error {
	var errs []error
	positive := map[string]float64{
		"world.tile_size":          c.World.TileSize,
		"physics.move_speed":       c.Physics.MoveSpeed,
		"physics.climb_speed":      c.Physics.ClimbSpeed,
		"physics.gravity":          c.Physics.Gravity,
		"physics.jump_force":       c.Physics.JumpForce,
		"physics.enemy_speed":      c.Physics.EnemySpeed,
		"physics.max_delta":        c.Physics.MaxDelta,
		"entities.actor_width":     c.Entities.ActorWidth,
		"entities.actor_height":    c.Entities.ActorHeight,
		"entities.gift_size":       c.Entities.GiftSize,
		"entities.ladder_width":    c.Entities.LadderWidth,
		"generation.gift_variants": float64(c.Generation.GiftVariants),
		"generation.tree_variants": float64(c.Generation.TreeVariants),
		"rules.lives":              float64(c.Rules.Lives),
	}
	for _, name := range slices.Sorted(maps.Keys(positive)) {
		if positive[name] <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, positive[name]))
		}
	}

	if c.Entities.ActorWidth > c.World.TileSize || c.Entities.GiftSize > c.World.TileSize {
		errs = append(errs, fmt.Errorf("%w: hitboxes must fit within one tile", ErrInvalidConfig))
	}
	if c.Generation.GiftsMin < 0 || c.Generation.GiftsMin > c.Generation.GiftsMax {
		errs = append(errs, fmt.Errorf("%w: gift range [%d, %d] is inverted",
			ErrInvalidConfig, c.Generation.GiftsMin, c.Generation.GiftsMax))
	}
	if c.Generation.TreeChance < 0 || c.Generation.TreeChance > 1 {
		errs = append(errs, fmt.Errorf("%w: generation.tree_chance must be within [0, 1], got %v",
			ErrInvalidConfig, c.Generation.TreeChance))
	}
	if c.Generation.TreesPerFloor < 0 {
		errs = append(errs, fmt.Errorf("%w: generation.trees_per_floor must not be negative", ErrInvalidConfig))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("%w: input.hold_ms must not be negative", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
