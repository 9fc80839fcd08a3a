package config

import (
	_ "embed"
)

//go:embed defaults/giftrun.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the default giftrun configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			TileSize: 32,
		},
		Physics: PhysicsConfig{
			MoveSpeed:        200,
			ClimbSpeed:       150,
			LadderMoveFactor: 0.8,
			Gravity:          1200,
			JumpForce:        520,
			EnemySpeed:       80,
			ChaseFactor:      1.2,
			MaxDelta:         0.1,
		},
		Entities: EntitiesConfig{
			ActorWidth:  24,
			ActorHeight: 28,
			GiftSize:    20,
			LadderWidth: 8,
		},
		Rules: RulesConfig{
			Lives:       3,
			GiftPoints:  100,
			ClearBonus:  1000,
			RespawnCol:  12,
			RespawnRow:  7,
			ChaseRangeX: 8,
			ChaseRangeY: 1,
			LadderSnap:  4,
			LadderPull:  10,
		},
		Generation: GenerationConfig{
			GiftsMin:      4,
			GiftsMax:      6,
			GiftVariants:  7,
			TreeChance:    0.25,
			TreesPerFloor: 4,
			TreeVariants:  2,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
	}
}
