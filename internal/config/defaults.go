package config

import (
	_ "embed"
)

//go:embed defaults/manic.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// last-resort fallback if the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:       960,
			Height:      600,
			FloorMargin: 20,
		},
		Physics: PhysicsConfig{
			Gravity:      1700,
			PlayerSpeed:  290,
			JumpSpeed:    720,
			ClimbFactor:  0.65,
			PlatformSnap: 28,
		},
		Player: PlayerConfig{
			Width:    34,
			Height:   46,
			SpawnX:   40,
			SpawnY:   510,
			RespawnX: 40,
			RespawnY: 500,
		},
		Timers: TimerConfig{
			CoyoteTime:         0.12,
			JumpBuffer:         0.14,
			TransitionCooldown: 0.22,
		},
		Session: SessionConfig{
			TargetClearMinutes: 30,
		},
	}
}
