// Package config provides tunable game configuration loaded from YAML.
// Defaults are embedded in the binary; users can override with a file in
// ~/.manicwilly/ or with --config.
package config

// GameConfig is the root configuration for the game.
type GameConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Timers  TimerConfig   `yaml:"timers"`
	Session SessionConfig `yaml:"session"`
}

// WorldConfig describes the fixed room dimensions in world pixels.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorMargin float64 `yaml:"floor_margin"` // Walkable floor sits this far above the bottom edge
}

// PhysicsConfig holds the kinematic constants, in pixels and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, px/s^2
	PlayerSpeed  float64 `yaml:"player_speed"`  // Horizontal speed, px/s
	JumpSpeed    float64 `yaml:"jump_speed"`    // Initial upward speed on jump, px/s
	ClimbFactor  float64 `yaml:"climb_factor"`  // Stair climb speed as a fraction of player_speed
	PlatformSnap float64 `yaml:"platform_snap"` // Max overlap depth treated as "landed on top", px
}

// PlayerConfig describes the player hitbox and spawn points.
type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpawnX   float64 `yaml:"spawn_x"`   // Session start, top-left
	SpawnY   float64 `yaml:"spawn_y"`
	RespawnX float64 `yaml:"respawn_x"` // After enemy contact, top-left
	RespawnY float64 `yaml:"respawn_y"`
}

// TimerConfig holds the grace windows, in seconds.
type TimerConfig struct {
	CoyoteTime         float64 `yaml:"coyote_time"`         // Jump grace after leaving a platform
	JumpBuffer         float64 `yaml:"jump_buffer"`         // How long a jump press is remembered
	TransitionCooldown float64 `yaml:"transition_cooldown"` // Debounce between stair transitions
}

// SessionConfig holds presentation-facing session parameters.
type SessionConfig struct {
	TargetClearMinutes int `yaml:"target_clear_minutes"` // Advertised target full-clear time
}
