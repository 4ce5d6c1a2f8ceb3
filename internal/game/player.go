package game

import (
	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// Pose is the animation-state hint exposed to the renderer.
type Pose int

const (
	PoseGrounded Pose = iota
	PoseAirborne
	PoseClimbing
)

// Player holds the per-session player state. There is exactly one instance
// per session; it is repositioned, never recreated.
type Player struct {
	Rect            core.Rect
	VelY            float64
	OnGround        bool
	OnStairs        bool
	Climbing        bool
	FacingLeft      bool
	CoyoteTimer     float64
	JumpBufferTimer float64

	cfg config.GameConfig
}

// NewPlayer creates the session player at the configured spawn point.
func NewPlayer(cfg config.GameConfig) *Player {
	return &Player{
		Rect: core.NewRect(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height),
		cfg:  cfg,
	}
}

// RequestJump arms the jump buffer. The press is remembered for a short
// window so a jump issued slightly before landing still succeeds.
func (p *Player) RequestJump() {
	p.JumpBufferTimer = p.cfg.Timers.JumpBuffer
}

// Reposition moves the player's top-left corner without recreating it,
// zeroing vertical velocity. Used for spawning and enemy-contact respawn.
func (p *Player) Reposition(x, y float64) {
	p.Rect.X = x
	p.Rect.Y = y
	p.VelY = 0
}

// Pose returns the animation-state hint for the current frame.
func (p *Player) Pose() Pose {
	switch {
	case p.Climbing:
		return PoseClimbing
	case p.OnGround:
		return PoseGrounded
	default:
		return PoseAirborne
	}
}

// Update advances the player by one frame against the active room's
// geometry. The order of operations matters: horizontal movement and wall
// resolution first, then the buffered-jump decision (which overrides a climb
// attempt in the same frame), then vertical integration and resolution,
// then screen-bounds clamping and the coyote timer.
func (p *Player) Update(dt float64, platforms, walls []core.Rect, stairs []level.Stair, in core.InputFrame) {
	phys := p.cfg.Physics

	p.JumpBufferTimer = clampDown(p.JumpBufferTimer - dt)

	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= phys.PlayerSpeed * dt
	}
	if in.Has(core.ActionRight) {
		dx += phys.PlayerSpeed * dt
	}
	if dx < 0 {
		p.FacingLeft = true
	} else if dx > 0 {
		p.FacingLeft = false
	}
	p.Rect.X += dx

	for _, wall := range walls {
		if p.Rect.Intersects(wall) {
			if dx > 0 {
				p.Rect.X = wall.X - p.Rect.W
			} else if dx < 0 {
				p.Rect.X = wall.Right()
			}
		}
	}

	p.OnStairs = false
	for _, stair := range stairs {
		if p.Rect.Intersects(stair.Rect) {
			p.OnStairs = true
			break
		}
	}
	climbing := p.OnStairs && (in.Has(core.ActionUp) || in.Has(core.ActionDown))

	// A buffered jump fires when eligible and takes priority over climbing.
	canJump := p.OnGround || p.CoyoteTimer > 0 || p.OnStairs
	if p.JumpBufferTimer > 0 && canJump {
		p.VelY = -phys.JumpSpeed
		p.OnStairs = false
		p.JumpBufferTimer = 0
		p.CoyoteTimer = 0
		climbing = false
	}

	if climbing {
		p.VelY = 0
		climbSpeed := phys.PlayerSpeed * phys.ClimbFactor
		if in.Has(core.ActionUp) {
			p.Rect.Y -= climbSpeed * dt
		}
		if in.Has(core.ActionDown) {
			p.Rect.Y += climbSpeed * dt
		}
	} else {
		p.VelY += phys.Gravity * dt
		p.Rect.Y += p.VelY * dt
	}
	p.Climbing = climbing

	// Vertical resolution. Platforms are one-way: only a falling player
	// whose overlap is shallow enough lands on top.
	p.OnGround = false
	for _, plat := range platforms {
		if p.Rect.Intersects(plat) && p.VelY >= 0 && p.Rect.Bottom()-plat.Y < phys.PlatformSnap {
			p.Rect.Y = plat.Y - p.Rect.H
			p.VelY = 0
			p.OnGround = true
		}
	}
	// Walls block from both sides.
	for _, wall := range walls {
		if p.Rect.Intersects(wall) {
			if p.VelY >= 0 {
				p.Rect.Y = wall.Y - p.Rect.H
				p.VelY = 0
				p.OnGround = true
			} else {
				p.Rect.Y = wall.Bottom()
				p.VelY = 0
			}
		}
	}

	// Screen bounds. The floor grounds the player, the ceiling just stops.
	world := p.cfg.World
	p.Rect.X = core.ClampF(p.Rect.X, 0, world.Width-p.Rect.W)
	floorY := world.Height - world.FloorMargin
	if p.Rect.Bottom() > floorY {
		p.Rect.Y = floorY - p.Rect.H
		p.VelY = 0
		p.OnGround = true
	}
	if p.Rect.Y < 0 {
		p.Rect.Y = 0
	}

	if p.OnGround {
		p.CoyoteTimer = p.cfg.Timers.CoyoteTime
	} else {
		p.CoyoteTimer = clampDown(p.CoyoteTimer - dt)
	}
}

// clampDown keeps a decaying timer at or above zero.
func clampDown(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
