package game

import (
	"testing"

	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

const testDt = 1.0 / 60.0

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// walkOffPlatform moves the player right until it leaves the platform.
func walkOffPlatform(t *testing.T, p *Player, plat core.Rect) {
	t.Helper()
	for i := 0; i < 120; i++ {
		p.Update(testDt, []core.Rect{plat}, nil, nil, inputWith(core.ActionRight))
		if !p.OnGround {
			return
		}
	}
	t.Fatal("player never left the platform")
}

// settle runs empty-input frames until the player is grounded.
func settle(t *testing.T, p *Player, platforms, walls []core.Rect) {
	t.Helper()
	for i := 0; i < 120; i++ {
		p.Update(testDt, platforms, walls, nil, core.NewInputFrame())
		if p.OnGround {
			return
		}
	}
	t.Fatal("player never grounded")
}

func TestPlayerFallsToFloor(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)

	settle(t, p, nil, nil)

	floorY := cfg.World.Height - cfg.World.FloorMargin
	if got := p.Rect.Bottom(); got != floorY {
		t.Errorf("bottom = %v, want %v", got, floorY)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, want 0 after landing", p.VelY)
	}
}

func TestPlayerJumpFromGround(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)
	settle(t, p, nil, nil)

	p.RequestJump()
	p.Update(testDt, nil, nil, nil, core.NewInputFrame())

	if p.VelY >= 0 {
		t.Errorf("VelY = %v, want upward after jump", p.VelY)
	}
	if p.OnGround {
		t.Error("player still grounded after jump frame")
	}
	if p.JumpBufferTimer != 0 {
		t.Errorf("JumpBufferTimer = %v, want 0 after consuming the press", p.JumpBufferTimer)
	}
}

func TestPlayerJumpBufferIdempotent(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)
	settle(t, p, nil, nil)

	// Two presses in the same window still produce exactly one jump.
	p.RequestJump()
	p.RequestJump()
	p.Update(testDt, nil, nil, nil, core.NewInputFrame())
	if p.VelY >= 0 {
		t.Fatalf("VelY = %v, want upward", p.VelY)
	}
	firstVel := p.VelY

	p.Update(testDt, nil, nil, nil, core.NewInputFrame())
	wantVel := firstVel + cfg.Physics.Gravity*testDt
	if diff := p.VelY - wantVel; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("VelY = %v, want %v (gravity only, no second jump)", p.VelY, wantVel)
	}
}

func TestPlayerCoyoteGrace(t *testing.T) {
	cfg := config.DefaultGameConfig()
	plat := core.NewRect(0, 400, 200, 12)

	p := NewPlayer(cfg)
	p.Rect.X = 200 - p.Rect.W
	p.Rect.Y = 300
	settle(t, p, []core.Rect{plat}, nil)

	// Walk off the right edge and release: airborne but within grace.
	walkOffPlatform(t, p, plat)
	if p.CoyoteTimer <= 0 {
		t.Fatal("coyote timer already expired")
	}

	p.RequestJump()
	p.Update(testDt, []core.Rect{plat}, nil, nil, core.NewInputFrame())
	if p.VelY >= 0 {
		t.Errorf("VelY = %v, want upward jump during coyote window", p.VelY)
	}
}

func TestPlayerCoyoteExpires(t *testing.T) {
	cfg := config.DefaultGameConfig()
	plat := core.NewRect(0, 400, 200, 12)

	p := NewPlayer(cfg)
	p.Rect.X = 200 - p.Rect.W
	p.Rect.Y = 300
	settle(t, p, []core.Rect{plat}, nil)

	walkOffPlatform(t, p, plat)
	for i := 0; p.CoyoteTimer > 0; i++ {
		if i > 60 {
			t.Fatal("coyote timer never expired")
		}
		p.Update(testDt, []core.Rect{plat}, nil, nil, core.NewInputFrame())
	}

	velBefore := p.VelY
	p.RequestJump()
	p.Update(testDt, []core.Rect{plat}, nil, nil, core.NewInputFrame())
	if p.VelY < velBefore {
		t.Errorf("VelY went from %v to %v, want no jump after grace expired", velBefore, p.VelY)
	}
}

func TestPlayerClimbOnStairs(t *testing.T) {
	cfg := config.DefaultGameConfig()
	stairs := []level.Stair{{
		Rect:      core.NewRect(0, 200, 60, 360),
		Direction: level.DirUp,
	}}

	p := NewPlayer(cfg)
	p.Rect.X = 10
	p.Rect.Y = 400
	startY := p.Rect.Y

	p.Update(testDt, nil, nil, stairs, inputWith(core.ActionUp))

	if !p.Climbing {
		t.Fatal("player not climbing while holding up on stairs")
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, want 0 while climbing", p.VelY)
	}
	wantY := startY - cfg.Physics.PlayerSpeed*cfg.Physics.ClimbFactor*testDt
	if diff := p.Rect.Y - wantY; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Y = %v, want %v", p.Rect.Y, wantY)
	}
	if p.Pose() != PoseClimbing {
		t.Errorf("pose = %v, want climbing", p.Pose())
	}
}

func TestPlayerJumpOverridesClimb(t *testing.T) {
	cfg := config.DefaultGameConfig()
	stairs := []level.Stair{{
		Rect:      core.NewRect(0, 200, 60, 360),
		Direction: level.DirUp,
	}}

	p := NewPlayer(cfg)
	p.Rect.X = 10
	p.Rect.Y = 400

	p.RequestJump()
	p.Update(testDt, nil, nil, stairs, inputWith(core.ActionUp))

	if p.Climbing {
		t.Error("climbing set despite buffered jump in the same frame")
	}
	if p.VelY >= 0 {
		t.Errorf("VelY = %v, want upward jump off the stairs", p.VelY)
	}
	if p.OnStairs {
		t.Error("OnStairs still set after jumping off")
	}
}

func TestPlayerWallBlocksHorizontal(t *testing.T) {
	cfg := config.DefaultGameConfig()
	wall := core.NewRect(200, 0, 40, 600)

	p := NewPlayer(cfg)
	p.Rect.X = 200 - p.Rect.W - 1
	p.Rect.Y = 300

	p.Update(testDt, nil, []core.Rect{wall}, nil, inputWith(core.ActionRight))

	if got := p.Rect.X; got != 200-p.Rect.W {
		t.Errorf("X = %v, want flush against wall at %v", got, 200-p.Rect.W)
	}
	if p.FacingLeft {
		t.Error("FacingLeft = true, want false after moving right")
	}
}

func TestPlayerPlatformSnap(t *testing.T) {
	cfg := config.DefaultGameConfig()
	plat := core.NewRect(0, 400, 200, 12)

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 400 - p.Rect.H - 2
	p.VelY = 200

	p.Update(testDt, []core.Rect{plat}, nil, nil, core.NewInputFrame())

	if !p.OnGround {
		t.Fatal("player not grounded after shallow falling overlap")
	}
	if got := p.Rect.Bottom(); got != plat.Y {
		t.Errorf("bottom = %v, want %v", got, plat.Y)
	}
}

func TestPlayerPassesThroughPlatformFromBelow(t *testing.T) {
	cfg := config.DefaultGameConfig()
	plat := core.NewRect(0, 400, 200, 12)

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 412
	p.VelY = -cfg.Physics.JumpSpeed

	p.Update(testDt, []core.Rect{plat}, nil, nil, core.NewInputFrame())

	if p.OnGround {
		t.Error("rising player landed on a one-way platform")
	}
	if p.VelY >= 0 {
		t.Errorf("VelY = %v, want still rising", p.VelY)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := config.DefaultGameConfig()
	p := NewPlayer(cfg)
	p.Rect.X = 0
	p.Rect.Y = 300

	for i := 0; i < 30; i++ {
		p.Update(testDt, nil, nil, nil, inputWith(core.ActionLeft))
	}
	if p.Rect.X != 0 {
		t.Errorf("X = %v, want clamped to 0", p.Rect.X)
	}
	if !p.FacingLeft {
		t.Error("FacingLeft = false, want true after moving left")
	}

	for i := 0; i < 600; i++ {
		p.Update(testDt, nil, nil, nil, inputWith(core.ActionRight))
	}
	if got := p.Rect.Right(); got != cfg.World.Width {
		t.Errorf("right = %v, want clamped to %v", got, cfg.World.Width)
	}
}
