package game

import (
	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// Transitions detects room changes and repositions the player in the new
// room. Stairs and screen edges sit near room boundaries, so stair-triggered
// transitions are debounced with a cooldown; without it a single frame could
// satisfy both the departure condition and the new room's arrival condition
// and oscillate.
type Transitions struct {
	cfg      config.GameConfig
	cooldown float64
}

// NewTransitions creates a transition controller.
func NewTransitions(cfg config.GameConfig) *Transitions {
	return &Transitions{cfg: cfg}
}

// Tick decays the stair cooldown.
func (t *Transitions) Tick(dt float64) {
	t.cooldown = clampDown(t.cooldown - dt)
}

// CooldownActive reports whether a stair transition is currently debounced.
func (t *Transitions) CooldownActive() bool {
	return t.cooldown > 0
}

// Check evaluates the transition triggers in fixed priority order: left
// edge, right edge, then stairs in room-declared order. At most one
// transition fires per frame; the first match wins. On any transition the
// player is repositioned in the destination room and vertical velocity is
// reset. Returns the destination room id and whether a transition fired.
func (t *Transitions) Check(p *Player, room *level.Room, in core.InputFrame) (string, bool) {
	world := t.cfg.World

	if target, ok := room.Neighbors[level.DirLeft]; ok && p.Rect.X <= 0 {
		p.Reposition(world.Width-4-p.Rect.W, p.Rect.Y)
		return target, true
	}
	if target, ok := room.Neighbors[level.DirRight]; ok && p.Rect.Right() >= world.Width {
		p.Reposition(4, p.Rect.Y)
		return target, true
	}

	for _, stair := range room.Stairs {
		if t.cooldown > 0 || stair.Target == "" {
			continue
		}
		if !p.Rect.Intersects(stair.Rect) {
			continue
		}
		switch stair.Direction {
		case level.DirUp:
			if in.Has(core.ActionUp) {
				t.enterByStair(p, 54)
				return stair.Target, true
			}
		case level.DirDown:
			if in.Has(core.ActionDown) {
				t.enterByStair(p, world.Width-98)
				return stair.Target, true
			}
		}
	}

	return "", false
}

// enterByStair places the player near the bottom of the destination room,
// offset toward the entry side, and arms the cooldown.
func (t *Transitions) enterByStair(p *Player, x float64) {
	world := t.cfg.World
	p.Reposition(x, world.Height-28-p.Rect.H)
	t.cooldown = t.cfg.Timers.TransitionCooldown
}
