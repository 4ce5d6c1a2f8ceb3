package game

import (
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// enemyHalfExtent is half the enemy hitbox size; the position is its center.
const enemyHalfExtent = 18

// arrivalRadius is how close to a waypoint counts as arrived.
const arrivalRadius = 2

// Enemy patrols a closed polyline of waypoints at constant speed.
// Purely deterministic given path and speed.
type Enemy struct {
	path  []core.Vec2
	speed float64
	index int
	Pos   core.Vec2
}

// NewEnemy instantiates a patrol enemy from its level spec.
// With fewer than two waypoints the enemy stands still at path[0].
func NewEnemy(spec level.EnemySpec) *Enemy {
	e := &Enemy{
		path:  spec.Path,
		speed: spec.Speed,
		Pos:   spec.Path[0],
	}
	if len(spec.Path) > 1 {
		e.index = 1
	}
	return e
}

// Update moves the enemy toward its current target waypoint. On arrival
// (within 2 px) the target index advances (wrapping) with no additional
// movement that frame.
func (e *Enemy) Update(dt float64) {
	if len(e.path) < 2 {
		return
	}
	target := e.path[e.index]
	delta := target.Sub(e.Pos)
	dist := delta.Len()
	if dist < arrivalRadius {
		e.index = (e.index + 1) % len(e.path)
		return
	}
	step := e.speed * dt
	if step > dist {
		step = dist
	}
	e.Pos = e.Pos.Add(delta.Norm().Scale(step))
}

// Rect returns the enemy's collision rectangle, centered on its position.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(
		e.Pos.X-enemyHalfExtent,
		e.Pos.Y-enemyHalfExtent,
		enemyHalfExtent*2,
		enemyHalfExtent*2,
	)
}

// TargetIndex returns the current waypoint index. Exposed for tests.
func (e *Enemy) TargetIndex() int {
	return e.index
}
