package game

import (
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// Snapshot is the render surface: everything the presentation layer needs
// to draw one frame, decoupled from the simulation's internals.
type Snapshot struct {
	Phase    Phase
	RoomID   string
	RoomName string

	Player     core.Rect
	Pose       Pose
	FacingLeft bool

	Platforms []core.Rect
	Walls     []core.Rect
	Stairs    []level.Stair
	Items     []core.Vec2 // Un-taken collectible positions
	Enemies   []core.Rect

	Collected          int
	Total              int
	Elapsed            float64
	TargetClearMinutes int
	Paused             bool
}

// Snapshot captures the current frame for rendering.
func (g *Game) Snapshot() Snapshot {
	room := g.arena.Room(g.currentRoom)
	def := room.Def

	snap := Snapshot{
		Phase:              g.phase,
		RoomID:             def.ID,
		RoomName:           def.Name,
		Player:             g.player.Rect,
		Pose:               g.player.Pose(),
		FacingLeft:         g.player.FacingLeft,
		Platforms:          def.Platforms,
		Walls:              def.Walls,
		Stairs:             def.Stairs,
		Collected:          g.collected,
		Total:              g.totalItems,
		Elapsed:            g.elapsed,
		TargetClearMinutes: g.cfg.Session.TargetClearMinutes,
		Paused:             g.paused,
	}

	for _, item := range room.Items {
		if !item.Taken {
			snap.Items = append(snap.Items, item.Pos)
		}
	}
	for _, enemy := range room.Enemies {
		snap.Enemies = append(snap.Enemies, enemy.Rect())
	}

	return snap
}
