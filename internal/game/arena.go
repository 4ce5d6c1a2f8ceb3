package game

import (
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// collectibleHalfExtent is half the pickup hitbox size; positions are centers.
const collectibleHalfExtent = 10

// Collectible is the runtime state of one item. Taken flips exactly once,
// from false to true, and the item persists for the room's lifetime.
type Collectible struct {
	Pos   core.Vec2
	Taken bool
}

// Rect returns the pickup hitbox centered on the item position.
func (c *Collectible) Rect() core.Rect {
	return core.NewRect(
		c.Pos.X-collectibleHalfExtent,
		c.Pos.Y-collectibleHalfExtent,
		collectibleHalfExtent*2,
		collectibleHalfExtent*2,
	)
}

// RoomState is the owned bundle of per-room entity collections: static
// geometry shared with the immutable room definition plus the mutable
// collectibles and enemies.
type RoomState struct {
	Def     *level.Room
	Items   []*Collectible
	Enemies []*Enemy
}

// Arena lazily builds and caches RoomStates keyed by room id. A room is
// built once on first visit and retained for the session so collected items
// stay collected and enemies keep their patrol positions.
type Arena struct {
	graph  *level.Graph
	states map[string]*RoomState
}

// NewArena creates an empty arena over the given room graph.
func NewArena(graph *level.Graph) *Arena {
	return &Arena{
		graph:  graph,
		states: make(map[string]*RoomState),
	}
}

// Room returns the cached state for a room, building it on first visit.
// The room id must exist in the graph; the validator guarantees this for
// every id reachable at runtime.
func (a *Arena) Room(id string) *RoomState {
	if state, ok := a.states[id]; ok {
		return state
	}
	state := buildRoomState(a.graph.Rooms[id])
	a.states[id] = state
	return state
}

// Visited reports whether a room has been built this session.
func (a *Arena) Visited(id string) bool {
	_, ok := a.states[id]
	return ok
}

func buildRoomState(def *level.Room) *RoomState {
	state := &RoomState{Def: def}
	for _, pos := range def.Collectibles {
		state.Items = append(state.Items, &Collectible{Pos: pos})
	}
	for _, spec := range def.Enemies {
		state.Enemies = append(state.Enemies, NewEnemy(spec))
	}
	return state
}
