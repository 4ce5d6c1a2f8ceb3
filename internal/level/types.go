// Package level defines the room-graph data model, the YAML loader for level
// files, and the offline validator that gates level-design changes.
// This package depends on core but knows nothing about the simulation.
package level

import (
	"sort"

	"github.com/mysticalg/ManicWilly/internal/core"
)

// Direction identifies a neighbor link or stair orientation.
// Stored as a string so it serializes cleanly in level files.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirLeft, DirRight, DirUp, DirDown:
		return true
	}
	return false
}

// Vertical reports whether d is up or down.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// verticalDirs is the fixed check order for stair-related validation.
var verticalDirs = [2]Direction{DirUp, DirDown}

// Stair is a climbable zone that may also carry a vertical room link.
// Immutable once loaded.
type Stair struct {
	Rect      core.Rect
	Target    string // Destination room id; empty for climb-only stairs
	Direction Direction
}

// EnemySpec describes a patrol enemy as authored in level data: a closed
// polyline of waypoints walked at constant speed. A single-waypoint path
// means the enemy stands still.
type EnemySpec struct {
	Path  []core.Vec2
	Speed float64
}

// Room is the static definition of one screen of the game.
type Room struct {
	ID           string
	Name         string
	Platforms    []core.Rect
	Walls        []core.Rect
	Stairs       []Stair
	Collectibles []core.Vec2
	Enemies      []EnemySpec
	Neighbors    map[Direction]string
}

// Graph is the full room graph, loaded once at startup and immutable
// thereafter. Its invariants (connectivity, stair/neighbor duality,
// full-clear feasibility, layout uniqueness) are proven by Validate,
// not enforced here.
type Graph struct {
	StartRoom string
	Rooms     map[string]*Room
}

// RoomIDs returns all room ids in sorted order for deterministic iteration.
func (g *Graph) RoomIDs() []string {
	ids := make([]string, 0, len(g.Rooms))
	for id := range g.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CollectibleCount returns the total number of collectibles across all rooms.
func (g *Graph) CollectibleCount() int {
	total := 0
	for _, room := range g.Rooms {
		total += len(room.Collectibles)
	}
	return total
}
