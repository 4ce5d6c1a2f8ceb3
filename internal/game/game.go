// Package game implements the ManicWilly simulation: player kinematics,
// enemy patrols, collectible pickup, and room transitions, advanced by a
// fixed tick and exposed to the presentation layer as snapshots.
package game

import (
	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

// Phase is the session state.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhaseWin
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// State is the per-tick summary returned by Step.
type State struct {
	Phase     Phase
	RoomID    string
	Collected int
	Total     int
	Elapsed   float64 // Seconds spent in the playing phase
	Paused    bool
}

// Game owns all mutable session state: current room, arena cache, player,
// collected count, elapsed time, and phase. It is mutated exclusively by
// Step from the single frame loop; there is no concurrent access.
type Game struct {
	cfg   config.GameConfig
	graph *level.Graph

	arena       *Arena
	player      *Player
	transitions *Transitions

	currentRoom string
	collected   int
	totalItems  int
	elapsed     float64
	phase       Phase
	paused      bool

	dt float64 // Seconds per tick, fixed at reset
}

// New creates a game over a validated room graph. The graph must have passed
// level.Validate; the simulation assumes its invariants.
func New(graph *level.Graph, cfg config.GameConfig) *Game {
	return &Game{
		cfg:   cfg,
		graph: graph,
	}
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.arena = NewArena(g.graph)
	g.player = NewPlayer(g.cfg)
	g.transitions = NewTransitions(g.cfg)
	g.currentRoom = g.graph.StartRoom
	g.collected = 0
	g.totalItems = g.graph.CollectibleCount()
	g.elapsed = 0
	g.phase = PhaseSplash
	g.paused = false
}

// Step advances the simulation by one fixed tick. Update order within the
// playing phase is fixed: player, then enemies, then collectible pickup,
// then the room-transition check.
func (g *Game) Step(in core.InputFrame) State {
	switch g.phase {
	case PhaseSplash:
		if in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
		}
		return g.State()
	case PhaseWin:
		return g.State()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.State()
	}

	g.transitions.Tick(g.dt)
	g.elapsed += g.dt

	if in.Has(core.ActionJump) {
		g.player.RequestJump()
	}

	room := g.arena.Room(g.currentRoom)
	def := room.Def

	g.player.Update(g.dt, def.Platforms, def.Walls, def.Stairs, in)

	for _, enemy := range room.Enemies {
		enemy.Update(g.dt)
		if g.player.Rect.Intersects(enemy.Rect()) {
			g.player.Reposition(g.cfg.Player.RespawnX, g.cfg.Player.RespawnY)
		}
	}

	for _, item := range room.Items {
		if !item.Taken && g.player.Rect.Intersects(item.Rect()) {
			item.Taken = true
			g.collected++
		}
	}

	if target, ok := g.transitions.Check(g.player, def, in); ok {
		g.currentRoom = target
	}

	if g.collected >= g.totalItems {
		g.phase = PhaseWin
	}

	return g.State()
}

// State returns the current per-tick summary.
func (g *Game) State() State {
	return State{
		Phase:     g.phase,
		RoomID:    g.currentRoom,
		Collected: g.collected,
		Total:     g.totalItems,
		Elapsed:   g.elapsed,
		Paused:    g.paused,
	}
}

// Config returns the game configuration (world dimensions for projection).
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
