package game

import (
	"testing"

	"github.com/mysticalg/ManicWilly/internal/config"
	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/level"
)

func transitionRoom() *level.Room {
	return &level.Room{
		ID:   "hall",
		Name: "The Hall",
		Stairs: []level.Stair{
			{
				Rect:      core.NewRect(40, 100, 60, 460),
				Target:    "attic",
				Direction: level.DirUp,
			},
			{
				Rect:      core.NewRect(860, 100, 60, 460),
				Target:    "cellar",
				Direction: level.DirDown,
			},
		},
		Neighbors: map[level.Direction]string{
			level.DirLeft:  "west_wing",
			level.DirRight: "east_wing",
			level.DirUp:    "attic",
			level.DirDown:  "cellar",
		},
	}
}

func TestTransitionLeftEdge(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = 0
	p.Rect.Y = 300
	p.VelY = 250

	target, ok := tr.Check(p, room, core.NewInputFrame())
	if !ok || target != "west_wing" {
		t.Fatalf("Check = (%q, %v), want (west_wing, true)", target, ok)
	}
	wantX := cfg.World.Width - 4 - p.Rect.W
	if p.Rect.X != wantX {
		t.Errorf("X = %v, want %v near the far edge", p.Rect.X, wantX)
	}
	if p.Rect.Y != 300 {
		t.Errorf("Y = %v, want preserved", p.Rect.Y)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, want reset on transition", p.VelY)
	}
	if tr.CooldownActive() {
		t.Error("edge transition armed the stair cooldown")
	}
}

func TestTransitionRightEdge(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = cfg.World.Width - p.Rect.W
	p.Rect.Y = 300

	target, ok := tr.Check(p, room, core.NewInputFrame())
	if !ok || target != "east_wing" {
		t.Fatalf("Check = (%q, %v), want (east_wing, true)", target, ok)
	}
	if p.Rect.X != 4 {
		t.Errorf("X = %v, want 4", p.Rect.X)
	}
}

func TestTransitionNoNeighborNoFire(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := &level.Room{ID: "sealed", Name: "Sealed"}

	p := NewPlayer(cfg)
	p.Rect.X = 0

	if target, ok := tr.Check(p, room, core.NewInputFrame()); ok {
		t.Errorf("Check fired to %q from a room without a left neighbor", target)
	}
}

func TestTransitionStairUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 300
	p.VelY = 99

	// Overlapping the stair without holding up: nothing happens.
	if _, ok := tr.Check(p, room, core.NewInputFrame()); ok {
		t.Fatal("stair fired without the matching direction held")
	}

	target, ok := tr.Check(p, room, inputWith(core.ActionUp))
	if !ok || target != "attic" {
		t.Fatalf("Check = (%q, %v), want (attic, true)", target, ok)
	}
	if p.Rect.X != 54 {
		t.Errorf("X = %v, want 54 (stair-up entry)", p.Rect.X)
	}
	wantY := cfg.World.Height - 28 - p.Rect.H
	if p.Rect.Y != wantY {
		t.Errorf("Y = %v, want %v (bottom entry)", p.Rect.Y, wantY)
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, want reset", p.VelY)
	}
	if !tr.CooldownActive() {
		t.Error("stair transition did not arm the cooldown")
	}
}

func TestTransitionStairDownEntry(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = 870
	p.Rect.Y = 300

	target, ok := tr.Check(p, room, inputWith(core.ActionDown))
	if !ok || target != "cellar" {
		t.Fatalf("Check = (%q, %v), want (cellar, true)", target, ok)
	}
	if want := cfg.World.Width - 98; p.Rect.X != want {
		t.Errorf("X = %v, want %v (stair-down entry)", p.Rect.X, want)
	}
}

func TestTransitionCooldownDebounces(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 300

	if _, ok := tr.Check(p, room, inputWith(core.ActionUp)); !ok {
		t.Fatal("first stair transition did not fire")
	}

	// Put the player back on the stair. Within the cooldown window the
	// stair never fires again no matter how often it is rechecked.
	p.Reposition(50, 300)
	for i := 0; i < 5; i++ {
		if target, ok := tr.Check(p, room, inputWith(core.ActionUp)); ok {
			t.Fatalf("stair re-fired to %q during cooldown", target)
		}
	}

	// Once the cooldown decays the stair works again.
	for tr.CooldownActive() {
		tr.Tick(1.0 / 60.0)
	}
	if _, ok := tr.Check(p, room, inputWith(core.ActionUp)); !ok {
		t.Error("stair did not fire after the cooldown expired")
	}
}

func TestTransitionEdgeIgnoresCooldown(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)
	room := transitionRoom()

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 300
	if _, ok := tr.Check(p, room, inputWith(core.ActionUp)); !ok {
		t.Fatal("stair transition did not fire")
	}

	p.Reposition(0, 300)
	target, ok := tr.Check(p, room, core.NewInputFrame())
	if !ok || target != "west_wing" {
		t.Errorf("Check = (%q, %v), want edge transition despite stair cooldown", target, ok)
	}
}

func TestTransitionPriorityEdgeBeforeStair(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)

	// A stair that overlaps the left edge: the edge check still wins.
	room := &level.Room{
		ID: "corner",
		Stairs: []level.Stair{{
			Rect:      core.NewRect(0, 0, 120, 600),
			Target:    "attic",
			Direction: level.DirUp,
		}},
		Neighbors: map[level.Direction]string{
			level.DirLeft: "west_wing",
			level.DirUp:   "attic",
		},
	}

	p := NewPlayer(cfg)
	p.Rect.X = 0
	p.Rect.Y = 300

	target, ok := tr.Check(p, room, inputWith(core.ActionUp))
	if !ok || target != "west_wing" {
		t.Errorf("Check = (%q, %v), want left edge to win over the stair", target, ok)
	}
	if tr.CooldownActive() {
		t.Error("edge transition armed the stair cooldown")
	}
}

func TestTransitionStairWithoutTargetSkipped(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tr := NewTransitions(cfg)

	room := &level.Room{
		ID: "deadend",
		Stairs: []level.Stair{{
			Rect:      core.NewRect(40, 100, 60, 460),
			Direction: level.DirUp,
		}},
	}

	p := NewPlayer(cfg)
	p.Rect.X = 50
	p.Rect.Y = 300

	if target, ok := tr.Check(p, room, inputWith(core.ActionUp)); ok {
		t.Errorf("decorative stair fired a transition to %q", target)
	}
}
