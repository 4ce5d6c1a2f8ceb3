package level

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mysticalg/ManicWilly/internal/core"
)

//go:embed rooms.yaml
var defaultRoomsYAML []byte

// yamlGraph mirrors the on-disk level file structure.
type yamlGraph struct {
	StartRoom string              `yaml:"start_room"`
	Rooms     map[string]yamlRoom `yaml:"rooms"`
}

type yamlRoom struct {
	Name         string            `yaml:"name"`
	Platforms    [][]float64       `yaml:"platforms"`
	Walls        [][]float64       `yaml:"walls,omitempty"`
	Stairs       []yamlStair       `yaml:"stairs,omitempty"`
	Collectibles [][]float64       `yaml:"collectibles"`
	Enemies      []yamlEnemy       `yaml:"enemies"`
	Neighbors    map[string]string `yaml:"neighbors"`
}

type yamlStair struct {
	Rect      []float64 `yaml:"rect"`
	Target    string    `yaml:"target,omitempty"`
	Direction string    `yaml:"direction"`
}

type yamlEnemy struct {
	Path  [][]float64 `yaml:"path"`
	Speed float64     `yaml:"speed"`
}

// LoadDefault parses the level set embedded in the binary.
func LoadDefault() (*Graph, error) {
	return Parse(defaultRoomsYAML)
}

// LoadFile reads and parses a level file from disk.
func LoadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level file %s: %w", path, err)
	}
	return g, nil
}

// Parse unmarshals level YAML and applies the strict entry schema.
// Structural problems (malformed tuples, bad directions, non-positive sizes)
// are rejected here; graph-level invariants are the validator's job.
func Parse(data []byte) (*Graph, error) {
	var yg yamlGraph
	if err := yaml.Unmarshal(data, &yg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yg.StartRoom == "" {
		return nil, fmt.Errorf("level data: start_room is required")
	}
	if len(yg.Rooms) == 0 {
		return nil, fmt.Errorf("level data: rooms map is empty")
	}

	g := &Graph{
		StartRoom: yg.StartRoom,
		Rooms:     make(map[string]*Room, len(yg.Rooms)),
	}

	for id, yr := range yg.Rooms {
		room, err := buildRoom(id, yr)
		if err != nil {
			return nil, err
		}
		g.Rooms[id] = room
	}

	return g, nil
}

func buildRoom(id string, yr yamlRoom) (*Room, error) {
	if yr.Name == "" {
		return nil, fmt.Errorf("room %q: name is required", id)
	}

	room := &Room{
		ID:        id,
		Name:      yr.Name,
		Neighbors: make(map[Direction]string, len(yr.Neighbors)),
	}

	var err error
	if room.Platforms, err = parseRects(id, "platform", yr.Platforms); err != nil {
		return nil, err
	}
	if room.Walls, err = parseRects(id, "wall", yr.Walls); err != nil {
		return nil, err
	}

	for i, ys := range yr.Stairs {
		rect, rectErr := parseRect(ys.Rect)
		if rectErr != nil {
			return nil, fmt.Errorf("room %q: stair %d: %w", id, i, rectErr)
		}
		dir := Direction(ys.Direction)
		if !dir.Vertical() {
			return nil, fmt.Errorf("room %q: stair %d: direction must be up or down, got %q", id, i, ys.Direction)
		}
		room.Stairs = append(room.Stairs, Stair{Rect: rect, Target: ys.Target, Direction: dir})
	}

	for i, c := range yr.Collectibles {
		if len(c) != 2 {
			return nil, fmt.Errorf("room %q: collectible %d: expected [x, y], got %d values", id, i, len(c))
		}
		room.Collectibles = append(room.Collectibles, core.V(c[0], c[1]))
	}

	for i, ye := range yr.Enemies {
		if len(ye.Path) == 0 {
			return nil, fmt.Errorf("room %q: enemy %d: path needs at least one waypoint", id, i)
		}
		if ye.Speed <= 0 {
			return nil, fmt.Errorf("room %q: enemy %d: speed must be positive, got %v", id, i, ye.Speed)
		}
		spec := EnemySpec{Speed: ye.Speed}
		for j, p := range ye.Path {
			if len(p) != 2 {
				return nil, fmt.Errorf("room %q: enemy %d: waypoint %d: expected [x, y], got %d values", id, i, j, len(p))
			}
			spec.Path = append(spec.Path, core.V(p[0], p[1]))
		}
		room.Enemies = append(room.Enemies, spec)
	}

	for dirStr, target := range yr.Neighbors {
		dir := Direction(dirStr)
		if !dir.Valid() {
			return nil, fmt.Errorf("room %q: unknown neighbor direction %q", id, dirStr)
		}
		if target == "" {
			return nil, fmt.Errorf("room %q: neighbor %s has empty target", id, dir)
		}
		room.Neighbors[dir] = target
	}

	return room, nil
}

func parseRects(roomID, kind string, raw [][]float64) ([]core.Rect, error) {
	rects := make([]core.Rect, 0, len(raw))
	for i, tuple := range raw {
		rect, err := parseRect(tuple)
		if err != nil {
			return nil, fmt.Errorf("room %q: %s %d: %w", roomID, kind, i, err)
		}
		rects = append(rects, rect)
	}
	return rects, nil
}

func parseRect(tuple []float64) (core.Rect, error) {
	if len(tuple) != 4 {
		return core.Rect{}, fmt.Errorf("expected [x, y, width, height], got %d values", len(tuple))
	}
	if tuple[2] <= 0 || tuple[3] <= 0 {
		return core.Rect{}, fmt.Errorf("width and height must be positive, got %vx%v", tuple[2], tuple[3])
	}
	return core.NewRect(tuple[0], tuple[1], tuple[2], tuple[3]), nil
}
