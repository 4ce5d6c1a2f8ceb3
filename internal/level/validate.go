package level

import (
	"fmt"
	"strings"
)

// ValidationError describes why a room graph failed a check.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate runs all four graph checks in order and returns the first failure.
// The checks are pure functions of the loaded data; any failure is a
// load-time data-integrity problem, never a runtime condition.
func Validate(g *Graph) error {
	if err := CheckConnectivity(g); err != nil {
		return err
	}
	if err := CheckStairs(g); err != nil {
		return err
	}
	if err := CheckFullClear(g); err != nil {
		return err
	}
	return CheckLayoutUniqueness(g)
}

// CheckConnectivity verifies that every neighbor id resolves and that a
// breadth-first traversal from the start room reaches every room.
func CheckConnectivity(g *Graph) error {
	if _, ok := g.Rooms[g.StartRoom]; !ok {
		return ValidationError{Code: "START_MISSING", Message: fmt.Sprintf("start_room %q not found", g.StartRoom)}
	}

	for _, id := range g.RoomIDs() {
		room := g.Rooms[id]
		for _, dir := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
			target, ok := room.Neighbors[dir]
			if !ok {
				continue
			}
			if _, exists := g.Rooms[target]; !exists {
				return ValidationError{
					Code:    "UNKNOWN_NEIGHBOR",
					Message: fmt.Sprintf("room %s points to unknown neighbor %s", id, target),
				}
			}
		}
	}

	visited := make(map[string]bool, len(g.Rooms))
	queue := []string{g.StartRoom}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true
		for _, next := range g.Rooms[current].Neighbors {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	if len(visited) != len(g.Rooms) {
		return ValidationError{
			Code:    "DISCONNECTED",
			Message: fmt.Sprintf("graph disconnected: visited %d of %d rooms", len(visited), len(g.Rooms)),
		}
	}

	return nil
}

// CheckStairs verifies stair/neighbor duality: every vertical neighbor link
// needs at least one stair with matching direction and target, and every
// stair direction needs a matching neighbor entry (no stray stairs).
func CheckStairs(g *Graph) error {
	for _, id := range g.RoomIDs() {
		room := g.Rooms[id]
		for _, dir := range verticalDirs {
			target, hasNeighbor := room.Neighbors[dir]
			if hasNeighbor {
				if !hasStair(room, dir, target) {
					return ValidationError{
						Code:    "MISSING_STAIR",
						Message: fmt.Sprintf("room %s missing %s stair to %s", id, dir, target),
					}
				}
				continue
			}
			for _, stair := range room.Stairs {
				if stair.Direction == dir {
					return ValidationError{
						Code:    "STRAY_STAIR",
						Message: fmt.Sprintf("room %s has stray %s stair", id, dir),
					}
				}
			}
		}
	}
	return nil
}

// CheckFullClear proves a complete playthrough is possible: a depth-first
// traversal using only legally traversable edges must reach every room, and
// the collectibles gathered along the way must account for every item.
// Horizontal edges are always usable; vertical edges re-require a matching
// stair, as a dynamic traversal proof rather than a static check.
func CheckFullClear(g *Graph) error {
	if _, ok := g.Rooms[g.StartRoom]; !ok {
		return ValidationError{Code: "START_MISSING", Message: fmt.Sprintf("start_room %q not found", g.StartRoom)}
	}

	visited := make(map[string]bool, len(g.Rooms))
	collected := 0
	stack := []string{g.StartRoom}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		room := g.Rooms[id]
		collected += len(room.Collectibles)

		for _, dir := range []Direction{DirLeft, DirRight} {
			if next, ok := room.Neighbors[dir]; ok && !visited[next] {
				stack = append(stack, next)
			}
		}

		for _, dir := range verticalDirs {
			next, ok := room.Neighbors[dir]
			if !ok {
				continue
			}
			if !hasStair(room, dir, next) {
				return ValidationError{
					Code:    "UNTRAVERSABLE",
					Message: fmt.Sprintf("room %s cannot traverse %s to %s", id, dir, next),
				}
			}
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}

	if len(visited) != len(g.Rooms) {
		return ValidationError{
			Code:    "UNREACHABLE",
			Message: fmt.Sprintf("full-clear traversal reached %d / %d rooms", len(visited), len(g.Rooms)),
		}
	}

	expected := g.CollectibleCount()
	if collected != expected {
		return ValidationError{
			Code:    "ITEM_MISMATCH",
			Message: fmt.Sprintf("full-clear collected %d / %d items", collected, expected),
		}
	}

	return nil
}

// CheckLayoutUniqueness fails when two rooms share an identical static layout
// (platforms, walls, and stair direction+rect tuples). Copy-pasted rooms are
// a level-design defect.
func CheckLayoutUniqueness(g *Graph) error {
	seen := make(map[string]string, len(g.Rooms))
	for _, id := range g.RoomIDs() {
		sig := layoutSignature(g.Rooms[id])
		if prev, dup := seen[sig]; dup {
			return ValidationError{
				Code:    "DUPLICATE_LAYOUT",
				Message: fmt.Sprintf("rooms %s and %s share identical layout", prev, id),
			}
		}
		seen[sig] = id
	}
	return nil
}

// layoutSignature builds a structural fingerprint of a room's static
// geometry, in declared order.
func layoutSignature(room *Room) string {
	var sb strings.Builder
	sb.WriteString("platforms:")
	for _, p := range room.Platforms {
		fmt.Fprintf(&sb, "(%g,%g,%g,%g)", p.X, p.Y, p.W, p.H)
	}
	sb.WriteString("|walls:")
	for _, w := range room.Walls {
		fmt.Fprintf(&sb, "(%g,%g,%g,%g)", w.X, w.Y, w.W, w.H)
	}
	sb.WriteString("|stairs:")
	for _, s := range room.Stairs {
		fmt.Fprintf(&sb, "(%s,%g,%g,%g,%g)", s.Direction, s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H)
	}
	return sb.String()
}

func hasStair(room *Room, dir Direction, target string) bool {
	for _, stair := range room.Stairs {
		if stair.Direction == dir && stair.Target == target {
			return true
		}
	}
	return false
}
