package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mysticalg/ManicWilly/internal/core"
)

// holdWindow is how long a directional action stays active after a key
// press. Terminals deliver held keys as repeats, not press/release pairs,
// so each repeat re-arms the window and the action reads as held.
const holdWindow = 0.2

// KeyMapper translates Bubble Tea key messages into per-tick input frames.
// Directional keys are tracked as decaying holds; jump, confirm and pause
// are edge-triggered and consumed once per frame.
type KeyMapper struct {
	held  map[core.Action]float64
	edges map[core.Action]bool
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		held:  make(map[core.Action]float64),
		edges: make(map[core.Action]bool),
	}
}

// Press records a key message. Returns true for a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "a", "left":
		km.held[core.ActionLeft] = holdWindow
	case "d", "right":
		km.held[core.ActionRight] = holdWindow
	case "w", "up":
		km.held[core.ActionUp] = holdWindow
	case "s", "down":
		km.held[core.ActionDown] = holdWindow
	case " ":
		km.edges[core.ActionJump] = true
	case "enter":
		km.edges[core.ActionConfirm] = true
	case "p", "esc":
		km.edges[core.ActionPause] = true
	}
	return false
}

// Tick decays the hold windows by one frame.
func (km *KeyMapper) Tick(dt float64) {
	for a, remaining := range km.held {
		remaining -= dt
		if remaining <= 0 {
			delete(km.held, a)
		} else {
			km.held[a] = remaining
		}
	}
}

// Frame builds the input frame for the current tick and consumes the
// edge-triggered presses.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a := range km.held {
		frame.Set(a)
	}
	for a := range km.edges {
		frame.Set(a)
		delete(km.edges, a)
	}
	return frame
}

// GameKeyMap defines the key bindings shown in the help bar.
type GameKeyMap struct {
	Move  key.Binding
	Climb key.Binding
	Jump  key.Binding
	Pause key.Binding
	Board key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Climb, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Climb, k.Jump},
		{k.Pause, k.Board, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("a", "d", "left", "right"),
			key.WithHelp("←/→", "move"),
		),
		Climb: key.NewBinding(
			key.WithKeys("w", "s", "up", "down"),
			key.WithHelp("↑/↓", "climb"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Board: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
