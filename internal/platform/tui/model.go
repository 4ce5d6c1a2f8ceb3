package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mysticalg/ManicWilly/internal/core"
	"github.com/mysticalg/ManicWilly/internal/game"
	"github.com/mysticalg/ManicWilly/internal/storage"
)

// Model is the Bubble Tea model for a ManicWilly session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	mapper *KeyMapper
	keys   GameKeyMap
	help   help.Model

	board     ScoreboardModel
	showBoard bool

	quitting   bool
	clearSaved bool // Whether the clear time has been persisted for this win
	bestTime   float64
}

// NewModel creates a Bubble Tea model for the given game session.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// The bottom row is reserved for the help bar.
	gameH := cfg.ScreenH - 1
	if gameH < 1 {
		gameH = 1
	}

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, gameH),
		store:  store,
		config: cfg,
		mapper: NewKeyMapper(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		board:  NewScoreboardModel(store, cfg.ScreenW, cfg.ScreenH),
	}
	if store != nil {
		if best, err := store.BestTime(); err == nil {
			m.bestTime = best
		}
	}
	return m
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBoard {
		if m.board.Update(msg) {
			m.showBoard = false
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// The scoreboard is reachable from the splash and win screens only;
	// gameplay keys stay dedicated to the game.
	phase := m.game.State().Phase
	if msg.String() == "h" && phase != game.PhasePlaying {
		m.board.reload()
		m.showBoard = true
		return m, nil
	}

	if m.mapper.Press(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The simulation world has a
// fixed size; only the projection surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameH := msg.Height - 1
	if gameH < 1 {
		gameH = 1
	}
	m.screen.Resize(msg.Width, gameH)
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.showBoard {
		return m, tickCmd(m.config.TickRate)
	}

	dt := 1.0 / float64(m.config.TickRate)
	m.mapper.Tick(dt)
	frame := m.mapper.Frame()

	st := m.game.Step(frame)

	// Persist the clear time on win (once)
	if st.Phase == game.PhaseWin {
		if !m.clearSaved {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, the win screen shows regardless
				m.store.SaveClearTime(st.Elapsed)
				if best, err := m.store.BestTime(); err == nil {
					m.bestTime = best
				}
			}
			m.clearSaved = true
		}
		if frame.Has(core.ActionConfirm) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}

	m.game.Render(m.screen)
	if m.game.State().Phase != game.PhasePlaying {
		y := m.screen.Height() - 2
		if m.bestTime > 0 {
			m.screen.DrawTextCentered(y-1, "Best clear: "+FormatClearTime(m.bestTime))
		}
		m.screen.DrawTextCenteredColored(y, "Press H for the fastest clears", core.ColorGray)
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
