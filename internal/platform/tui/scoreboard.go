package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mysticalg/ManicWilly/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard overlay.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h", "b"),
			key.WithHelp("esc/h", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11")).
	Padding(0, 1)

// ScoreboardModel shows the fastest recorded clears in a table.
type ScoreboardModel struct {
	store  *storage.Store
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
}

// NewScoreboardModel creates a scoreboard over the given store.
// The store may be nil, in which case the board is empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Clear time", Width: 14},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

// reload refreshes the table rows from the store.
func (m *ScoreboardModel) reload() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	entries, err := m.store.FastestClears(10)
	if err != nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			FormatClearTime(e.Seconds),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Update handles scoreboard navigation. Returns true when the overlay
// should close.
func (m *ScoreboardModel) Update(msg tea.KeyMsg) bool {
	if key.Matches(msg, m.keys.Back) {
		return true
	}
	m.table, _ = m.table.Update(msg)
	return false
}

// Resize adjusts the overlay to the terminal size.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the scoreboard overlay.
func (m ScoreboardModel) View() string {
	title := scoreboardTitleStyle.Render("Fastest clears")
	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = lipgloss.NewStyle().Faint(true).Render("No clears recorded yet.")
	}
	helpView := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", helpView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// FormatClearTime renders a clear time in seconds as m:ss.s.
func FormatClearTime(seconds float64) string {
	mins := int(seconds) / 60
	rem := seconds - float64(mins*60)
	return fmt.Sprintf("%d:%04.1f", mins, rem)
}
