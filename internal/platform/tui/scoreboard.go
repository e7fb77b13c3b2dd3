package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemcrush/internal/registry"
	"github.com/vovakirdan/gemcrush/internal/storage"
)

const (
	minWidthForSidebar = 80  // Below this the mode list collapses to one line
	sidebarWidth       = 22  // Mode and player list
	maxScores          = 100 // Rows loaded per mode
	maxPlayers         = 5   // Players listed in the sidebar
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
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
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best games per mode and the top players.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	cursor    int // Index into modes
	store     *storage.Store
	scores    []storage.ScoreEntry
	summary   *storage.GameStats    // Aggregate for the current mode
	players   []storage.PlayerStats // Top players by total score
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Opened from a running game; back returns to it
}

// NewScoreboardModel creates a scoreboard over every registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()

	if len(m.modes) > 0 {
		m.loadScores(m.modes[0].ID)
	}
	m.loadPlayers()

	return m
}

// selectGame moves the cursor to the mode with the given ID, if listed.
func (m *ScoreboardModel) selectGame(id string) {
	for i, g := range m.modes {
		if g.ID == id {
			m.cursor = i
			m.loadScores(id)
			return
		}
	}
}

// moveCursor steps through the modes, wrapping at both ends.
func (m *ScoreboardModel) moveCursor(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.loadScores(m.modes[m.cursor].ID)
}

// loadPlayers loads the player leaderboard.
func (m *ScoreboardModel) loadPlayers() {
	m.players = nil
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	if players, err := m.store.TopPlayers(ctx, maxPlayers); err == nil {
		m.players = players
	}
}

// loadScores loads the table rows and summary for a mode.
func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.summary = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if summary, err := m.store.GetGameStats(gameID); err == nil {
			m.summary = summary
		}
	}
	m.updateTableRows()
}

// newTable builds the score table sized to the current window.
func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 6},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	avail := m.width - 6
	if m.width >= minWidthForSidebar {
		avail -= sidebarWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows refills the table from the loaded scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			resultLabel(s.Won),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func resultLabel(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.moveCursor(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.updateTableRows()
		return m, nil
	}

	// Scrolling and anything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}

	var body string
	if m.width >= minWidthForSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(sidebarWidth).Render(m.sidebar()), "  ",
			panelStyle.Render(m.scoresPanel()))
	} else {
		body = centerText(m.modeLine(), m.width) + "\n\n" + panelStyle.Render(m.scoresPanel())
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists the modes and the top players.
func (m ScoreboardModel) sidebar() string {
	rule := strings.Repeat("-", sidebarWidth-4)

	var b strings.Builder
	b.WriteString("Modes\n" + rule + "\n")
	for i, g := range m.modes {
		line := "  " + g.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + g.Title)
		}
		b.WriteString(line + "\n")
	}

	if len(m.players) > 0 {
		b.WriteString("\nPlayers  W/L total\n" + rule + "\n")
		for _, p := range m.players {
			b.WriteString(playerLine(p, sidebarWidth-4) + "\n")
		}
	}
	return b.String()
}

// modeLine is the collapsed mode picker for narrow windows.
func (m ScoreboardModel) modeLine() string {
	if len(m.modes) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s  %d/%d >", m.modes[m.cursor].Title, m.cursor+1, len(m.modes))
}

// scoresPanel is the mode summary above the score table.
func (m ScoreboardModel) scoresPanel() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No games recorded yet.\nFinish a game to set a high score!")
	}

	summary := ""
	if s := m.summary; s != nil && s.GamesCount > 0 {
		summary = dimStyle.Render(fmt.Sprintf("Best %d  Avg %.0f  Games %d  Wins %d",
			s.HighScore, s.AvgScore, s.GamesCount, s.Wins)) + "\n\n"
	}
	return summary + m.table.View()
}

// playerLine formats a leaderboard entry as "name W/L total" within width.
func playerLine(p storage.PlayerStats, width int) string {
	tail := fmt.Sprintf(" %d/%d %d", p.Wins, p.Losses, p.TotalScore)
	name := p.Player
	if room := width - len(tail); len(name) > room && room > 1 {
		name = name[:room-1] + "."
	}
	return name + tail
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// Returns true if user pressed back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
