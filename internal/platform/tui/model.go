package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/core"
	"github.com/vovakirdan/gemcrush/internal/registry"
	"github.com/vovakirdan/gemcrush/internal/storage"
)

// statsTimeout bounds each stats query made from the UI loop.
const statsTimeout = 2 * time.Second

// Options configures a game model beyond the game and runtime config.
type Options struct {
	Player        string      // Name stats are recorded under
	Logger        *log.Logger // Defaults to a discarding logger
	ScreenshotDir string      // Defaults to ~/.gemcrush/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	stats      storage.PlayerStats
	best       int // Best recorded score for this game
	scoreboard *ScoreboardModel // Non-nil while the scoreboard is open
	notice     string           // Transient message in the footer
	quitting   bool
	recorded   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// Player stats are loaded here; a player with no history starts at zero.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		stats:      storage.PlayerStats{Player: opts.Player},
	}
	m.help.Width = cfg.ScreenW
	m.loadStats()
	return m
}

// gameHeight is the screen height left for the game above the footer.
func gameHeight(h int) int {
	return max(h-1, 0)
}

// loadStats reads the player's counters from the store.
func (m *Model) loadStats() {
	if m.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	stats, err := m.store.LoadStats(ctx, m.opts.Player)
	if err != nil {
		m.logger.Warn("could not load player stats", "player", m.opts.Player, "error", err)
	} else {
		m.stats = stats
	}

	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return
	}
	m.best = best
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the footer row removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Scores):
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		sb.selectGame(m.game.ID())
		m.scoreboard = &sb
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateScoreboard forwards messages to the open scoreboard. Ticks keep
// flowing so the game loop survives while the board is shown.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.resizeGame()
	}

	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.resizeGame()
	return m, nil
}

// resizeGame tells the game about the new size, resetting only games that
// cannot adapt in place.
func (m Model) resizeGame() {
	cfg := m.gameConfig()
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(cfg)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.recorded = false
		m.notice = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished game once
	if m.gameState.GameOver && !m.recorded {
		m.recordGame()
		m.recorded = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordGame saves the score and folds the result into the player's stats.
// Storage failures are logged; the counters still update in memory.
func (m *Model) recordGame() {
	score, won := m.gameState.Score, m.gameState.Won
	m.best = max(m.best, score)
	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.opts.Player,
		"score", score,
		"won", won,
	)

	if m.store == nil {
		m.stats.Record(score, won)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	stats, err := m.store.RecordGame(ctx, m.game.ID(), m.opts.Player, score, won)
	if err != nil {
		m.logger.Warn("could not record game", "player", m.opts.Player, "error", err)
		m.stats.Record(score, won)
		m.notice = "stats not saved"
		return
	}
	m.stats = stats
}

// Stats returns the player's counters as last loaded or recorded.
func (m Model) Stats() storage.PlayerStats {
	return m.stats
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(config.AppDir(), "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
	m.notice = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)

	if m.help.ShowAll {
		return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
	}
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.footer())
}

// footer is the one-line player summary under the game.
func (m Model) footer() string {
	line := fmt.Sprintf(" %s  W:%d L:%d  Total:%d  Best:%d",
		m.stats.Player, m.stats.Wins, m.stats.Losses, m.stats.TotalScore, m.best)
	if m.notice != "" {
		line += "  [" + m.notice + "]"
	}
	return line + "  " + m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks select gems
	)

	_, err := p.Run()
	return err
}
