// Package gemcrush provides the Gem Crush match-3 game for the terminal.
package gemcrush

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/gemcrush/internal/config"
	platformcore "github.com/vovakirdan/gemcrush/internal/core"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush/core"
	"github.com/vovakirdan/gemcrush/internal/registry"
)

// Mode selects a rule set.
type Mode string

const (
	ModeStandard Mode = "gemcrush"
	ModeClassic  Mode = "gemcrush_classic"
)

// enginePassesPerSecond is how often the board resolves, independent of
// the frame rate.
const enginePassesPerSecond = 5

// Game implements Gem Crush on top of the match-3 engine.
type Game struct {
	mode    Mode
	cfg     config.GemCrushConfig
	session *core.Session

	// Screen dimensions
	screenW int
	screenH int

	tick        uint64
	engineEvery uint64 // Frames between engine passes
	tooSmall    bool

	cursor   core.Position
	status   string // One-line feedback under the board
	lastTick core.TickResult

	layout layout
}

// Package-level configuration, set by the CLI before games are created.
var (
	cfgMu     sync.RWMutex
	loadedCfg *config.GemCrushConfig
)

// SetConfig installs the configuration used by games created afterwards.
func SetConfig(cfg config.GemCrushConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	loadedCfg = &cfg
}

// ConfigFor returns the effective configuration for a mode.
// Classic mode always scores chains without clearing them and keeps the
// spent move budget across restarts.
func ConfigFor(mode Mode) config.GemCrushConfig {
	cfgMu.RLock()
	cfg := config.DefaultGemCrushConfig()
	if loadedCfg != nil {
		cfg = *loadedCfg
	}
	cfgMu.RUnlock()

	if mode == ModeClassic {
		cfg.Rules.ClearChains = false
		cfg.Rules.ResetMoves = false
	}
	return cfg
}

// RulesFromConfig converts the YAML rule set into engine rules.
func RulesFromConfig(cfg config.GemCrushConfig) core.Rules {
	return core.Rules{
		Size:        cfg.Board.Size,
		MoveBudget:  cfg.Rules.MoveBudget,
		WinScore:    cfg.Rules.WinScore,
		ClearChains: cfg.Rules.ClearChains,
		ResetMoves:  cfg.Rules.ResetMoves,
	}
}

func init() {
	registry.Register(string(ModeStandard), func() registry.Game {
		return New(ModeStandard)
	})
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
}

// New creates a Gem Crush game in the given mode.
func New(mode Mode) *Game {
	return NewWithConfig(mode, ConfigFor(mode))
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(mode Mode, cfg config.GemCrushConfig) *Game {
	return &Game{
		mode:        mode,
		cfg:         cfg,
		engineEvery: 1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Gem Crush (Classic)"
	}
	return "Gem Crush"
}

// Reset initializes or restarts the game.
// The first call creates the session; later calls restart it with a palette
// seeded from cfg, so the move budget follows the reset_moves rule.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	palette := core.NewPalette(cfg.Seed)

	if g.session == nil {
		s, err := core.NewSession(RulesFromConfig(g.cfg), palette)
		if err != nil {
			// Config is validated on load; fall back to engine defaults.
			g.status = fmt.Sprintf("bad rules: %v", err)
			s, err = core.NewSession(core.DefaultRules(), palette)
			if err != nil {
				// Step and Render treat a nil session as not started.
				g.status = fmt.Sprintf("cannot start: %v", err)
				return
			}
		}
		g.session = s
	} else {
		g.session.ResetWith(palette)
		g.status = ""
	}

	g.tick = 0
	g.lastTick = core.TickResult{}
	g.engineEvery = 1
	if cfg.TickRate > enginePassesPerSecond {
		g.engineEvery = uint64(cfg.TickRate / enginePassesPerSecond)
	}
	g.cursor = core.P(0, 0)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	size := g.cfg.Board.Size
	if g.session != nil {
		size = g.session.Rules().Size
	}
	g.layout = computeLayout(width, height, size, g.cfg.Display)
	g.tooSmall = !g.layout.fits
}

// Session returns the underlying engine session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	for _, click := range in.Clicks {
		g.handleClick(click)
	}
	g.handleKeys(in)

	var ended bool
	if g.tick%g.engineEvery == 0 {
		res := g.session.Tick()
		if res.Delta > 0 || res.Cleared > 0 || res.Refilled > 0 || res.Ended {
			g.lastTick = res
		}
		ended = res.Ended
	}

	return platformcore.StepResult{State: g.State(), Ended: ended}
}

// handleClick maps a screen click to a board position and selects it.
func (g *Game) handleClick(p platformcore.Point) {
	pos, err := g.layout.positionAt(p.X, p.Y, g.session.Board())
	if err != nil {
		return
	}
	g.cursor = pos
	g.selectAt(pos)
}

// handleKeys moves the cursor and applies keyboard picks.
func (g *Game) handleKeys(in platformcore.InputFrame) {
	size := g.session.Rules().Size
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, size-1)
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, size-1)
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, size-1)
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, size-1)
	}

	if in.Has(platformcore.ActionCancel) {
		g.session.ClearSelection()
		g.status = ""
	}
	if in.Has(platformcore.ActionSelect) {
		g.selectAt(g.cursor)
	}
}

// selectAt forwards a pick to the session and updates the status line.
func (g *Game) selectAt(pos core.Position) {
	res, err := g.session.Select(pos)
	if errors.Is(err, core.ErrInvalidPosition) {
		return
	}
	switch res {
	case core.MoveSelected:
		g.status = fmt.Sprintf("Selected %s", pos)
	case core.MoveSwapped:
		g.status = "Swapped"
	case core.MoveRejected:
		g.status = "Not adjacent, move spent"
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == core.StateGameOver,
		Won:      g.session.Won(),
		Paused:   g.tooSmall,
	}
}

// Controls returns the control hints for the current state.
// Restart is only offered once the game is over.
func (g *Game) Controls() string {
	if g.session != nil && g.session.State() == core.StateGameOver {
		return "R: restart | Tab: scores | Q: quit"
	}
	return "Click/Space: pick | Arrows/HJKL: move | Esc: drop pick | Q: quit"
}
