// Package config provides YAML-based game configuration and environment
// loading for the gemcrush platform.
package config

import (
	"errors"
	"fmt"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 12
)

// GemCrushConfig contains all configuration for the Gem Crush game.
type GemCrushConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"` // Rows and columns
}

// RulesConfig defines scoring targets and the move budget.
type RulesConfig struct {
	MoveBudget  int  `yaml:"move_budget"`  // Swap attempts per game
	WinScore    int  `yaml:"win_score"`    // Score that ends the game as a win
	ClearChains bool `yaml:"clear_chains"` // Empty runs of three before gravity
	ResetMoves  bool `yaml:"reset_moves"`  // Restore the budget on restart
}

// DisplayConfig defines how a board cell maps to terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Terminal columns per gem
	CellHeight int `yaml:"cell_height"` // Terminal rows per gem
}

// Validate reports every invalid field at once.
func (c GemCrushConfig) Validate() error {
	var errs []error
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size must be in [%d, %d], got %d", MinBoardSize, MaxBoardSize, c.Board.Size))
	}
	if c.Rules.MoveBudget <= 0 {
		errs = append(errs, fmt.Errorf("rules.move_budget must be positive, got %d", c.Rules.MoveBudget))
	}
	if c.Rules.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("rules.win_score must be positive, got %d", c.Rules.WinScore))
	}
	if c.Display.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("display.cell_width must be at least 1, got %d", c.Display.CellWidth))
	}
	if c.Display.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("display.cell_height must be at least 1, got %d", c.Display.CellHeight))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
