package config

import (
	_ "embed"
)

//go:embed defaults/gemcrush.yaml
var defaultGemCrushYAML []byte

// DefaultGemCrushConfig returns the hardcoded Gem Crush configuration.
func DefaultGemCrushConfig() GemCrushConfig {
	return GemCrushConfig{
		Board: BoardConfig{
			Size: 6,
		},
		Rules: RulesConfig{
			MoveBudget:  20,
			WinScore:    100,
			ClearChains: true,
			ResetMoves:  true,
		},
		Display: DisplayConfig{
			CellWidth:  4,
			CellHeight: 2,
		},
	}
}

// ClassicGemCrushConfig returns the configuration of the classic mode:
// runs are scored but never removed, and restarts keep the spent budget.
func ClassicGemCrushConfig() GemCrushConfig {
	cfg := DefaultGemCrushConfig()
	cfg.Rules.ClearChains = false
	cfg.Rules.ResetMoves = false
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGemCrushYAML
}
