package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a mode runs with, as YAML.

The file is looked up in this order:
  --config path
  ~/.gemcrush/configs/gemcrush.yaml
  ./configs/gemcrush.yaml
  built-in defaults

Copy the output to one of those paths to customize the game.

Examples:
  gemcrush config
  gemcrush config gemcrush_classic > ~/.gemcrush/configs/gemcrush.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	mode := gemcrush.ModeStandard
	if len(args) > 0 {
		mode = gemcrush.Mode(args[0])
	}
	if mode != gemcrush.ModeStandard && mode != gemcrush.ModeClassic {
		return fmt.Errorf("unknown mode %q (run 'gemcrush list' to see modes)", mode)
	}

	data, err := configYAML(mode)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// configYAML renders the configuration mode runs with.
func configYAML(mode gemcrush.Mode) ([]byte, error) {
	return config.Marshal(gemcrush.ConfigFor(mode))
}
