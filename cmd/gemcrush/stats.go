package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [player]",
	Short: "Show player statistics",
	Long: `Display wins, losses and total score for a player
(default: --player). With --top, list the best players instead.

Examples:
  gemcrush stats
  gemcrush stats alice
  gemcrush stats --top
  gemcrush stats alice --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var (
	flagTop   bool
	flagReset bool
)

func init() {
	statsCmd.Flags().BoolVar(&flagTop, "top", false, "List players by total score")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Zero the player's wins, losses and total score")
}

func runStats(cmd *cobra.Command, args []string) error {
	player := flagPlayer
	if len(args) > 0 {
		player = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()

	if flagTop {
		players, err := store.TopPlayers(ctx, scoresLimit)
		if err != nil {
			return fmt.Errorf("error retrieving players: %w", err)
		}
		if len(players) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}
		fmt.Printf("  %-4s  %-16s  %-5s  %-6s  %s\n", "Rank", "Player", "Wins", "Losses", "Total")
		fmt.Printf("  %-4s  %-16s  %-5s  %-6s  %s\n", "----", "------", "----", "------", "-----")
		for i, p := range players {
			fmt.Printf("  %-4d  %-16s  %-5d  %-6d  %d\n", i+1, p.Player, p.Wins, p.Losses, p.TotalScore)
		}
		return nil
	}

	if flagReset {
		if err := store.SaveStats(ctx, storage.PlayerStats{Player: player}); err != nil {
			return err
		}
		fmt.Printf("Reset stats for %s.\n", player)
		return nil
	}

	stats, err := store.LoadStats(ctx, player)
	if err != nil {
		return err
	}

	fmt.Printf("Stats - %s\n", stats.Player)
	fmt.Println()
	fmt.Printf("  Games:        %d\n", stats.Games())
	fmt.Printf("  Wins:         %d\n", stats.Wins)
	fmt.Printf("  Losses:       %d\n", stats.Losses)
	fmt.Printf("  Total score:  %d\n", stats.TotalScore)
	return nil
}
