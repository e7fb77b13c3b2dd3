// gemcrush is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	gemcrush list             - List game modes
//	gemcrush play             - Play a game
//	gemcrush serve            - Start SSH server for remote play
//	gemcrush scores [mode]    - Show high scores for a mode
//	gemcrush stats [player]   - Show player statistics
//	gemcrush config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.gemcrush/scores.db)
//	--config <path>     - Use a custom gemcrush.yaml
//	--player <name>     - Name stats are recorded under
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//
// Flag defaults come from GEMCRUSH_* environment variables, optionally
// loaded from a .env file in the working directory.
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush"
)

const defaultDBPath = "~/.gemcrush/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	env, err := config.LoadEnv(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registerFlags(env)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemcrush",
	Short: "Gem Crush - match-3 in your terminal",
	Long: `Gem Crush is a match-3 puzzle game played in the terminal.

Swap neighbouring gems to line up three or more of a color. Reach the
target score before your moves run out.

Available commands:
  list     - Show game modes
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View player statistics
  config   - Print the effective configuration

Examples:
  gemcrush play
  gemcrush play --mode gemcrush_classic
  gemcrush serve --ssh :2222
  gemcrush scores
  gemcrush stats alice`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		gemcrush.SetConfig(cfg)
		return nil
	},
}

// registerFlags installs the global flags with defaults taken from env.
func registerFlags(env config.Env) {
	dbPath := env.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	player := env.Player
	if player == "" {
		player = defaultPlayer()
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", dbPath, "Path to scores database")
	flags.StringVar(&flagConfigPath, "config", env.ConfigPath, "Path to custom gemcrush.yaml")
	flags.StringVar(&flagPlayer, "player", player, "Player name for stats")
	flags.StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")

	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", sshAddress(env), "SSH server address (host:port)")
}

// defaultPlayer is the OS user name, or "player".
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
