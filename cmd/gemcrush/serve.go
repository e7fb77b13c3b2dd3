package main

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemcrush/internal/config"
	"github.com/vovakirdan/gemcrush/internal/games/gemcrush"
	"github.com/vovakirdan/gemcrush/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeMode   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Gem Crush SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Stats are recorded under the
SSH user name; all users share the server's leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gemcrush/host_key

The default address comes from GEMCRUSH_SSH_HOST and GEMCRUSH_SSH_PORT.

Examples:
  gemcrush serve                           # Listen on 0.0.0.0:2222
  gemcrush serve --ssh :23234              # Listen on port 23234
  gemcrush serve --mode gemcrush_classic   # Serve classic rules
  gemcrush serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", string(gemcrush.ModeStandard), "Game mode for every connection")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// sshAddress is the default listen address from the environment.
func sshAddress(env config.Env) string {
	return net.JoinHostPort(env.SSHHost, strconv.Itoa(env.SSHPort))
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		GameID:      flagServeMode,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh -p <port> <host>")
	return server.ListenAndServe()
}
