package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/platform/tui"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blockpilot SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the mode menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blockpilot/host_key

Examples:
  blockpilot serve                           # Listen on :23234 with auto-generated key
  blockpilot serve --ssh :2222               # Listen on port 2222
  blockpilot serve --host-key ./my_host_key  # Use specific host key
  blockpilot serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagPlayer, "player", "", "Pilot name for every session")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
		Game: registry.Options{
			ConfigPath: flagConfig,
			Difficulty: flagDifficulty,
			Player:     flagPlayer,
		},
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting blockpilot SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
