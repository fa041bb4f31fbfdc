package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retrovault/internal/platform/tui"
)

func (a *app) serveCmd() *cobra.Command {
	var (
		addr        string
		hostKey     string
		idleTimeout time.Duration
		difficulty  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the arcade SSH server",
		Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the game picker menu.
Scores are stored per server: all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.retrovault/host_key

Examples:
  retrovault serve                           # Listen on RETROVAULT_SSH_ADDR (:2222)
  retrovault serve --ssh :23234              # Listen on port 23234
  retrovault serve --host-key ./my_host_key  # Use specific host key
  retrovault serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.applyDifficulty(difficulty); err != nil {
				return err
			}
			store := a.openStoreOptional()
			if store != nil {
				defer store.Close()
			}

			cfg := tui.DefaultSSHServerConfig()
			cfg.Address = addr
			cfg.HostKeyPath = hostKey
			cfg.IdleTimeout = idleTimeout
			cfg.TickRate = a.fps

			server, err := tui.NewSSHServer(cfg, store, a.logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving RetroVault on %s (Ctrl+C to stop)\n", server.Addr())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "ssh", a.settings.SSHAddr, "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (generated if not specified)")
	cmd.Flags().DurationVar(&idleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle for this long")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty preset for every tunable game")
	return cmd
}
