package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retrovault/internal/catalog"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <game>",
		Short: "Show how to play a game",
		Long: `Renders the game's card: description, category and controls.

Examples:
  retrovault info minefield`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupGame(args[0])
			if err != nil {
				return err
			}

			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = min(w, 100)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, catalog.RenderCard(e, width))

			// Stats are a bonus; a missing database is not an error here.
			store, err := a.openStore()
			if err != nil {
				a.logger.Debug("info without stats", "error", err)
				return nil
			}
			defer store.Close()
			if stats, err := store.GetGameStats(e.Slug); err == nil && stats.GamesCount > 0 {
				fmt.Fprintf(out, "  Best: %d  Runs: %d  Wins: %d\n", stats.HighScore, stats.GamesCount, stats.Wins)
			}
			return nil
		},
	}
}
