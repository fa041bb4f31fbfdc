package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retrovault/internal/storage"
)

const topScores = 10

func (a *app) scoresCmd() *cobra.Command {
	var clearScores bool

	cmd := &cobra.Command{
		Use:   "scores <game>",
		Short: "Show high scores for a game",
		Long: `Display the top 10 runs for the specified game.

Examples:
  retrovault scores tetro-fall
  retrovault scores minefield --clear`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookupGame(args[0])
			if err != nil {
				return err
			}
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clearScores {
				if err := store.ClearScores(e.Slug); err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared scores for %s.\n", e.Title)
				return nil
			}

			scores, err := store.TopScores(e.Slug, topScores)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "High Scores - %s\n\n", e.Title)
			if len(scores) == 0 {
				fmt.Fprintln(out, "No scores recorded yet.")
				fmt.Fprintf(out, "\nPlay 'retrovault play %s' to set the first high score!\n", e.Slug)
				return nil
			}
			printScores(out, scores)

			if stats, err := store.GetGameStats(e.Slug); err == nil {
				fmt.Fprintf(out, "\nBest: %d  Runs: %d  Wins: %d  Average: %.0f\n",
					stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearScores, "clear", false, "Delete every stored score for the game")
	return cmd
}

func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, s := range scores {
		result := "-"
		if s.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-6s  %s\n", i+1, s.Score, result, s.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func (a *app) historyCmd() *cobra.Command {
	var clearHistory bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently played games",
		Long: `Lists the last 10 games played, newest first.

Examples:
  retrovault history
  retrovault history --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if clearHistory {
				if err := store.ClearHistory(); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cleared play history.")
				return nil
			}

			entries, err := store.History(storage.HistoryLimit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "Nothing played yet.")
				return nil
			}
			fmt.Fprintln(out, "Recently played:")
			for i, e := range entries {
				fmt.Fprintf(out, "  %2d. %-20s  %s\n", i+1, e.Title, e.PlayedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "Delete the play history")
	return cmd
}
