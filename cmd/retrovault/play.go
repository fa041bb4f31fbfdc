package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/platform/tui"
)

func (a *app) playCmd() *cobra.Command {
	var (
		configPath string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "play <game>",
		Short: "Play a game",
		Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Primary action (jump, flap, fire, drop, click)
  Enter        - Confirm
  F            - Flag (Minefield)
  1/2          - Buy upgrades (Clicker Mania)
  P            - Pause (Ctrl+P in Word Guess, where letters are guesses)
  R            - Play again (after game over)
  B/Esc        - Back (after game over or while paused)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options (runner games and Brick Buster). Without a preset the
games keep their base speed and gaps:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  retrovault play flappy-jetpack
  retrovault play geo-dash --difficulty hard
  retrovault play sky-dodge --config ./my-sky-dodge.yaml`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{interactive: "true"},
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := lookupGame(args[0])
			if err != nil {
				return err
			}
			preset, err := a.applyDifficulty(difficulty)
			if err != nil {
				return err
			}
			if configPath != "" {
				if err := config.Check(e.Slug, configPath); err != nil {
					return err
				}
				config.SetOverride(e.Slug, config.Override{Path: configPath, Preset: preset})
			}

			store := a.openStoreOptional()
			if store != nil {
				defer store.Close()
			}

			a.logger.Info("play", "game", e.Slug, "difficulty", preset, "seed", a.seed)
			session := tui.NewGameSession(e.Slug, tui.Options{
				Store:  store,
				Logger: a.logger,
				Config: a.runtimeConfig(),
			})
			if err := tui.Run(session); err != nil {
				return fmt.Errorf("running %s: %w", e.Slug, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	return cmd
}

func (a *app) menuCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Start the arcade with a game picker menu",
		Long: `Start the arcade in interactive menu mode.

Games are grouped by category; the selected game's description is shown
beside the list. After a game ends, B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play
  Tab          - High scores
  H            - Recently played
  Q            - Quit

Examples:
  retrovault menu
  retrovault menu --fps 30
  retrovault menu --db ./scores.db`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := a.applyDifficulty(difficulty); err != nil {
				return err
			}
			store := a.openStoreOptional()
			if store != nil {
				defer store.Close()
			}

			session := tui.NewSession(tui.Options{
				Store:  store,
				Logger: a.logger,
				Config: a.runtimeConfig(),
			})
			return tui.Run(session)
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty preset for every tunable game")
	return cmd
}
