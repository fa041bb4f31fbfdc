// retrovault is a terminal arcade of twenty retro games with a shared
// scoreboard.
//
// Usage:
//
//	retrovault list [--category C]   - List available games
//	retrovault info <game>           - Show how to play a game
//	retrovault play <game>           - Play a game
//	retrovault menu                  - Pick games interactively
//	retrovault scores <game>         - Show high scores for a game
//	retrovault history               - Show recently played games
//	retrovault serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.retrovault/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//
// Every flag defaults to its RETROVAULT_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/retrovault/internal/config"
	_ "github.com/vovakirdan/retrovault/internal/games/all"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := newApp(settings).execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
