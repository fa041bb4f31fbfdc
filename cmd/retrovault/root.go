package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/storage"
)

// interactive marks commands that own the terminal. Their logs go to a
// file so they never draw over the game.
const interactive = "interactive"

// app carries the global flags and the resources built from them.
type app struct {
	settings config.Settings

	fps      int
	seed     int64
	dbPath   string
	logLevel string
	logFile  string

	logger  *log.Logger
	logSink io.Closer

	root *cobra.Command
}

func newRootCmd(settings config.Settings) *cobra.Command {
	return newApp(settings).root
}

func newApp(settings config.Settings) *app {
	a := &app{settings: settings}

	root := &cobra.Command{
		Use:   "retrovault",
		Short: "RetroVault - twenty retro games in your terminal",
		Long: `RetroVault is a terminal arcade: classic arcade, puzzle, action and
modern casual games behind one shared scoreboard.

Examples:
  retrovault list
  retrovault info minefield
  retrovault play snake-classic
  retrovault menu
  retrovault serve --ssh :2222
  retrovault scores tetro-fall`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.IntVar(&a.fps, "fps", settings.FPS, "Tick rate (frames per second)")
	flags.Int64Var(&a.seed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	flags.StringVar(&a.dbPath, "db", settings.DBPath, "Path to scores database")
	flags.StringVar(&a.logLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", settings.LogFile, "Log file (interactive commands default to ~/.retrovault/retrovault.log)")

	root.AddCommand(
		a.listCmd(),
		a.infoCmd(),
		a.playCmd(),
		a.menuCmd(),
		a.scoresCmd(),
		a.historyCmd(),
		a.serveCmd(),
	)
	a.root = root
	return a
}

// execute runs the command line and closes the log file whatever the
// outcome; cobra skips post-run hooks when a command fails.
func (a *app) execute() error {
	defer a.teardown()
	return a.root.Execute()
}

// setup validates the global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", a.fps)
	}
	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	path := a.logFile
	if path == "" && cmd.Annotations[interactive] == "true" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".retrovault", "retrovault.log")
		}
	}

	var out io.Writer = cmd.ErrOrStderr()
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return err
		}
		a.logSink = f
		out = f
	}

	a.logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "retrovault",
	})
	log.SetDefault(a.logger)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func (a *app) teardown() {
	if a.logSink != nil {
		a.logSink.Close()
		a.logSink = nil
	}
}

// openStore opens the scores database.
func (a *app) openStore() (*storage.Store, error) {
	store, err := storage.Open(a.dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open scores database: %w", err)
	}
	return store, nil
}

// openStoreOptional opens the database for play. Without it games still
// run; nothing is recorded.
func (a *app) openStoreOptional() *storage.Store {
	store, err := a.openStore()
	if err != nil {
		a.logger.Warn("playing without score storage", "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = a.fps
	cfg.Seed = a.seed
	return cfg
}

// applyDifficulty resolves --difficulty against RETROVAULT_DIFFICULTY and
// applies it to every tunable game.
func (a *app) applyDifficulty(flag string) (config.DifficultyPreset, error) {
	if flag == "" {
		flag = a.settings.Difficulty
	}
	preset, err := config.ParsePreset(strings.ToLower(flag))
	if err != nil {
		return "", err
	}
	if preset != "" {
		config.SetPresetAll(preset)
	}
	return preset, nil
}
