// Package shell is the score, high-score and game-over wrapper shared by
// every game. It drives one registry.Game, finalizes each run exactly once
// and hands the result to a Recorder.
package shell

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
	"github.com/vovakirdan/retrovault/internal/storage"
)

// Recorder persists high scores, finished runs and the play history.
// *storage.Store implements it.
type Recorder interface {
	HighScore(gameID string) (int, error)
	SaveResult(r storage.Result) (int64, error)
	AppendHistory(title string) error
}

// Snapshot is the shell's view of the current run.
type Snapshot struct {
	RunID        string
	Score        int
	HighScore    int
	Ticks        int
	GameOver     bool
	Won          bool
	Paused       bool
	NewHighScore bool
}

// Host runs one game inside the shell.
type Host struct {
	game   registry.Game
	entry  catalog.Entry
	rec    Recorder
	logger *log.Logger
	newID  func() string

	cfg       core.RuntimeConfig
	runID     string
	high      int
	ticks     int
	finalized bool
	newHigh   bool
	final     core.GameState
	err       error
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for recorder failures.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// WithRunIDs replaces the run ID generator.
func WithRunIDs(next func() string) Option {
	return func(h *Host) { h.newID = next }
}

// New wraps g. rec may be nil, in which case nothing is persisted and the
// high score only lives as long as the Host.
func New(g registry.Game, rec Recorder, opts ...Option) *Host {
	entry, ok := catalog.BySlug(g.ID())
	if !ok {
		entry = catalog.Entry{Slug: g.ID(), Title: g.Title()}
	}
	h := &Host{
		game:   g,
		entry:  entry,
		rec:    rec,
		logger: log.Default(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Game returns the wrapped game.
func (h *Host) Game() registry.Game { return h.game }

// Entry returns the catalog entry of the wrapped game.
func (h *Host) Entry() catalog.Entry { return h.entry }

// Start loads the stored high score and begins the first run.
func (h *Host) Start(cfg core.RuntimeConfig) {
	h.cfg = cfg
	if h.rec != nil {
		high, err := h.rec.HighScore(h.entry.Slug)
		if err != nil {
			h.fail("load high score", err)
		} else {
			h.high = high
		}
	}
	h.begin()
}

// Restart is "Play Again": a new run with a new seed, keeping the high score.
func (h *Host) Restart(seed int64) {
	h.cfg.Seed = seed
	h.begin()
}

// Resize updates the area offered to the game on the next reset.
func (h *Host) Resize(w, ht int) {
	h.cfg.ScreenW = w
	h.cfg.ScreenH = ht
}

func (h *Host) begin() {
	h.runID = h.newID()
	h.ticks = 0
	h.finalized = false
	h.newHigh = false
	h.final = core.GameState{}
	h.game.Reset(h.cfg)
}

// Step forwards one tick of input. Once the run is over input is ignored
// and the game is no longer advanced.
func (h *Host) Step(in core.InputFrame) Snapshot {
	if h.finalized {
		return h.Snapshot()
	}

	res := h.game.Step(in)
	if !res.State.Paused {
		h.ticks++
	}
	if res.State.GameOver {
		h.finalize(res.State)
	}
	return h.Snapshot()
}

func (h *Host) finalize(st core.GameState) {
	h.finalized = true
	if st.Score < 0 {
		st.Score = 0
	}
	h.final = st

	if st.Score > h.high {
		h.high = st.Score
		h.newHigh = true
	}

	if h.rec == nil {
		return
	}
	_, err := h.rec.SaveResult(storage.Result{
		RunID:  h.runID,
		GameID: h.entry.Slug,
		Score:  st.Score,
		Won:    st.Won,
		Ticks:  h.ticks,
	})
	if err != nil {
		h.fail("save result", err)
	}
	if err := h.rec.AppendHistory(h.entry.Title); err != nil {
		h.fail("append history", err)
	}
	h.logger.Debug("run finished", "game", h.entry.Slug, "run", h.runID, "score", st.Score, "won", st.Won, "ticks", h.ticks)
}

func (h *Host) fail(op string, err error) {
	h.err = err
	h.logger.Warn("shell: "+op+" failed", "game", h.entry.Slug, "error", err)
}

// Err returns the last recorder error, if any.
func (h *Host) Err() error { return h.err }

// Snapshot returns the current shell state.
func (h *Host) Snapshot() Snapshot {
	st := h.game.State()
	if h.finalized {
		st = h.final
	}
	score := st.Score
	if score < 0 {
		score = 0
	}
	high := h.high
	if score > high {
		high = score
	}
	return Snapshot{
		RunID:        h.runID,
		Score:        score,
		HighScore:    high,
		Ticks:        h.ticks,
		GameOver:     h.finalized,
		Won:          st.Won,
		Paused:       st.Paused,
		NewHighScore: h.newHigh,
	}
}
