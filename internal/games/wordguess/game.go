// Package wordguess implements Word Guess: find the hidden word one letter
// at a time before the gallows drawing is complete.
package wordguess

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

const (
	ID    = "word-guess"
	title = "Word Guess"

	// MaxWrong is the number of wrong letters that ends the round.
	MaxWrong = 6

	pointsPerLife = 10

	needW = 44
	needH = 14
)

// Words is the fixed list the hidden word is drawn from.
var Words = []string{
	"react", "nextjs", "tailwind", "genkit", "firebase",
	"retro", "vault", "arcade", "puzzle", "classic",
}

// gallows holds one drawing per wrong count; each is 7 rows.
var gallows = [MaxWrong + 1][]string{
	{"", "", "", "", "", "", ""},
	{"", "", "", "", "", "", "========="},
	{"", "  |", "  |", "  |", "  |", "  |", "========="},
	{"  +-----+", "  |", "  |", "  |", "  |", "  |", "========="},
	{"  +-----+", "  |     |", "  |", "  |", "  |", "  |", "========="},
	{"  +-----+", "  |     |", "  |     O", "  |", "  |", "  |", "========="},
	{"  +-----+", "  |     |", "  |     O", "  |    /|\\", "  |    / \\", "  |", "========="},
}

// Game implements Word Guess.
type Game struct {
	rng     *rand.Rand
	word    string
	guessed []rune
	wrong   int

	score    int
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a Word Guess game.
func New() *Game { return &Game{} }

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return title }

// WantsText reports that letters should reach the game as typed runes.
func (g *Game) WantsText() bool { return !g.gameOver }

// Reset picks a new word.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.word = Words[g.rng.Intn(len(Words))]
	g.guessed = g.guessed[:0]
	g.wrong = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < needW || cfg.ScreenH < needH
}

// Step applies every letter typed this tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	core.TogglePause(in, &g.paused)
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	for _, r := range in.Runes() {
		g.Guess(r)
		if g.gameOver {
			break
		}
	}
	return core.StepResult{State: g.State()}
}

// Guess records one letter. Non-letters and repeated letters are ignored.
func (g *Game) Guess(r rune) {
	if g.gameOver || r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return
	}
	r = unicode.ToLower(r)
	if g.hasGuessed(r) {
		return
	}
	g.guessed = append(g.guessed, r)
	if !strings.ContainsRune(g.word, r) {
		g.wrong++
	}

	switch {
	case g.solved():
		g.won = true
		g.gameOver = true
		g.score = (MaxWrong - g.wrong) * pointsPerLife
	case g.wrong >= MaxWrong:
		g.gameOver = true
		g.score = 0
	}
}

func (g *Game) hasGuessed(r rune) bool {
	for _, x := range g.guessed {
		if x == r {
			return true
		}
	}
	return false
}

func (g *Game) solved() bool {
	for _, r := range g.word {
		if !g.hasGuessed(r) {
			return false
		}
	}
	return true
}

// Masked returns the word with unguessed letters as underscores, spaced
// out. The whole word is shown once the round is over.
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.gameOver || g.hasGuessed(r) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// Render draws the gallows, the masked word and the guessed letters.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall || dst.Width() < needW || dst.Height() < needH {
		core.DrawTooSmall(dst, needW, needH)
		return
	}
	ox := (dst.Width() - needW) / 2
	oy := (dst.Height() - needH) / 2

	for i, line := range gallows[g.wrong] {
		dst.DrawTextColor(ox+2, oy+i, line, core.ColorWhite)
	}

	wordColor := core.ColorBrightWhite
	if g.gameOver && !g.won {
		wordColor = core.ColorBrightRed
	} else if g.won {
		wordColor = core.ColorBrightGreen
	}
	dst.DrawTextColor(ox+16, oy+3, g.Masked(), wordColor)

	letters := make([]string, len(g.guessed))
	for i, r := range g.guessed {
		letters[i] = string(r)
	}
	dst.DrawTextColor(ox, oy+9, "Guessed: "+strings.Join(letters, ", "), core.ColorDefault)
	dst.DrawTextColor(ox, oy+11, fmt.Sprintf("Wrong: %d/%d", g.wrong, MaxWrong), core.ColorGray)
	dst.DrawTextColor(ox, oy+13, "Type a letter  Ctrl+P: pause  Esc: leave", core.ColorGray)

	// P is a guess here, so the usual "Press P" overlay would lie.
	if g.paused {
		dst.DrawMessage("Paused", "Press Ctrl+P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}
