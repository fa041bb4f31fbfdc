// Package tui is the Bubble Tea front end: the catalog menu, the shell
// hosted game screen, the scoreboard and history views, and the SSH server
// that serves all of them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the game model that scheduled it.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

var loops atomic.Uint64

// nextLoop returns a fresh tick loop ID. Each game model owns one loop and
// ignores ticks from loops started by earlier models.
func nextLoop() uint64 {
	return loops.Add(1)
}

func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
