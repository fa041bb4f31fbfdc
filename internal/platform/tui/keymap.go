package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retrovault/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "f":
		return core.ActionSecondary, false
	case "1":
		return core.ActionBuy1, false
	case "2":
		return core.ActionBuy2, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", "ctrl+p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records a key in frame. When text is set, single letters
// are typed into the frame instead of being mapped, so only ctrl+c quits
// and ctrl+p pauses.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, text bool) bool {
	if text {
		if msg.Type == tea.KeyCtrlC {
			return true
		}
		if r, ok := letter(msg); ok {
			frame.Type(r)
			return false
		}
	}

	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

func letter(msg tea.KeyMsg) (rune, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	return r, unicode.IsLetter(r)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "h":
		return MenuActionHistory
	}
	return MenuActionNone
}
