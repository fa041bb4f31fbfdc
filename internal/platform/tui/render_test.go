package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/retrovault/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, '#', core.ColorRed)
	s.DrawTextColor(0, 1, "世x", core.ColorGreen)

	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "ab#   " {
		t.Errorf("row 0 = %q", lines[0])
	}
	// The wide rune's trailing cell is not written.
	if lines[1] != "世x   " {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}
