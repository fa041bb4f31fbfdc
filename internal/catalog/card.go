package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown builds the "how to play" card for an entry.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "*%s*\n\n", e.Category)
	fmt.Fprintf(&b, "%s\n\n", e.Description)

	if len(e.Controls) > 0 {
		b.WriteString("## Controls\n\n")
		for _, c := range e.Controls {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("- P: pause, R: play again, B: back to menu\n\n")
	}

	if e.Image != "" {
		hint := e.ImageHint
		if hint == "" {
			hint = e.Title
		}
		fmt.Fprintf(&b, "Cover: [%s](%s)\n", hint, e.Image)
	}
	return b.String()
}

// RenderCard renders the entry's card for a terminal of the given width.
// When glamour fails the raw markdown is returned.
func RenderCard(e Entry, width int) string {
	content := e.Markdown()
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
