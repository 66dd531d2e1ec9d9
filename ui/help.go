package ui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

//go:embed help.md
var helpMarkdown string

// helpView renders the full key reference. The markdown goes through glamour
// so the overlay matches the terminal's color scheme.
func (m model) helpView() string {
	width := m.width
	if width <= 0 || width > 80 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, rerr := r.Render(helpMarkdown)
		if rerr == nil {
			return out + dimStyle.Render("  press ? or esc to close")
		}
		err = rerr
	}
	log.Debug("help render failed", "error", err)
	return helpMarkdown
}
