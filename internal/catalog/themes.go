package catalog

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme holds the display attributes for a sound: a glyph and the colors used
// to render its card in the TUI. Themes carry no state; lookup is a pure
// mapping from id, with a category fallback and a fixed default.
type Theme struct {
	Glyph  string
	Color  lipgloss.Color // primary accent
	Dim    lipgloss.Color // de-emphasized variant
}

var defaultTheme = Theme{Glyph: "♪", Color: lipgloss.Color("245"), Dim: lipgloss.Color("240")}

var categoryThemes = map[string]Theme{
	"noise":   {Glyph: "▒", Color: lipgloss.Color("250"), Dim: lipgloss.Color("244")},
	"rain":    {Glyph: "☂", Color: lipgloss.Color("39"), Dim: lipgloss.Color("25")},
	"nature":  {Glyph: "❀", Color: lipgloss.Color("40"), Dim: lipgloss.Color("22")},
	"ambient": {Glyph: "◌", Color: lipgloss.Color("213"), Dim: lipgloss.Color("96")},
}

var soundThemes = map[int]Theme{
	4:  {Glyph: "✢", Color: lipgloss.Color("251"), Dim: lipgloss.Color("244")},
	8:  {Glyph: "⚡", Color: lipgloss.Color("226"), Dim: lipgloss.Color("100")},
	10: {Glyph: "≈", Color: lipgloss.Color("45"), Dim: lipgloss.Color("24")},
	12: {Glyph: "♫", Color: lipgloss.Color("114"), Dim: lipgloss.Color("28")},
	14: {Glyph: "𝆑", Color: lipgloss.Color("208"), Dim: lipgloss.Color("130")},
}

// ThemeFor resolves the theme for a sound id, falling back to its category
// theme and finally a fixed default.
func ThemeFor(id int, category string) Theme {
	if t, ok := soundThemes[id]; ok {
		return t
	}
	if t, ok := categoryThemes[category]; ok {
		return t
	}
	return defaultTheme
}

var titleCaser = cases.Title(language.English)

// CategoryTitle returns a category key formatted for display.
func CategoryTitle(category string) string {
	return titleCaser.String(category)
}
