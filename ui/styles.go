package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	subtleColor    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	noticeColor    = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	errorColor     = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(highlightColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor).
			Padding(0, 1).
			Underline(true)

	cursorRowStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#EFEFEF", Dark: "#2B2B2B"})

	selectedMarkStyle = lipgloss.NewStyle().Foreground(highlightColor).Bold(true)
	playingMarkStyle  = lipgloss.NewStyle().Foreground(noticeColor).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(subtleColor).Strikethrough(true)
	dimStyle          = lipgloss.NewStyle().Foreground(subtleColor)

	noticeStyle = lipgloss.NewStyle().Foreground(noticeColor)
	errStyle    = lipgloss.NewStyle().Foreground(errorColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(highlightColor)

	timerClockStyle = lipgloss.NewStyle().Bold(true).Foreground(highlightColor)

	volumeOnStyle  = lipgloss.NewStyle().Foreground(highlightColor)
	volumeOffStyle = lipgloss.NewStyle().Foreground(subtleColor)
)

// volumeBar renders a 0-100 level as a fixed-width block gauge.
func volumeBar(volume, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := volume * width / 100
	if volume > 0 && filled == 0 {
		filled = 1
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += volumeOnStyle.Render("▰")
		} else {
			bar += volumeOffStyle.Render("▱")
		}
	}
	return bar
}
