package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/timer"
	"github.com/hush-sh/hush/internal/timeutil"
)

const (
	soundNameCols = 18
	gaugeWidth    = 10
)

func (m model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("hush"))
	b.WriteString("  ")
	b.WriteString(m.masterStrip())
	b.WriteString("\n\n")

	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(m.soundList())
	b.WriteString("\n")

	switch m.section {
	case sectionTimer:
		b.WriteString(m.timerPanel())
		b.WriteString("\n")
	case sectionPresets:
		b.WriteString(m.presetPanel())
		b.WriteString("\n")
	}

	if m.savingPreset {
		b.WriteString(panelStyle.Render("save preset: " + m.presetInput.View()))
		b.WriteString("\n")
	}
	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

// masterStrip summarizes the whole mix on one line.
func (m model) masterStrip() string {
	master := m.master()

	state := dimStyle.Render("paused")
	if master.IsPlaying {
		state = playingMarkStyle.Render("playing")
	}

	parts := []string{
		state,
		fmt.Sprintf("vol %s %3d", volumeBar(master.MasterVolume, gaugeWidth), master.MasterVolume),
		dimStyle.Render(fmt.Sprintf("%d/%d selected", master.ActiveSelectedCount, len(master.SelectedSounds))),
	}

	if m.deps.Timer.Active() || m.deps.Timer.State() == timer.StateRunning {
		parts = append(parts, timerClockStyle.Render("⏾ "+timeutil.FormatClock(m.deps.Timer.Remaining())))
	}

	return strings.Join(parts, "  ")
}

func (m model) tabBar() string {
	if m.filtered != nil {
		return activeTabStyle.Render(fmt.Sprintf("search: %q", m.filterInput.Value()))
	}

	tabs := make([]string, len(m.categories))
	for i, category := range m.categories {
		label := catalog.CategoryTitle(category)
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m model) soundList() string {
	sounds := m.visibleSounds()
	if len(sounds) == 0 {
		return dimStyle.Render("  no sounds")
	}

	rows := make([]string, 0, len(sounds))
	for i, entry := range sounds {
		rows = append(rows, m.soundRow(entry, i == m.cursor && m.section == sectionSounds))
	}
	return strings.Join(rows, "\n")
}

func (m model) soundRow(entry catalog.Sound, underCursor bool) string {
	state, _ := m.deps.Store.Sound(entry.ID)
	theme := catalog.ThemeFor(entry.ID, entry.Category)

	mark := " "
	if state.Selected {
		mark = selectedMarkStyle.Render("●")
	}

	play := " "
	if state.IsPlaying {
		play = playingMarkStyle.Render("▶")
	}

	glyph := lipgloss.NewStyle().Foreground(theme.Color).Render(theme.Glyph)

	name := runewidth.Truncate(entry.Name, soundNameCols, "…")
	name = name + strings.Repeat(" ", soundNameCols-runewidth.StringWidth(name))
	if state.IsMuted {
		name = mutedStyle.Render(name)
	}

	row := fmt.Sprintf(" %s %s %s %s %s %3d", mark, play, glyph, name,
		volumeBar(state.Volume, gaugeWidth), state.Volume)

	if underCursor {
		return cursorRowStyle.Render(row)
	}
	return row
}

func (m model) timerPanel() string {
	eng := m.deps.Timer

	var b strings.Builder
	b.WriteString(fmt.Sprintf("sleep timer · %s · %s\n",
		eng.State(), timerClockStyle.Render(timeutil.FormatClock(eng.Remaining()))))

	if m.editingCustom {
		b.WriteString(fmt.Sprintf("custom  %s h  %s m  (enter to start, esc to cancel)",
			m.customHours.View(), m.customMinutes.View()))
		return focusedPanelStyle.Render(b.String())
	}

	labels := make([]string, len(timeutil.PresetMinutes))
	for i, minutes := range timeutil.PresetMinutes {
		label := timeutil.FormatDuration(minutes * 60)
		if minutes == 0 {
			label = "off"
		}
		if i == m.timerCursor {
			label = selectedMarkStyle.Render("[" + label + "]")
		} else {
			label = dimStyle.Render(" " + label + " ")
		}
		labels[i] = label
	}
	b.WriteString(strings.Join(labels, " "))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter start/pause · backspace reset · C custom"))

	if m.section == sectionTimer {
		return focusedPanelStyle.Render(b.String())
	}
	return panelStyle.Render(b.String())
}

func (m model) presetPanel() string {
	var b strings.Builder
	b.WriteString("presets\n")

	if len(m.presetEntries) == 0 {
		b.WriteString(dimStyle.Render("none saved yet, press s to save the current mix"))
	} else {
		for i, entry := range m.presetEntries {
			row := fmt.Sprintf(" %s  %s", entry.Name,
				dimStyle.Render(humanize.Time(entry.SavedAt)))
			if i == m.presetCursor {
				row = cursorRowStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
		b.WriteString(dimStyle.Render("enter load · d delete"))
	}

	if m.section == sectionPresets {
		return focusedPanelStyle.Render(b.String())
	}
	return panelStyle.Render(b.String())
}

func (m model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return errStyle.Render(m.status)
	}
	return noticeStyle.Render(m.status)
}
