// Package ui is the terminal front-end of hush: a bubbletea program that
// renders the sound catalog, the master strip, the sleep timer and the preset
// shelf, and translates key presses into mixer actions.
package ui

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/sahilm/fuzzy"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
	"github.com/hush-sh/hush/internal/preset"
	"github.com/hush-sh/hush/internal/timer"
	"github.com/hush-sh/hush/internal/timeutil"
)

// section is the panel that currently owns navigation keys.
type section int

const (
	sectionSounds section = iota
	sectionTimer
	sectionPresets
)

// masterVolumeStep is the increment used by the master < and > keys.
const masterVolumeStep = 5

// Deps are the long-lived collaborators the UI drives. They are constructed
// in main and shared with the audio dispatcher.
type Deps struct {
	Catalog  *catalog.Catalog
	Store    *mixer.Store
	Controls *mixer.Controls
	Timer    *timer.Engine
	Presets  *preset.Store
}

type model struct {
	cfg  Config
	deps Deps
	keys keyMap
	help help.Model

	width  int
	height int

	section section

	// Sound browser.
	categories []string
	tab        int
	cursor     int

	// Fuzzy filter over all sounds, across categories.
	filtering   bool
	filterInput textinput.Model
	filtered    []catalog.Sound

	// Timer picker.
	timerCursor   int
	editingCustom bool
	customHours   textinput.Model
	customMinutes textinput.Model
	customFocus   int

	// Preset shelf.
	presetEntries []preset.Entry
	presetCursor  int
	savingPreset  bool
	presetInput   textinput.Model
	watcher       *fsnotify.Watcher

	// Transient status line.
	status      string
	statusIsErr bool
	statusSeq   int

	showHelp bool
}

// NewProgram assembles the bubbletea program for the mixer.
func NewProgram(cfg Config, deps Deps) *tea.Program {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(newModel(cfg, deps), opts...)
}

func newModel(cfg Config, deps Deps) model {
	filter := textinput.New()
	filter.Placeholder = "filter sounds"
	filter.Prompt = "/"
	filter.CharLimit = 40

	hours := textinput.New()
	hours.Placeholder = "0"
	hours.Prompt = ""
	hours.CharLimit = 2
	hours.Width = 3

	minutes := textinput.New()
	minutes.Placeholder = "00"
	minutes.Prompt = ""
	minutes.CharLimit = 2
	minutes.Width = 3

	name := textinput.New()
	name.Placeholder = "preset name"
	name.Prompt = "> "
	name.CharLimit = 60

	var watcher *fsnotify.Watcher
	if deps.Presets != nil {
		w, err := deps.Presets.Watch()
		if err != nil {
			log.Debug("preset watch unavailable", "error", err)
		} else {
			watcher = w
		}
	}

	return model{
		cfg:           cfg,
		deps:          deps,
		keys:          defaultKeyMap(),
		help:          help.New(),
		width:         int(cfg.Width),
		categories:    deps.Catalog.Categories(),
		filterInput:   filter,
		customHours:   hours,
		customMinutes: minutes,
		presetInput:   name,
		watcher:       watcher,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{listPresetsCmd(m.deps.Presets)}
	if m.watcher != nil {
		cmds = append(cmds, watchPresetsCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		outcome := m.deps.Timer.Tick(msg.generation)
		if outcome == timer.TickCompleted {
			return m.withStatus("timer done, mix paused", false)
		}
		return m, timerStateAfterTick(outcome, msg.generation)

	case statusTimeoutMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case presetSavedMsg:
		m.savingPreset = false
		m.presetInput.Blur()
		m.presetInput.SetValue("")
		mm, cmd := m.withStatus(fmt.Sprintf("saved preset %q", msg.name), false)
		return mm, tea.Batch(cmd, listPresetsCmd(m.deps.Presets))

	case presetLoadedMsg:
		m.deps.Store.Dispatch(mixer.LoadPreset{Name: msg.name, Sounds: msg.sounds})
		return m.withStatus(fmt.Sprintf("loaded preset %q", msg.name), false)

	case presetDeletedMsg:
		mm, cmd := m.withStatus(fmt.Sprintf("deleted preset %q", msg.name), false)
		return mm, tea.Batch(cmd, listPresetsCmd(m.deps.Presets))

	case presetListMsg:
		m.presetEntries = msg.entries
		if m.presetCursor >= len(m.presetEntries) {
			m.presetCursor = max(0, len(m.presetEntries)-1)
		}
		return m, nil

	case presetChangedMsg:
		return m, tea.Batch(listPresetsCmd(m.deps.Presets), watchPresetsCmd(m.watcher))

	case clipboardMsg:
		return m.withStatus("mix copied to clipboard", false)

	case errMsg:
		return m.withStatus(msg.err.Error(), true)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry modes swallow everything except escape and enter.
	if m.filtering {
		return m.updateFilter(msg)
	}
	if m.savingPreset {
		return m.updatePresetName(msg)
	}
	if m.editingCustom {
		return m.updateCustomTimer(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc":
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Timer):
		m.section = toggleSection(m.section, sectionTimer)
		return m, nil

	case key.Matches(msg, m.keys.Presets):
		m.section = toggleSection(m.section, sectionPresets)
		return m, tea.Batch(listPresetsCmd(m.deps.Presets))

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.section = sectionSounds
		m.filterInput.SetValue("")
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.SavePreset):
		m.savingPreset = true
		m.presetInput.SetValue("")
		return m, m.presetInput.Focus()

	case key.Matches(msg, m.keys.CopyMix):
		return m, m.copyMixCmd()

	// Master strip works from every section.
	case key.Matches(msg, m.keys.MasterPlay):
		m.deps.Controls.PlayPauseToggle()
		return m, nil
	case key.Matches(msg, m.keys.MasterUp):
		m.deps.Controls.SetMasterVolume(m.master().MasterVolume + masterVolumeStep)
		return m, nil
	case key.Matches(msg, m.keys.MasterDown):
		m.deps.Controls.SetMasterVolume(m.master().MasterVolume - masterVolumeStep)
		return m, nil
	case key.Matches(msg, m.keys.MasterMute):
		m.deps.Controls.MuteMaster()
		return m, nil
	case key.Matches(msg, m.keys.MasterMax):
		m.deps.Controls.MaxMaster()
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.deps.Controls.SelectAll()
		return m, nil
	case key.Matches(msg, m.keys.ClearSel):
		m.deps.Controls.ClearSelection()
		return m, nil
	case key.Matches(msg, m.keys.ResetAll):
		m.deps.Controls.Reset()
		return m.withStatus("mixer reset", false)
	}

	switch m.section {
	case sectionTimer:
		return m.handleTimerKey(msg)
	case sectionPresets:
		return m.handlePresetKey(msg)
	default:
		return m.handleSoundKey(msg)
	}
}

func (m model) handleSoundKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sounds := m.visibleSounds()

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.filtered = nil
		m.tab = (m.tab + 1) % len(m.categories)
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevTab):
		m.filtered = nil
		m.tab = (m.tab + len(m.categories) - 1) % len(m.categories)
		m.cursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(sounds)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.ToggleSel):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.ToggleSelection(s.ID)
		}
	case key.Matches(msg, m.keys.TogglePlay):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.TogglePlayback(s.ID)
		}
	case key.Matches(msg, m.keys.VolumeUp):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.AdjustVolume(s.ID, mixer.VolumeStep)
		}
	case key.Matches(msg, m.keys.VolumeDown):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.AdjustVolume(s.ID, -mixer.VolumeStep)
		}
	case key.Matches(msg, m.keys.Mute):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.ToggleMute(s.ID)
		}
	case key.Matches(msg, m.keys.Solo):
		if s, ok := m.soundUnderCursor(sounds); ok {
			m.deps.Controls.Solo(s.ID)
		}
	}
	return m, nil
}

func (m model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.deps.Timer

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.timerCursor > 0 {
			m.timerCursor--
			eng.SetPreviewTime(timeutil.PresetMinutes[m.timerCursor] * 60)
		}
	case key.Matches(msg, m.keys.Down):
		if m.timerCursor < len(timeutil.PresetMinutes)-1 {
			m.timerCursor++
			eng.SetPreviewTime(timeutil.PresetMinutes[m.timerCursor] * 60)
		}
	case msg.String() == "C":
		m.editingCustom = true
		m.customFocus = 0
		m.customHours.SetValue("")
		m.customMinutes.SetValue("")
		return m, m.customHours.Focus()
	case key.Matches(msg, m.keys.TogglePlay):
		switch eng.State() {
		case timer.StateRunning:
			eng.Pause()
			return m.withStatus("timer paused", false)
		case timer.StatePaused:
			eng.Resume()
			return m, tickCmd(eng.Generation())
		default:
			minutes := timeutil.PresetMinutes[m.timerCursor]
			if minutes == 0 {
				eng.SetPreviewTime(0)
				return m.withStatus("timer off", false)
			}
			if err := eng.Start(minutes * 60); err != nil {
				return m.withStatus(err.Error(), true)
			}
			return m, tickCmd(eng.Generation())
		}
	case msg.String() == "backspace":
		eng.Reset()
	case msg.String() == "esc":
		m.section = sectionSounds
	}
	return m, nil
}

func (m *model) updateCustomTimerFocus() tea.Cmd {
	if m.customFocus == 0 {
		m.customMinutes.Blur()
		return m.customHours.Focus()
	}
	m.customHours.Blur()
	return m.customMinutes.Focus()
}

func (m model) updateCustomTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingCustom = false
		m.customHours.Blur()
		m.customMinutes.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.customFocus = 1 - m.customFocus
		return m, m.updateCustomTimerFocus()
	case "enter":
		seconds, err := timeutil.ParseCustom(m.customHours.Value(), m.customMinutes.Value())
		if err != nil {
			return m.withStatus(err.Error(), true)
		}
		m.editingCustom = false
		m.customHours.Blur()
		m.customMinutes.Blur()
		if err := m.deps.Timer.Start(seconds); err != nil {
			return m.withStatus(err.Error(), true)
		}
		return m, tickCmd(m.deps.Timer.Generation())
	}

	var cmd tea.Cmd
	if m.customFocus == 0 {
		m.customHours, cmd = m.customHours.Update(msg)
	} else {
		m.customMinutes, cmd = m.customMinutes.Update(msg)
	}
	return m, cmd
}

func (m model) handlePresetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.presetCursor < len(m.presetEntries)-1 {
			m.presetCursor++
		}
	case key.Matches(msg, m.keys.TogglePlay):
		if m.presetCursor < len(m.presetEntries) {
			return m, loadPresetCmd(m.deps.Presets, m.deps.Catalog, m.presetEntries[m.presetCursor].Name)
		}
	case msg.String() == "d":
		if m.presetCursor < len(m.presetEntries) {
			return m, deletePresetCmd(m.deps.Presets, m.presetEntries[m.presetCursor].Name)
		}
	case msg.String() == "esc":
		m.section = sectionSounds
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filtered = nil
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filtered = m.filterSounds(m.filterInput.Value())
	m.cursor = 0
	return m, cmd
}

func (m model) updatePresetName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.savingPreset = false
		m.presetInput.Blur()
		return m, nil
	case "enter":
		name := m.presetInput.Value()
		sounds := m.deps.Store.Sounds()
		m.deps.Store.Dispatch(mixer.SavePreset{Name: name})
		return m, savePresetCmd(m.deps.Presets, name, sounds)
	}

	var cmd tea.Cmd
	m.presetInput, cmd = m.presetInput.Update(msg)
	return m, cmd
}

// visibleSounds is the list the cursor walks: the active category, or the
// fuzzy matches while a filter is applied.
func (m model) visibleSounds() []catalog.Sound {
	if m.filtered != nil {
		return m.filtered
	}
	if len(m.categories) == 0 {
		return nil
	}
	return m.deps.Catalog.SoundsByCategory(m.categories[m.tab])
}

func (m model) soundUnderCursor(sounds []catalog.Sound) (catalog.Sound, bool) {
	if m.cursor < 0 || m.cursor >= len(sounds) {
		return catalog.Sound{}, false
	}
	return sounds[m.cursor], true
}

func (m model) filterSounds(query string) []catalog.Sound {
	all := m.deps.Catalog.All()
	if query == "" {
		return all
	}
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	matches := fuzzy.Find(query, names)
	out := make([]catalog.Sound, 0, len(matches))
	for _, match := range matches {
		out = append(out, all[match.Index])
	}
	return out
}

func (m model) master() mixer.Master {
	return mixer.Aggregate(m.deps.Store.Sounds())
}

// copyMixCmd serializes the current mix as JSON onto the system clipboard.
func (m model) copyMixCmd() tea.Cmd {
	sounds := m.deps.Store.Sounds()
	return func() tea.Msg {
		b, err := json.MarshalIndent(sounds, "", "  ")
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(string(b)); err != nil {
			return errMsg{err}
		}
		return clipboardMsg{}
	}
}

func (m model) withStatus(text string, isErr bool) (model, tea.Cmd) {
	m.status = text
	m.statusIsErr = isErr
	m.statusSeq++
	return m, statusTimeoutCmd(m.statusSeq)
}

func toggleSection(current, target section) section {
	if current == target {
		return sectionSounds
	}
	return target
}
