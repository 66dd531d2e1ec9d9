package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
	"github.com/hush-sh/hush/internal/preset"
	"github.com/hush-sh/hush/internal/timer"
)

const statusMessageTimeout = 3 * time.Second

type (
	// tickMsg drives the countdown. The generation lets stale tick chains
	// die quietly after a pause, reset or restart.
	tickMsg struct{ generation int }

	statusTimeoutMsg struct{ seq int }

	presetSavedMsg struct{ name string }

	presetLoadedMsg struct {
		name   string
		sounds []mixer.Sound
	}

	presetDeletedMsg struct{ name string }

	presetListMsg struct{ entries []preset.Entry }

	presetChangedMsg struct{}

	clipboardMsg struct{}

	errMsg struct{ err error }
)

func (e errMsg) Error() string { return e.err.Error() }

// tickCmd schedules the next countdown tick for the given generation.
func tickCmd(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func statusTimeoutCmd(seq int) tea.Cmd {
	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusTimeoutMsg{seq: seq}
	})
}

func savePresetCmd(store *preset.Store, name string, sounds []mixer.Sound) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.Save(name, sounds); err != nil {
			return errMsg{err}
		}
		return presetSavedMsg{name: name}
	}
}

func loadPresetCmd(store *preset.Store, cat *catalog.Catalog, name string) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := store.Load(name)
		if err != nil {
			return errMsg{err}
		}
		if err := preset.Validate(snap, cat); err != nil {
			return errMsg{err}
		}
		return presetLoadedMsg{name: snap.Name, sounds: snap.Sounds}
	}
}

func deletePresetCmd(store *preset.Store, name string) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		if err := store.Delete(name); err != nil {
			return errMsg{err}
		}
		return presetDeletedMsg{name: name}
	}
}

func listPresetsCmd(store *preset.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.List()
		if err != nil {
			return errMsg{err}
		}
		return presetListMsg{entries: entries}
	}
}

// watchPresetsCmd blocks on the fsnotify watcher and surfaces a single
// change event; the model re-issues it to keep the loop alive.
func watchPresetsCmd(w *fsnotify.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
					return presetChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// timerStateAfterTick maps a tick outcome onto the follow-up command.
func timerStateAfterTick(outcome timer.TickOutcome, generation int) tea.Cmd {
	if outcome == timer.TickCounted {
		return tickCmd(generation)
	}
	return nil
}
