package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
	"github.com/hush-sh/hush/internal/timer"
)

func testModel(t *testing.T) model {
	t.Helper()

	cat := catalog.Default()
	store := mixer.NewStore(mixer.FromCatalog(cat.All()), nil)
	return newModel(Config{Width: 80}, Deps{
		Catalog:  cat,
		Store:    store,
		Controls: mixer.NewControls(store),
		Timer:    timer.New(),
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleSelectionKey(t *testing.T) {
	m := testModel(t)

	updated, _ := m.handleKey(keyRunes("x"))
	m = updated.(model)

	sounds := m.visibleSounds()
	if len(sounds) == 0 {
		t.Fatal("expected sounds in the first category")
	}
	state, ok := m.deps.Store.Sound(sounds[0].ID)
	if !ok || !state.Selected {
		t.Errorf("expected sound %d to be selected after x", sounds[0].ID)
	}

	updated, _ = m.handleKey(keyRunes("x"))
	m = updated.(model)
	state, _ = m.deps.Store.Sound(sounds[0].ID)
	if state.Selected {
		t.Errorf("expected sound %d to be deselected after second x", sounds[0].ID)
	}
}

func TestPlaybackKeyTogglesSound(t *testing.T) {
	m := testModel(t)
	id := m.visibleSounds()[0].ID

	// Selection is a precondition for starting playback.
	updated, _ := m.handleKey(keyRunes("x"))
	m = updated.(model)
	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	state, _ := m.deps.Store.Sound(id)
	if !state.IsPlaying {
		t.Errorf("expected sound %d playing after enter", id)
	}
}

func TestMasterVolumeKeys(t *testing.T) {
	m := testModel(t)
	m.deps.Controls.SelectAll()

	updated, _ := m.handleKey(keyRunes("<"))
	m = updated.(model)

	if got := m.master().MasterVolume; got != mixer.DefaultVolume-masterVolumeStep {
		t.Errorf("master volume = %d, want %d", got, mixer.DefaultVolume-masterVolumeStep)
	}

	updated, _ = m.handleKey(keyRunes("F"))
	m = updated.(model)
	if got := m.master().MasterVolume; got != mixer.VolumeMax {
		t.Errorf("master volume after F = %d, want %d", got, mixer.VolumeMax)
	}
}

func TestTabSwitchingWrapsAround(t *testing.T) {
	m := testModel(t)
	n := len(m.categories)
	if n < 2 {
		t.Skip("needs at least two categories")
	}

	for i := 0; i < n; i++ {
		updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(model)
	}
	if m.tab != 0 {
		t.Errorf("tab = %d after %d presses, want 0", m.tab, n)
	}
}

func TestFilterNarrowsSounds(t *testing.T) {
	m := testModel(t)

	updated, _ := m.handleKey(keyRunes("/"))
	m = updated.(model)
	if !m.filtering {
		t.Fatal("expected filter mode after /")
	}

	updated, _ = m.updateFilter(keyRunes("rain"))
	m = updated.(model)

	if len(m.filtered) == 0 {
		t.Fatal("expected fuzzy matches for rain")
	}
	if len(m.filtered) >= m.deps.Catalog.Len() {
		t.Errorf("filter did not narrow: %d of %d", len(m.filtered), m.deps.Catalog.Len())
	}
}

func TestStaleTickEndsChain(t *testing.T) {
	m := testModel(t)
	if err := m.deps.Timer.Start(60); err != nil {
		t.Fatal(err)
	}
	gen := m.deps.Timer.Generation()
	m.deps.Timer.Pause()

	_, cmd := m.Update(tickMsg{generation: gen})
	if cmd != nil {
		t.Error("expected no follow-up command for a stale tick")
	}
}

func TestTickKeepsChainWhileRunning(t *testing.T) {
	m := testModel(t)
	if err := m.deps.Timer.Start(60); err != nil {
		t.Fatal(err)
	}

	_, cmd := m.Update(tickMsg{generation: m.deps.Timer.Generation()})
	if cmd == nil {
		t.Error("expected a follow-up tick command while running")
	}
	if got := m.deps.Timer.Remaining(); got != 59 {
		t.Errorf("remaining = %d, want 59", got)
	}
}

func TestStatusTimeoutClearsOnlyCurrent(t *testing.T) {
	m := testModel(t)

	m, _ = m.withStatus("first", false)
	stale := m.statusSeq
	m, _ = m.withStatus("second", false)

	updated, _ := m.Update(statusTimeoutMsg{seq: stale})
	m = updated.(model)
	if m.status != "second" {
		t.Errorf("stale timeout cleared live status, got %q", m.status)
	}

	updated, _ = m.Update(statusTimeoutMsg{seq: m.statusSeq})
	m = updated.(model)
	if m.status != "" {
		t.Errorf("expected status cleared, got %q", m.status)
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := testModel(t)

	updated, _ := m.handleKey(keyRunes("?"))
	m = updated.(model)
	if !m.showHelp {
		t.Fatal("expected help overlay after ?")
	}

	updated, _ = m.handleKey(keyRunes("?"))
	m = updated.(model)
	if m.showHelp {
		t.Error("expected help overlay closed after second ?")
	}
}
