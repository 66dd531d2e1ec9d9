package preset

import (
	"errors"
	"testing"
	"time"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func sampleSounds() []mixer.Sound {
	return []mixer.Sound{
		{ID: 1, Name: "White Noise", Volume: 30, MixLevel: 1, Selected: true, IsPlaying: true},
		{ID: 2, Name: "Light Rain", Volume: 80, MixLevel: 0.5},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	if err := s.Save("Deep Focus", sampleSounds()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, err := s.Load("Deep Focus")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Name != "Deep Focus" {
		t.Errorf("Expected name preserved, got %q", snap.Name)
	}
	if len(snap.Sounds) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(snap.Sounds))
	}
	if snap.Sounds[0] != sampleSounds()[0] || snap.Sounds[1] != sampleSounds()[1] {
		t.Errorf("Snapshot sounds differ after round trip: %+v", snap.Sounds)
	}
	if snap.SavedAt.IsZero() || time.Since(snap.SavedAt) > time.Minute {
		t.Errorf("Suspicious SavedAt: %v", snap.SavedAt)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := testStore(t)

	if err := s.Save("mix", sampleSounds()); err != nil {
		t.Fatal(err)
	}
	changed := sampleSounds()
	changed[0].Volume = 99
	if err := s.Save("mix", changed); err != nil {
		t.Fatal(err)
	}

	snap, err := s.Load("mix")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Sounds[0].Volume != 99 {
		t.Errorf("Expected overwrite, got volume %d", snap.Sounds[0].Volume)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected a single preset after overwrite, got %d", len(entries))
	}
}

func TestLoadMissing(t *testing.T) {
	s := testStore(t)
	if _, err := s.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestInvalidNames(t *testing.T) {
	s := testStore(t)
	for _, name := range []string{"", "   ", "---", "!!!"} {
		if err := s.Save(name, sampleSounds()); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestNameSlugging(t *testing.T) {
	s := testStore(t)
	if err := s.Save("Rainy Café Night!", sampleSounds()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Lookup goes through the same slug.
	if _, err := s.Load("rainy caf night"); err != nil {
		t.Errorf("Expected slugged lookup to succeed, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	if err := s.Save("gone", sampleSounds()); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListOrdersByRecency(t *testing.T) {
	s := testStore(t)
	if err := s.Save("older", sampleSounds()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := s.Save("newer", sampleSounds()); err != nil {
		t.Fatal(err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "newer" {
		t.Errorf("Expected most recent first, got %q", entries[0].Name)
	}
}

func TestValidate(t *testing.T) {
	cat, err := catalog.Parse([]byte(`{"categories":{"a":[{"id":1,"name":"x"},{"id":2,"name":"y"}]}}`))
	if err != nil {
		t.Fatal(err)
	}

	good := &Snapshot{Sounds: sampleSounds()}
	if err := Validate(good, cat); err != nil {
		t.Errorf("Expected valid snapshot, got %v", err)
	}

	bad := &Snapshot{Sounds: []mixer.Sound{{ID: 99, Name: "ghost"}}}
	if err := Validate(bad, cat); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

func TestWatchSeesNewPresets(t *testing.T) {
	s := testStore(t)
	w, err := s.Watch()
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close() //nolint:errcheck

	if err := s.Save("watched", sampleSounds()); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events:
		if ev.Op == 0 {
			t.Errorf("Unexpected empty event: %v", ev)
		}
	case err := <-w.Errors:
		t.Fatalf("Watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a filesystem event after saving a preset")
	}
}
