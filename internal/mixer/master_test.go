package mixer

import "testing"

func TestAggregateMasterVolumeIsMinimum(t *testing.T) {
	sounds := testSounds()
	sounds = Reduce(sounds, SetVolume{ID: 1, Volume: 30})
	sounds = Reduce(sounds, SetVolume{ID: 2, Volume: 80})
	sounds = Reduce(sounds, SetVolume{ID: 3, Volume: 100})

	if m := Aggregate(sounds); m.MasterVolume != 30 {
		t.Errorf("Expected master volume 30, got %d", m.MasterVolume)
	}
}

func TestAggregateEmptyList(t *testing.T) {
	m := Aggregate(nil)
	if m.MasterVolume != VolumeMax {
		t.Errorf("Expected master volume %d for empty list, got %d", VolumeMax, m.MasterVolume)
	}
	if m.IsPlaying || m.HasSelectedSounds || m.HasPlayingSounds {
		t.Errorf("Expected inert aggregate for empty list, got %+v", m)
	}
}

func TestAggregateSelectionAndCounts(t *testing.T) {
	sounds := testSounds()
	sounds = Reduce(sounds, SelectSound{ID: 1})
	sounds = Reduce(sounds, SelectSound{ID: 3})
	sounds = Reduce(sounds, PlaySound{ID: 3})

	m := Aggregate(sounds)
	if len(m.SelectedSounds) != 2 {
		t.Fatalf("Expected 2 selected sounds, got %d", len(m.SelectedSounds))
	}
	if m.SelectedSounds[0].ID != 1 || m.SelectedSounds[1].ID != 3 {
		t.Errorf("Selection order not preserved: %+v", m.SelectedSounds)
	}
	if m.ActiveSelectedCount != 1 {
		t.Errorf("Expected 1 active selected sound, got %d", m.ActiveSelectedCount)
	}
	if !m.IsPlaying || !m.HasPlayingSounds || !m.HasSelectedSounds {
		t.Errorf("Aggregate flags wrong: %+v", m)
	}
}

func TestAggregateUnselectedPlayingSound(t *testing.T) {
	// A playing sound outside the selection flips IsPlaying but not
	// HasPlayingSounds, which only looks at the selection.
	sounds := Reduce(testSounds(), PlaySound{ID: 2})
	m := Aggregate(sounds)
	if !m.IsPlaying {
		t.Error("Expected IsPlaying true with any sound playing")
	}
	if m.HasPlayingSounds {
		t.Error("HasPlayingSounds must only consider selected sounds")
	}
}

func TestPlayPauseToggleFanOut(t *testing.T) {
	sink := &recordingSink{}
	st := NewStore(testSounds(), sink)
	c := NewControls(st)

	st.Dispatch(SelectSound{ID: 1})
	st.Dispatch(SelectSound{ID: 2})
	sink.actions = nil

	c.PlayPauseToggle()

	if len(sink.actions) != 2 {
		t.Fatalf("Expected one PlaySound per selected sound, got %d actions", len(sink.actions))
	}
	ids := map[int]int{}
	for _, a := range sink.actions {
		p, ok := a.(PlaySound)
		if !ok {
			t.Fatalf("Expected PlaySound, got %T", a)
		}
		ids[p.ID]++
	}
	if ids[1] != 1 || ids[2] != 1 {
		t.Errorf("Expected exactly one dispatch each for ids 1 and 2, got %v", ids)
	}

	s, _ := st.Sound(3)
	if s.IsPlaying || s.Selected {
		t.Errorf("Sound 3 must be untouched, got %+v", s)
	}
}

func TestPlayPauseToggleWithPlayingSelection(t *testing.T) {
	sink := &recordingSink{}
	st := NewStore(testSounds(), sink)
	c := NewControls(st)

	st.Dispatch(SelectSound{ID: 1})
	st.Dispatch(PlaySound{ID: 1})
	sink.actions = nil

	c.PlayPauseToggle()

	if len(sink.actions) != 1 {
		t.Fatalf("Expected a single SetAllPaused, got %d actions", len(sink.actions))
	}
	if _, ok := sink.actions[0].(SetAllPaused); !ok {
		t.Errorf("Expected SetAllPaused, got %T", sink.actions[0])
	}
}

func TestPlayPauseToggleWithoutSelection(t *testing.T) {
	sink := &recordingSink{}
	st := NewStore(testSounds(), sink)
	c := NewControls(st)

	c.PlayPauseToggle()

	if len(sink.actions) != 0 {
		t.Errorf("Expected no dispatch without a selection, got %d actions", len(sink.actions))
	}
}

func TestControlsClampVolume(t *testing.T) {
	st := NewStore(testSounds(), nil)
	c := NewControls(st)

	c.SetMasterVolume(300)
	if m := c.Master(); m.MasterVolume != VolumeMax {
		t.Errorf("Expected clamped master volume %d, got %d", VolumeMax, m.MasterVolume)
	}

	c.SetVolume(1, -50)
	s, _ := st.Sound(1)
	if s.Volume != VolumeMin {
		t.Errorf("Expected clamped volume %d, got %d", VolumeMin, s.Volume)
	}
}

func TestControlsMuteAndMax(t *testing.T) {
	st := NewStore(testSounds(), nil)
	c := NewControls(st)

	c.MuteMaster()
	if m := c.Master(); m.MasterVolume != VolumeMin {
		t.Errorf("Expected master volume %d after mute, got %d", VolumeMin, m.MasterVolume)
	}

	c.MaxMaster()
	if m := c.Master(); m.MasterVolume != VolumeMax {
		t.Errorf("Expected master volume %d after max, got %d", VolumeMax, m.MasterVolume)
	}
}

func TestTogglePlaybackRequiresSelection(t *testing.T) {
	st := NewStore(testSounds(), nil)
	c := NewControls(st)

	c.TogglePlayback(1)
	s, _ := st.Sound(1)
	if s.IsPlaying {
		t.Error("Unselected sound must not start playing")
	}

	c.ToggleSelection(1)
	c.TogglePlayback(1)
	s, _ = st.Sound(1)
	if !s.IsPlaying {
		t.Error("Selected sound should toggle to playing")
	}
}

func TestToggleSelectionStopsPlayingSound(t *testing.T) {
	st := NewStore(testSounds(), nil)
	c := NewControls(st)

	c.ToggleSelection(1)
	st.Dispatch(PlaySound{ID: 1})

	c.ToggleSelection(1)
	s, _ := st.Sound(1)
	if s.Selected {
		t.Error("Expected sound 1 deselected after second toggle")
	}
	if s.IsPlaying {
		t.Error("A deselected sound must not stay marked playing")
	}
}

func TestAdjustVolume(t *testing.T) {
	st := NewStore(testSounds(), nil)
	c := NewControls(st)

	c.AdjustVolume(2, 30)
	s, _ := st.Sound(2)
	if s.Volume != DefaultVolume+30 {
		t.Errorf("Expected volume %d, got %d", DefaultVolume+30, s.Volume)
	}

	c.AdjustVolume(2, 100)
	s, _ = st.Sound(2)
	if s.Volume != VolumeMax {
		t.Errorf("Expected volume clamped to %d, got %d", VolumeMax, s.Volume)
	}
}

func TestControlsIgnoreUnknownIDs(t *testing.T) {
	sink := &recordingSink{}
	st := NewStore(testSounds(), sink)
	c := NewControls(st)

	c.ToggleSelection(99)
	c.TogglePlayback(99)
	c.SetVolume(99, 10)
	c.ToggleMute(99)
	c.Solo(99)

	if len(sink.actions) != 0 {
		t.Errorf("Expected no dispatch for unknown ids, got %d actions", len(sink.actions))
	}
}
