package mixer

// Master is the aggregate view the master control bar renders. It is derived
// from the sound list on demand; nothing in it is stored.
type Master struct {
	// MasterVolume is the minimum volume across all sounds, or VolumeMax for
	// an empty list. Any single quieter sound caps the displayed value.
	MasterVolume int

	// SelectedSounds are the selected entries in list order.
	SelectedSounds []Sound

	// IsPlaying is true if any sound at all is playing.
	IsPlaying bool

	// ActiveSelectedCount counts selected sounds that are also playing.
	ActiveSelectedCount int

	// HasSelectedSounds is true when the selection is non-empty.
	HasSelectedSounds bool

	// HasPlayingSounds is true if any selected sound is playing.
	HasPlayingSounds bool
}

// Aggregate computes the master view for a sound list.
func Aggregate(sounds []Sound) Master {
	m := Master{MasterVolume: VolumeMax}

	for _, s := range sounds {
		if s.Volume < m.MasterVolume {
			m.MasterVolume = s.Volume
		}
		if s.IsPlaying {
			m.IsPlaying = true
		}
		if s.Selected {
			m.SelectedSounds = append(m.SelectedSounds, s)
			if s.IsPlaying {
				m.ActiveSelectedCount++
				m.HasPlayingSounds = true
			}
		}
	}

	m.HasSelectedSounds = len(m.SelectedSounds) > 0
	return m
}

// Controls translates UI gestures into store actions. All input validation
// (clamping, selection preconditions) happens here, before dispatch; the
// reducer below it stays total over its action set.
type Controls struct {
	store *Store
}

// NewControls wraps a store with intent handlers.
func NewControls(store *Store) *Controls {
	return &Controls{store: store}
}

// Master returns the current aggregate view.
func (c *Controls) Master() Master {
	return Aggregate(c.store.Sounds())
}

// SetMasterVolume sets every sound's volume to the given level, clamped.
func (c *Controls) SetMasterVolume(volume int) {
	c.store.Dispatch(SetMasterVolume{Volume: ClampVolume(volume)})
}

// MuteMaster drops the master volume to the minimum.
func (c *Controls) MuteMaster() {
	c.store.Dispatch(SetMasterVolume{Volume: VolumeMin})
}

// MaxMaster raises the master volume to the maximum.
func (c *Controls) MaxMaster() {
	c.store.Dispatch(SetMasterVolume{Volume: VolumeMax})
}

// PlayPauseToggle pauses everything if any selected sound is playing,
// otherwise starts each selected sound with its own dispatch. With nothing
// selected it does nothing at all.
func (c *Controls) PlayPauseToggle() {
	m := c.Master()
	if !m.HasSelectedSounds {
		return
	}

	if m.HasPlayingSounds {
		c.store.Dispatch(SetAllPaused{})
		return
	}

	for _, s := range m.SelectedSounds {
		c.store.Dispatch(PlaySound{ID: s.ID})
	}
}

// ClearSelection deselects every sound, stopping any that were playing.
func (c *Controls) ClearSelection() {
	c.store.Dispatch(DeselectAllSounds{})
}

// SelectAll selects every sound.
func (c *Controls) SelectAll() {
	c.store.Dispatch(SelectAllSounds{})
}

// ToggleSelection flips one sound's membership in the mix. Removing a sound
// goes through DeselectSound so a playing sound is also stopped; a sound that
// is not selected must never stay marked playing.
func (c *Controls) ToggleSelection(id int) {
	s, ok := c.store.Sound(id)
	if !ok {
		return
	}
	if s.Selected {
		c.store.Dispatch(DeselectSound{ID: id})
		return
	}
	c.store.Dispatch(SelectSound{ID: id})
}

// TogglePlayback flips one sound between playing and stopped. Selection is a
// precondition for starting playback; toggling an unselected sound only ever
// stops it.
func (c *Controls) TogglePlayback(id int) {
	s, ok := c.store.Sound(id)
	if !ok {
		return
	}
	if !s.Selected && !s.IsPlaying {
		return
	}
	c.store.Dispatch(ToggleSound{ID: id})
}

// SetVolume sets one sound's volume, clamped.
func (c *Controls) SetVolume(id, volume int) {
	if _, ok := c.store.Sound(id); !ok {
		return
	}
	c.store.Dispatch(SetVolume{ID: id, Volume: ClampVolume(volume)})
}

// AdjustVolume nudges one sound's volume by delta steps.
func (c *Controls) AdjustVolume(id, delta int) {
	s, ok := c.store.Sound(id)
	if !ok {
		return
	}
	c.store.Dispatch(SetVolume{ID: id, Volume: ClampVolume(s.Volume + delta)})
}

// ToggleMute flips one sound's mute flag.
func (c *Controls) ToggleMute(id int) {
	s, ok := c.store.Sound(id)
	if !ok {
		return
	}
	c.store.Dispatch(MuteSound{ID: id, Muted: !s.IsMuted})
}

// Solo mutes every sound except the given one.
func (c *Controls) Solo(id int) {
	if _, ok := c.store.Sound(id); !ok {
		return
	}
	c.store.Dispatch(MuteAllExcept{ID: id})
}

// Reset restores every sound's playback defaults, keeping the selection.
func (c *Controls) Reset() {
	c.store.Dispatch(ResetAll{})
}

// PauseAll stops playback on every sound. The timer's completion hook uses
// this.
func (c *Controls) PauseAll() {
	c.store.Dispatch(SetAllPaused{})
}
