package mixer

// Action is the closed set of state transitions the store understands. It is
// a sealed sum type: only types in this package can implement it, and the
// reducer matches on the concrete type with an explicit default branch so an
// unrecognized action is a no-op rather than an error.
type Action interface {
	isAction()
}

// PlaySound marks one sound as playing.
type PlaySound struct{ ID int }

// StopSound marks one sound as not playing.
type StopSound struct{ ID int }

// ToggleSound flips one sound's playing flag.
type ToggleSound struct{ ID int }

// SetAllPlaying marks every sound as playing.
type SetAllPlaying struct{}

// SetAllPaused marks every sound as not playing.
type SetAllPaused struct{}

// SetVolume sets one sound's volume.
type SetVolume struct {
	ID     int
	Volume int
}

// SetMasterVolume sets every sound's volume to the same level. This is a
// uniform overwrite, not a proportional scale: per-sound differences are
// deliberately flattened.
type SetMasterVolume struct{ Volume int }

// MuteSound sets one sound's mute flag.
type MuteSound struct {
	ID    int
	Muted bool
}

// MuteAllExcept mutes every sound other than the given one. The target is
// left untouched, muted or not.
type MuteAllExcept struct{ ID int }

// ApplyMixSettings overwrites the mix level of every sound whose id appears
// in Levels; other sounds are unchanged.
type ApplyMixSettings struct{ Levels map[int]float64 }

// LoadPreset replaces the entire sound list with a stored snapshot. This is
// the only action allowed to change the list's length or order.
type LoadPreset struct {
	Name   string
	Sounds []Sound
}

// SavePreset requests persistence of the current list under a name. It does
// not change local state; the preset store observes it.
type SavePreset struct{ Name string }

// SelectSound adds one sound to the active mix selection.
type SelectSound struct{ ID int }

// DeselectSound removes one sound from the selection and stops it: a
// deselected sound can never remain playing.
type DeselectSound struct{ ID int }

// ToggleSoundSelection flips one sound's selection flag.
type ToggleSoundSelection struct{ ID int }

// SelectAllSounds selects every sound.
type SelectAllSounds struct{}

// DeselectAllSounds clears the selection and stops all playback.
type DeselectAllSounds struct{}

// ResetAll restores playback, volume, mute, and mix level defaults on every
// sound. Selection is left untouched.
type ResetAll struct{}

func (PlaySound) isAction()            {}
func (StopSound) isAction()            {}
func (ToggleSound) isAction()          {}
func (SetAllPlaying) isAction()        {}
func (SetAllPaused) isAction()         {}
func (SetVolume) isAction()            {}
func (SetMasterVolume) isAction()      {}
func (MuteSound) isAction()            {}
func (MuteAllExcept) isAction()        {}
func (ApplyMixSettings) isAction()     {}
func (LoadPreset) isAction()           {}
func (SavePreset) isAction()           {}
func (SelectSound) isAction()          {}
func (DeselectSound) isAction()        {}
func (ToggleSoundSelection) isAction() {}
func (SelectAllSounds) isAction()      {}
func (DeselectAllSounds) isAction()    {}
func (ResetAll) isAction()             {}
