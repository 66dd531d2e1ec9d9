package mixer

// Reduce applies an action to the sound list and returns the resulting list.
// It is a pure function: the input slice is never mutated, list length and
// order are preserved for every action except LoadPreset, and unaffected
// entries are carried over unchanged. Side effects live elsewhere.
func Reduce(sounds []Sound, action Action) []Sound {
	switch a := action.(type) {
	case PlaySound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.IsPlaying = true
			return s
		})

	case StopSound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.IsPlaying = false
			return s
		})

	case ToggleSound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.IsPlaying = !s.IsPlaying
			return s
		})

	case SetAllPlaying:
		return mapAll(sounds, func(s Sound) Sound {
			s.IsPlaying = true
			return s
		})

	case SetAllPaused:
		return mapAll(sounds, func(s Sound) Sound {
			s.IsPlaying = false
			return s
		})

	case SetVolume:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.Volume = ClampVolume(a.Volume)
			return s
		})

	case SetMasterVolume:
		v := ClampVolume(a.Volume)
		return mapAll(sounds, func(s Sound) Sound {
			s.Volume = v
			return s
		})

	case MuteSound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.IsMuted = a.Muted
			return s
		})

	case MuteAllExcept:
		return mapAll(sounds, func(s Sound) Sound {
			if s.ID != a.ID {
				s.IsMuted = true
			}
			return s
		})

	case ApplyMixSettings:
		return mapAll(sounds, func(s Sound) Sound {
			if level, ok := a.Levels[s.ID]; ok {
				s.MixLevel = level
			}
			return s
		})

	case LoadPreset:
		next := make([]Sound, len(a.Sounds))
		copy(next, a.Sounds)
		return next

	case SavePreset:
		// Persistence is delegated to the preset store; local state is
		// untouched.
		return sounds

	case SelectSound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.Selected = true
			return s
		})

	case DeselectSound:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.Selected = false
			s.IsPlaying = false
			return s
		})

	case ToggleSoundSelection:
		return mapSound(sounds, a.ID, func(s Sound) Sound {
			s.Selected = !s.Selected
			return s
		})

	case SelectAllSounds:
		return mapAll(sounds, func(s Sound) Sound {
			s.Selected = true
			return s
		})

	case DeselectAllSounds:
		return mapAll(sounds, func(s Sound) Sound {
			s.Selected = false
			s.IsPlaying = false
			return s
		})

	case ResetAll:
		return mapAll(sounds, func(s Sound) Sound {
			s.IsPlaying = false
			s.Volume = DefaultVolume
			s.IsMuted = false
			s.MixLevel = DefaultMixLevel
			return s
		})

	default:
		// Unknown actions are ignored, not escalated.
		return sounds
	}
}

// mapAll applies fn to every entry, returning a fresh slice.
func mapAll(sounds []Sound, fn func(Sound) Sound) []Sound {
	next := make([]Sound, len(sounds))
	for i, s := range sounds {
		next[i] = fn(s)
	}
	return next
}

// mapSound applies fn to the entry with the given id, carrying everything
// else over unchanged. A missing id leaves the list as-is.
func mapSound(sounds []Sound, id int, fn func(Sound) Sound) []Sound {
	next := make([]Sound, len(sounds))
	for i, s := range sounds {
		if s.ID == id {
			next[i] = fn(s)
		} else {
			next[i] = s
		}
	}
	return next
}
