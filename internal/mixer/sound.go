// Package mixer owns the runtime state of the ambient mix: one mutable record
// per catalog sound, a closed set of actions, and a pure reduction function
// that applies them. Side effects toward the audio backend are dispatched
// alongside the reduction, never from inside it.
package mixer

import "github.com/hush-sh/hush/internal/catalog"

// Volume bounds for per-sound and master volume sliders.
const (
	VolumeMin  = 0
	VolumeMax  = 100
	VolumeStep = 1

	// DefaultVolume is the level every sound starts at.
	DefaultVolume = 50

	// DefaultMixLevel is the neutral per-sound mix multiplier.
	DefaultMixLevel = 1
)

// Sound is the mutable runtime record for one catalog sound. The list of
// Sounds is created once from the catalog and mutated only through Reduce.
type Sound struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	IsPlaying bool    `json:"isPlaying"`
	Volume    int     `json:"volume"`
	IsMuted   bool    `json:"isMuted"`
	MixLevel  float64 `json:"mixLevel"`
	PresetID  string  `json:"presetId,omitempty"`
	Selected  bool    `json:"selected"`
}

// FromCatalog builds the initial runtime state for a catalog: insertion order
// follows the catalog, all flags off, volume at the default level.
func FromCatalog(items []catalog.Sound) []Sound {
	sounds := make([]Sound, len(items))
	for i, item := range items {
		sounds[i] = Sound{
			ID:       item.ID,
			Name:     item.Name,
			Volume:   DefaultVolume,
			MixLevel: DefaultMixLevel,
		}
	}
	return sounds
}

// ClampVolume bounds v to the valid volume range.
func ClampVolume(v int) int {
	if v < VolumeMin {
		return VolumeMin
	}
	if v > VolumeMax {
		return VolumeMax
	}
	return v
}
