package ui

// Config contains TUI-specific configuration.
type Config struct {
	// CatalogPath points at a user catalog file; empty means the embedded
	// catalog.
	CatalogPath string

	// SoundsDir, when set, builds the catalog by scanning a directory of
	// audio files instead.
	SoundsDir string

	// PresetDir overrides where presets are stored.
	PresetDir string `env:"HUSH_PRESET_DIR"`

	// DefaultVolume is the level sounds start at; 0 means the built-in
	// default.
	DefaultVolume int `env:"HUSH_DEFAULT_VOLUME"`

	EnableMouse bool
	Width       uint

	// AudioEnabled controls whether the oto backend is brought up; with it
	// off the mixer still runs, just silently.
	AudioEnabled bool `env:"HUSH_AUDIO" envDefault:"true"`

	// SampleRate for the audio device.
	SampleRate int `env:"HUSH_SAMPLE_RATE" envDefault:"44100"`
}
