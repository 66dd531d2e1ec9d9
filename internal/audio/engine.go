package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"

	"github.com/hush-sh/hush/internal/mixer"
)

// Engine is the in-process audio backend: one looping tone player per sound
// id, mixed by oto. The effective gain of a sound is
//
//	muted ? 0 : (volume/100) * (master/100) * mixLevel
//
// matching what the original native engine computed per sink.
type Engine struct {
	ctx        *oto.Context
	sampleRate int

	mu      sync.Mutex
	players map[int]*oto.Player
	playing map[int]bool
	volumes map[int]int
	muted   map[int]bool
	mix     map[int]float64
	master  int
	// solo is the surviving id of the last mute_all_except, 0 when none.
	// Ids with no explicit muted entry default to muted while a solo is in
	// effect, so a sound first commanded after the solo starts silent.
	solo   int
	closed bool
}

// DefaultSampleRate is used when config doesn't override it.
const DefaultSampleRate = 44100

// NewEngine initializes the audio device and waits for it to become ready.
func NewEngine(sampleRate int) (*Engine, error) {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceInit, err)
	}
	<-ready

	return &Engine{
		ctx:        ctx,
		sampleRate: sampleRate,
		players:    make(map[int]*oto.Player),
		playing:    make(map[int]bool),
		volumes:    make(map[int]int),
		muted:      make(map[int]bool),
		mix:        make(map[int]float64),
		master:     mixer.VolumeMax,
	}, nil
}

// gainFor computes the effective player gain from the mixer-level settings.
func gainFor(volume, master int, mixLevel float64, muted bool) float64 {
	if muted {
		return 0
	}
	g := float64(volume) / 100.0 * float64(master) / 100.0 * mixLevel
	if g < 0 {
		return 0
	}
	if g > 1 {
		return 1
	}
	return g
}

// gainLocked computes the current gain for an id. Caller holds e.mu.
func (e *Engine) gainLocked(id int) float64 {
	volume, ok := e.volumes[id]
	if !ok {
		volume = mixer.DefaultVolume
	}
	level, ok := e.mix[id]
	if !ok {
		level = mixer.DefaultMixLevel
	}
	muted, ok := e.muted[id]
	if !ok {
		muted = e.solo != 0 && id != e.solo
	}
	return gainFor(volume, e.master, level, muted)
}

// PlaySound starts (or resumes) the looping tone for a sound. Idempotent
// while the sound is already playing.
func (e *Engine) PlaySound(_ context.Context, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	if e.playing[id] {
		return nil
	}

	p, ok := e.players[id]
	if !ok {
		p = e.ctx.NewPlayer(newTone(id, e.sampleRate))
		e.players[id] = p
	}
	p.SetVolume(e.gainLocked(id))
	p.Play()
	e.playing[id] = true
	log.Debug("sound started", "id", id, "gain", e.gainLocked(id))
	return nil
}

// StopSound pauses a sound's player. The player is kept around so a later
// play or set_all_playing resumes it cheaply.
func (e *Engine) StopSound(_ context.Context, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	if p, ok := e.players[id]; ok && e.playing[id] {
		p.Pause()
	}
	e.playing[id] = false
	return nil
}

// SetVolume stores a sound's volume and applies it to a live player.
func (e *Engine) SetVolume(_ context.Context, id, volume int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	e.volumes[id] = volume
	if p, ok := e.players[id]; ok {
		p.SetVolume(e.gainLocked(id))
	}
	return nil
}

// SetMasterVolume stores the master level and refreshes every live player.
func (e *Engine) SetMasterVolume(_ context.Context, volume int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	e.master = volume
	for id, p := range e.players {
		p.SetVolume(e.gainLocked(id))
	}
	return nil
}

// MuteSound sets a sound's mute flag and applies it to a live player.
func (e *Engine) MuteSound(_ context.Context, id int, muted bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	e.muted[id] = muted
	if p, ok := e.players[id]; ok {
		p.SetVolume(e.gainLocked(id))
	}
	return nil
}

// MuteAllExcept mutes every sound other than the given one, including sounds
// that have been commanded but never played. The exception keeps its prior
// mute state.
func (e *Engine) MuteAllExcept(_ context.Context, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	e.solo = id
	for other := range e.knownIDsLocked() {
		if other != id {
			e.muted[other] = true
		}
	}
	for other, p := range e.players {
		p.SetVolume(e.gainLocked(other))
	}
	return nil
}

// knownIDsLocked collects every id any command has mentioned. Caller holds
// e.mu.
func (e *Engine) knownIDsLocked() map[int]struct{} {
	known := make(map[int]struct{}, len(e.players))
	for id := range e.players {
		known[id] = struct{}{}
	}
	for id := range e.playing {
		known[id] = struct{}{}
	}
	for id := range e.volumes {
		known[id] = struct{}{}
	}
	for id := range e.muted {
		known[id] = struct{}{}
	}
	for id := range e.mix {
		known[id] = struct{}{}
	}
	return known
}

// SetAllPlaying resumes every known player.
func (e *Engine) SetAllPlaying(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	for id, p := range e.players {
		if !e.playing[id] {
			p.Play()
			e.playing[id] = true
		}
	}
	return nil
}

// SetAllPaused pauses every playing player.
func (e *Engine) SetAllPaused(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	for id, p := range e.players {
		if e.playing[id] {
			p.Pause()
			e.playing[id] = false
		}
	}
	return nil
}

// ApplyMixSettings overwrites per-sound mix levels and refreshes gains.
func (e *Engine) ApplyMixSettings(_ context.Context, levels map[int]float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	for id, level := range levels {
		e.mix[id] = level
	}
	for id, p := range e.players {
		p.SetVolume(e.gainLocked(id))
	}
	return nil
}

// LoadPreset is bookkeeping only on this side: the store follows up with the
// concrete play/volume commands the preset implies.
func (e *Engine) LoadPreset(_ context.Context, name string) error {
	log.Debug("preset load acknowledged", "name", name)
	return nil
}

// SavePreset is handled by the preset store; the engine only observes it.
func (e *Engine) SavePreset(_ context.Context, name string) error {
	log.Debug("preset save acknowledged", "name", name)
	return nil
}

// ResetAll stops everything and drops all per-sound settings.
func (e *Engine) ResetAll(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrBackendClosed
	}
	for id, p := range e.players {
		p.Pause()
		e.playing[id] = false
	}
	e.volumes = make(map[int]int)
	e.muted = make(map[int]bool)
	e.mix = make(map[int]float64)
	e.master = mixer.VolumeMax
	e.solo = 0
	return nil
}

// SelectAllSounds is a UI-side notion; nothing to do at the device.
func (e *Engine) SelectAllSounds(context.Context) error { return nil }

// LoadCatalog is acknowledged only; tones are synthesized per id, so there is
// nothing to preload.
func (e *Engine) LoadCatalog(_ context.Context, path string) error {
	log.Debug("catalog load acknowledged", "path", path)
	return nil
}

// Close pauses and releases every player. The oto context itself has no
// close in v3; it is dropped with the process.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	for _, p := range e.players {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Error("closing audio player", "error", err)
		}
	}
	e.players = nil
	e.playing = nil

	// Give the device a moment to drain; oto flushes asynchronously.
	time.Sleep(10 * time.Millisecond)
	return nil
}
