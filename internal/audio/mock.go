package audio

import (
	"context"
	"sync"
)

// Call records one command the mock backend received.
type Call struct {
	Command string
	ID      int
	Volume  int
	Muted   bool
	Name    string
	Levels  map[int]float64
}

// Mock implements Backend for testing. It records every call and can be
// configured to fail, simulating an unreachable native engine.
type Mock struct {
	mu     sync.Mutex
	calls  []Call
	err    error // returned from every command when set
	closed bool
}

// NewMock creates a mock backend.
func NewMock() *Mock {
	return &Mock{}
}

// FailWith makes every subsequent command return err.
func (m *Mock) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns a snapshot of the recorded commands.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsFor returns the recorded commands with the given name.
func (m *Mock) CallsFor(command string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.calls {
		if c.Command == command {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls clears the recorded history.
func (m *Mock) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

func (m *Mock) record(c Call) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrBackendClosed
	}
	m.calls = append(m.calls, c)
	return m.err
}

func (m *Mock) PlaySound(_ context.Context, id int) error {
	return m.record(Call{Command: "play_sound", ID: id})
}

func (m *Mock) StopSound(_ context.Context, id int) error {
	return m.record(Call{Command: "stop_sound", ID: id})
}

func (m *Mock) SetVolume(_ context.Context, id, volume int) error {
	return m.record(Call{Command: "set_volume", ID: id, Volume: volume})
}

func (m *Mock) SetMasterVolume(_ context.Context, volume int) error {
	return m.record(Call{Command: "set_master_volume", Volume: volume})
}

func (m *Mock) MuteSound(_ context.Context, id int, muted bool) error {
	return m.record(Call{Command: "mute_sound", ID: id, Muted: muted})
}

func (m *Mock) MuteAllExcept(_ context.Context, id int) error {
	return m.record(Call{Command: "mute_all_except", ID: id})
}

func (m *Mock) SetAllPlaying(_ context.Context) error {
	return m.record(Call{Command: "set_all_playing"})
}

func (m *Mock) SetAllPaused(_ context.Context) error {
	return m.record(Call{Command: "set_all_paused"})
}

func (m *Mock) ApplyMixSettings(_ context.Context, levels map[int]float64) error {
	return m.record(Call{Command: "apply_mix_settings", Levels: levels})
}

func (m *Mock) LoadPreset(_ context.Context, name string) error {
	return m.record(Call{Command: "load_preset", Name: name})
}

func (m *Mock) SavePreset(_ context.Context, name string) error {
	return m.record(Call{Command: "save_preset", Name: name})
}

func (m *Mock) ResetAll(_ context.Context) error {
	return m.record(Call{Command: "reset_all"})
}

func (m *Mock) SelectAllSounds(_ context.Context) error {
	return m.record(Call{Command: "select_all_sounds"})
}

func (m *Mock) LoadCatalog(_ context.Context, path string) error {
	return m.record(Call{Command: "load_sound_catalog", Name: path})
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
