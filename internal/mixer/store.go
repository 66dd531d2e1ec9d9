package mixer

import "sync"

// Sink receives every action after it has been applied to local state, along
// with the post-transition snapshot (needed to translate state-dependent
// actions like toggles into concrete backend commands). The audio dispatcher
// implements it; implementations must not block, and their failures must
// never be used to roll back the store. A nil sink is valid and means no side
// effects.
type Sink interface {
	Apply(action Action, after []Sound)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Action, []Sound)

// Apply calls f.
func (f SinkFunc) Apply(action Action, after []Sound) { f(action, after) }

// Store owns the canonical sound list. It is constructed once at startup and
// passed by handle to whatever needs it; there is no package-level instance.
//
// All mutations go through Dispatch, which serializes them behind a single
// writer lock: the reduction itself stays a pure function of (state, action).
type Store struct {
	mu     sync.RWMutex
	sounds []Sound
	sink   Sink
}

// NewStore creates a store over an initial sound list. sink may be nil.
func NewStore(initial []Sound, sink Sink) *Store {
	sounds := make([]Sound, len(initial))
	copy(sounds, initial)
	return &Store{sounds: sounds, sink: sink}
}

// Dispatch applies an action: reduce to the new state, swap it in, then hand
// the action to the sink. The sink call is fire-and-forget from the caller's
// point of view; Dispatch never waits on the backend.
func (st *Store) Dispatch(action Action) {
	st.mu.Lock()
	st.sounds = Reduce(st.sounds, action)
	after := make([]Sound, len(st.sounds))
	copy(after, st.sounds)
	st.mu.Unlock()

	if st.sink != nil {
		st.sink.Apply(action, after)
	}
}

// Sounds returns a snapshot of the current sound list.
func (st *Store) Sounds() []Sound {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]Sound, len(st.sounds))
	copy(out, st.sounds)
	return out
}

// Sound returns the entry with the given id.
func (st *Store) Sound(id int) (Sound, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, s := range st.sounds {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}

// Len returns the number of sounds in the store.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sounds)
}
