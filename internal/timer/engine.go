// Package timer implements the countdown that auto-pauses playback: a small
// state machine ticking on a one-second cadence, with a preview duration that
// can be chosen before starting and a completion hook fired exactly once per
// run.
package timer

import (
	"errors"
	"sync"
)

// ErrInvalidDuration is returned when a countdown is started with a
// non-positive number of seconds.
var ErrInvalidDuration = errors.New("timer duration must be greater than 0")

// State identifies the phase the countdown is in.
type State int

const (
	// StateIdle means the timer has not been started.
	StateIdle State = iota
	// StatePreviewing means a duration has been chosen but not started.
	StatePreviewing
	// StateRunning means the countdown is ticking.
	StateRunning
	// StatePaused means the countdown is suspended with time remaining.
	StatePaused
	// StateCompleted means the countdown reached zero.
	StateCompleted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreviewing:
		return "previewing"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TickOutcome reports what a tick did.
type TickOutcome int

const (
	// TickIgnored means the tick was stale or the timer was not running.
	TickIgnored TickOutcome = iota
	// TickCounted means one second was consumed and time remains.
	TickCounted
	// TickCompleted means the tick drained the countdown to zero.
	TickCompleted
)

// Engine is a single countdown instance. Every observable mutation bumps the
// generation; ticks carry the generation they were scheduled under, so a tick
// scheduled before a pause, reset, or restart can never double-decrement the
// clock. At most one live tick chain exists per generation.
type Engine struct {
	mu sync.Mutex

	remaining  int
	selected   int // preview duration, not yet started
	initial    int // duration last started with, restored by Reset
	running    bool
	active     bool
	generation int
	completed  bool // completion hook already fired for this run

	onComplete func()
}

// New creates an idle countdown engine.
func New() *Engine {
	return &Engine{}
}

// OnComplete registers the hook fired when the countdown reaches zero. The
// mixer wires this to a pause-all dispatch.
func (e *Engine) OnComplete(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onComplete = fn
}

// SetPreviewTime records a chosen duration without starting it. It never
// affects an in-progress countdown.
func (e *Engine) SetPreviewTime(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	e.selected = seconds
}

// Start begins a countdown. A non-positive duration is rejected and the
// engine is left exactly as it was.
func (e *Engine) Start(totalSeconds int) error {
	if totalSeconds <= 0 {
		return ErrInvalidDuration
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.remaining = totalSeconds
	e.initial = totalSeconds
	e.running = true
	e.active = true
	e.selected = 0
	e.completed = false
	e.generation++
	return nil
}

// Pause suspends a running countdown. Pausing also invalidates any pending
// tick; a no-op if the timer is not running.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	e.generation++
}

// Resume continues a paused countdown. A no-op unless time remains.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running || !e.active || e.remaining <= 0 {
		return
	}
	e.running = true
	e.generation++
}

// Reset returns the engine to idle. The remaining display is restored to the
// duration last started with, not zeroed: reset reads as "reload the same
// duration". Documented behavior, kept as-is.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.remaining = e.initial
	e.running = false
	e.active = false
	e.selected = 0
	e.generation++
}

// Tick consumes one second of wall-clock time. Ticks scheduled under an older
// generation are ignored, as are ticks arriving while not running. When the
// countdown drains, the engine stops and the completion hook fires exactly
// once.
func (e *Engine) Tick(generation int) TickOutcome {
	e.mu.Lock()

	if generation != e.generation || !e.running {
		e.mu.Unlock()
		return TickIgnored
	}

	e.remaining--
	if e.remaining > 0 {
		e.mu.Unlock()
		return TickCounted
	}

	e.remaining = 0
	e.running = false
	e.generation++

	fire := !e.completed
	e.completed = true
	hook := e.onComplete
	e.mu.Unlock()

	// The hook dispatches into the store; call it outside the lock.
	if fire && hook != nil {
		hook()
	}
	return TickCompleted
}

// State derives the current phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.active && e.running:
		return StateRunning
	case e.active && e.remaining > 0:
		return StatePaused
	case e.active:
		return StateCompleted
	case e.selected > 0:
		return StatePreviewing
	default:
		return StateIdle
	}
}

// Remaining returns the seconds left on the clock.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Running reports whether the countdown is ticking.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Active reports whether the timer has been started and not yet reset.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Selected returns the preview duration in seconds.
func (e *Engine) Selected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// Initial returns the duration the countdown was last started with.
func (e *Engine) Initial() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initial
}

// Generation returns the token a new tick chain must carry.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}
