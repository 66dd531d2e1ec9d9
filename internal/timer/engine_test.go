package timer

import (
	"errors"
	"testing"
)

func TestStartRejectsNonPositiveDurations(t *testing.T) {
	e := New()
	e.SetPreviewTime(120)

	for _, seconds := range []int{0, -5} {
		if err := e.Start(seconds); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Start(%d): expected ErrInvalidDuration, got %v", seconds, err)
		}
	}

	// Failed starts must leave the engine exactly as it was.
	if e.State() != StatePreviewing {
		t.Errorf("Expected previewing state after failed starts, got %s", e.State())
	}
	if e.Selected() != 120 {
		t.Errorf("Expected preview time preserved, got %d", e.Selected())
	}
	if e.Active() || e.Running() {
		t.Error("Failed start left the engine active")
	}
}

func TestStartInitializesRun(t *testing.T) {
	e := New()
	e.SetPreviewTime(300)

	if err := e.Start(180); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if e.State() != StateRunning {
		t.Errorf("Expected running, got %s", e.State())
	}
	if e.Remaining() != 180 || e.Initial() != 180 {
		t.Errorf("Expected remaining=initial=180, got %d/%d", e.Remaining(), e.Initial())
	}
	if e.Selected() != 0 {
		t.Error("Start must clear the preview duration")
	}
}

func TestThreeTicksCompleteAndFirePauseOnce(t *testing.T) {
	e := New()
	pauseAllCalls := 0
	e.OnComplete(func() { pauseAllCalls++ })

	if err := e.Start(3); err != nil {
		t.Fatal(err)
	}

	gen := e.Generation()
	if out := e.Tick(gen); out != TickCounted {
		t.Errorf("Tick 1: expected TickCounted, got %v", out)
	}
	if out := e.Tick(gen); out != TickCounted {
		t.Errorf("Tick 2: expected TickCounted, got %v", out)
	}
	if out := e.Tick(gen); out != TickCompleted {
		t.Errorf("Tick 3: expected TickCompleted, got %v", out)
	}

	if e.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", e.Remaining())
	}
	if e.Running() {
		t.Error("Timer must stop at zero, never hold running with zero remaining")
	}
	if e.State() != StateCompleted {
		t.Errorf("Expected completed, got %s", e.State())
	}
	if pauseAllCalls != 1 {
		t.Errorf("Expected exactly one completion dispatch, got %d", pauseAllCalls)
	}

	// Further ticks on the old generation are dead.
	if out := e.Tick(gen); out != TickIgnored {
		t.Errorf("Expected stale tick ignored, got %v", out)
	}
	if pauseAllCalls != 1 {
		t.Errorf("Completion fired again: %d calls", pauseAllCalls)
	}
}

func TestStaleGenerationTicksIgnored(t *testing.T) {
	e := New()
	if err := e.Start(10); err != nil {
		t.Fatal(err)
	}

	stale := e.Generation()
	e.Pause()
	e.Resume()

	if out := e.Tick(stale); out != TickIgnored {
		t.Errorf("Expected pre-pause tick ignored, got %v", out)
	}
	if e.Remaining() != 10 {
		t.Errorf("Stale tick decremented the clock: %d remaining", e.Remaining())
	}

	if out := e.Tick(e.Generation()); out != TickCounted {
		t.Errorf("Expected current-generation tick counted, got %v", out)
	}
	if e.Remaining() != 9 {
		t.Errorf("Expected 9 remaining, got %d", e.Remaining())
	}
}

func TestPauseAndResume(t *testing.T) {
	e := New()
	if err := e.Start(60); err != nil {
		t.Fatal(err)
	}
	e.Tick(e.Generation())

	e.Pause()
	if e.State() != StatePaused {
		t.Errorf("Expected paused, got %s", e.State())
	}
	if out := e.Tick(e.Generation()); out != TickIgnored {
		t.Errorf("Paused engine consumed a tick: %v", out)
	}

	e.Resume()
	if e.State() != StateRunning {
		t.Errorf("Expected running after resume, got %s", e.State())
	}
	if e.Remaining() != 59 {
		t.Errorf("Expected 59 remaining, got %d", e.Remaining())
	}
}

func TestPauseWhenNotRunningIsNoOp(t *testing.T) {
	e := New()
	gen := e.Generation()
	e.Pause()
	if e.Generation() != gen {
		t.Error("Pausing an idle engine must not invalidate anything")
	}
}

func TestResumeAfterCompletionIsNoOp(t *testing.T) {
	e := New()
	if err := e.Start(1); err != nil {
		t.Fatal(err)
	}
	e.Tick(e.Generation())

	e.Resume()
	if e.Running() {
		t.Error("Resume must be a no-op with zero remaining")
	}
	if e.State() != StateCompleted {
		t.Errorf("Expected completed, got %s", e.State())
	}
}

// Reset restores the display to the duration last started with rather than
// zero. That reads oddly but matches the timer's documented behavior: reset
// means "reload the same duration", not "clear".
func TestResetRestoresInitialDuration(t *testing.T) {
	e := New()
	if err := e.Start(120); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 40; i++ {
		e.Tick(e.Generation())
	}
	if e.Remaining() != 80 {
		t.Fatalf("Expected 80 remaining before reset, got %d", e.Remaining())
	}

	e.Reset()

	if e.Remaining() != 120 {
		t.Errorf("Expected remaining restored to 120, got %d", e.Remaining())
	}
	if e.State() != StateIdle {
		t.Errorf("Expected idle after reset, got %s", e.State())
	}
	if e.Running() || e.Active() || e.Selected() != 0 {
		t.Error("Reset must clear running, active, and preview state")
	}
}

func TestRestartAfterReset(t *testing.T) {
	e := New()
	completions := 0
	e.OnComplete(func() { completions++ })

	if err := e.Start(2); err != nil {
		t.Fatal(err)
	}
	e.Tick(e.Generation())
	e.Tick(e.Generation())
	e.Reset()

	if err := e.Start(2); err != nil {
		t.Fatal(err)
	}
	e.Tick(e.Generation())
	e.Tick(e.Generation())

	if completions != 2 {
		t.Errorf("Expected one completion per run, got %d", completions)
	}
}

func TestPreviewTransitions(t *testing.T) {
	e := New()
	if e.State() != StateIdle {
		t.Fatalf("Expected idle, got %s", e.State())
	}

	e.SetPreviewTime(600)
	if e.State() != StatePreviewing {
		t.Errorf("Expected previewing, got %s", e.State())
	}

	e.SetPreviewTime(0)
	if e.State() != StateIdle {
		t.Errorf("Expected idle after clearing preview, got %s", e.State())
	}

	e.SetPreviewTime(-30)
	if e.Selected() != 0 {
		t.Errorf("Negative preview should floor at 0, got %d", e.Selected())
	}
}

func TestPreviewDoesNotAffectRunningTimer(t *testing.T) {
	e := New()
	if err := e.Start(30); err != nil {
		t.Fatal(err)
	}

	e.SetPreviewTime(900)
	if e.State() != StateRunning || e.Remaining() != 30 {
		t.Error("Preview selection must not disturb an in-progress countdown")
	}
}

func TestStateStrings(t *testing.T) {
	cases := map[State]string{
		StateIdle:       "idle",
		StatePreviewing: "previewing",
		StateRunning:    "running",
		StatePaused:     "paused",
		StateCompleted:  "completed",
		State(99):       "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
