package audio

import (
	"context"
	"testing"

	"github.com/ebitengine/oto/v3"

	"github.com/hush-sh/hush/internal/mixer"
)

// testEngine builds an Engine without an audio device. With no live players
// the command bookkeeping runs exactly as in production.
func testEngine() *Engine {
	return &Engine{
		players: make(map[int]*oto.Player),
		playing: make(map[int]bool),
		volumes: make(map[int]int),
		muted:   make(map[int]bool),
		mix:     make(map[int]float64),
		master:  mixer.VolumeMax,
	}
}

func (e *Engine) gain(id int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gainLocked(id)
}

func TestMuteAllExceptCoversUnplayedSounds(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	// Commanded but never played.
	if err := e.SetVolume(ctx, 2, 70); err != nil {
		t.Fatal(err)
	}
	if err := e.ApplyMixSettings(ctx, map[int]float64{3: 0.5}); err != nil {
		t.Fatal(err)
	}

	if err := e.MuteAllExcept(ctx, 1); err != nil {
		t.Fatal(err)
	}

	if !e.muted[2] || !e.muted[3] {
		t.Errorf("Expected commanded-but-unplayed sounds muted, got %v", e.muted)
	}
	if g := e.gain(2); g != 0 {
		t.Errorf("Expected gain 0 for muted sound 2, got %v", g)
	}
	if g := e.gain(1); g == 0 {
		t.Error("Expected the solo exception to stay audible")
	}
}

func TestMuteAllExceptCoversLaterSounds(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	if err := e.MuteAllExcept(ctx, 1); err != nil {
		t.Fatal(err)
	}

	// A sound first seen after the solo starts silent.
	if g := e.gain(9); g != 0 {
		t.Errorf("Expected gain 0 for a sound first seen under a solo, got %v", g)
	}

	// An explicit unmute overrides the solo default.
	if err := e.MuteSound(ctx, 9, false); err != nil {
		t.Fatal(err)
	}
	if g := e.gain(9); g == 0 {
		t.Error("Expected explicit unmute to override the solo default")
	}
}

func TestResetAllClearsSolo(t *testing.T) {
	e := testEngine()
	ctx := context.Background()

	if err := e.MuteAllExcept(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := e.ResetAll(ctx); err != nil {
		t.Fatal(err)
	}

	if g := e.gain(9); g == 0 {
		t.Error("Expected reset to lift the solo default for new sounds")
	}
}
