package audio

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/hush-sh/hush/internal/mixer"
)

// Dispatcher mirrors mixer actions to a Backend. It implements mixer.Sink:
// the store hands it every applied action together with the post-transition
// snapshot, and the dispatcher issues at most one backend command per action
// on its own goroutine. Nothing here ever blocks the reduce path.
//
// Volume actions are throttled: a slider drag produces a burst of
// SET_VOLUME/SET_MASTER_VOLUME dispatches, and the backend only needs to
// converge on the latest value. Throttled levels are coalesced, not dropped:
// the newest level per target is flushed once the limiter permits again, so
// the trailing update of a drag always reaches the device.
type Dispatcher struct {
	backend Backend

	// volumeLimiter gates volume command bursts.
	volumeLimiter *rate.Limiter

	// volMu guards the coalescing state below.
	volMu sync.Mutex
	// pendingVolumes holds the newest throttled level per target
	// (masterVolumeTarget for the master strip).
	pendingVolumes map[int]int
	// flushArmed is true while a flush goroutine is waiting on the limiter.
	flushArmed bool

	// wg tracks in-flight backend calls so Wait can drain them on shutdown
	// (and in tests).
	wg sync.WaitGroup

	// timeout bounds each backend call.
	timeout time.Duration
}

// masterVolumeTarget keys the master level in pendingVolumes. Sound ids are
// positive, so it can never collide.
const masterVolumeTarget = -1

// NewDispatcher wraps a backend. A nil backend yields a dispatcher that drops
// everything, which is how the UI runs with audio disabled.
func NewDispatcher(backend Backend) *Dispatcher {
	return &Dispatcher{
		backend:       backend,
		volumeLimiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 5),
		timeout:       5 * time.Second,
	}
}

// Apply translates one applied action into a backend command. Satisfies
// mixer.Sink.
func (d *Dispatcher) Apply(action mixer.Action, after []mixer.Sound) {
	if d.backend == nil {
		return
	}

	switch a := action.(type) {
	case mixer.PlaySound:
		d.send("play_sound", func(ctx context.Context) error {
			return d.backend.PlaySound(ctx, a.ID)
		})

	case mixer.StopSound:
		d.send("stop_sound", func(ctx context.Context) error {
			return d.backend.StopSound(ctx, a.ID)
		})

	case mixer.ToggleSound:
		// The backend has no toggle command; pick play or stop from the
		// state the toggle produced.
		playing := false
		for _, s := range after {
			if s.ID == a.ID {
				playing = s.IsPlaying
			}
		}
		if playing {
			d.send("play_sound", func(ctx context.Context) error {
				return d.backend.PlaySound(ctx, a.ID)
			})
		} else {
			d.send("stop_sound", func(ctx context.Context) error {
				return d.backend.StopSound(ctx, a.ID)
			})
		}

	case mixer.SetAllPlaying:
		d.send("set_all_playing", func(ctx context.Context) error {
			return d.backend.SetAllPlaying(ctx)
		})

	case mixer.SetAllPaused:
		d.send("set_all_paused", func(ctx context.Context) error {
			return d.backend.SetAllPaused(ctx)
		})

	case mixer.SetVolume:
		d.dispatchVolume(a.ID, a.Volume)

	case mixer.SetMasterVolume:
		d.dispatchVolume(masterVolumeTarget, a.Volume)

	case mixer.MuteSound:
		d.send("mute_sound", func(ctx context.Context) error {
			return d.backend.MuteSound(ctx, a.ID, a.Muted)
		})

	case mixer.MuteAllExcept:
		d.send("mute_all_except", func(ctx context.Context) error {
			return d.backend.MuteAllExcept(ctx, a.ID)
		})

	case mixer.ApplyMixSettings:
		levels := make(map[int]float64, len(a.Levels))
		for id, level := range a.Levels {
			levels[id] = level
		}
		d.send("apply_mix_settings", func(ctx context.Context) error {
			return d.backend.ApplyMixSettings(ctx, levels)
		})

	case mixer.LoadPreset:
		d.send("load_preset", func(ctx context.Context) error {
			return d.backend.LoadPreset(ctx, a.Name)
		})

	case mixer.SavePreset:
		d.send("save_preset", func(ctx context.Context) error {
			return d.backend.SavePreset(ctx, a.Name)
		})

	case mixer.SelectSound, mixer.DeselectSound, mixer.ToggleSoundSelection:
		// Selection is a UI concept; the backend only hears about it when a
		// deselection forces a stop.
		if id, stopped := deselectedStop(action, after); stopped {
			d.send("stop_sound", func(ctx context.Context) error {
				return d.backend.StopSound(ctx, id)
			})
		}

	case mixer.SelectAllSounds:
		d.send("select_all_sounds", func(ctx context.Context) error {
			return d.backend.SelectAllSounds(ctx)
		})

	case mixer.DeselectAllSounds:
		d.send("set_all_paused", func(ctx context.Context) error {
			return d.backend.SetAllPaused(ctx)
		})

	case mixer.ResetAll:
		d.send("reset_all", func(ctx context.Context) error {
			return d.backend.ResetAll(ctx)
		})

	default:
		// Unknown actions never reach the backend.
	}
}

// deselectedStop reports whether a selection action removed a sound from the
// mix (which forces a stop on the backend side).
func deselectedStop(action mixer.Action, after []mixer.Sound) (int, bool) {
	var id int
	switch a := action.(type) {
	case mixer.DeselectSound:
		id = a.ID
	case mixer.ToggleSoundSelection:
		id = a.ID
	default:
		return 0, false
	}
	for _, s := range after {
		if s.ID == id {
			return id, !s.Selected
		}
	}
	return 0, false
}

// dispatchVolume sends a volume level through the limiter. While a flush is
// armed every new level joins the pending set, keeping the values ordered:
// the backend always ends on the newest level per target.
func (d *Dispatcher) dispatchVolume(target, volume int) {
	d.volMu.Lock()
	if d.flushArmed {
		if d.pendingVolumes == nil {
			d.pendingVolumes = make(map[int]int)
		}
		d.pendingVolumes[target] = volume
		d.volMu.Unlock()
		return
	}
	d.volMu.Unlock()

	if d.volumeLimiter.Allow() {
		d.sendVolume(target, volume)
		return
	}

	log.Debug("volume command coalesced", "target", target)
	d.volMu.Lock()
	if d.pendingVolumes == nil {
		d.pendingVolumes = make(map[int]int)
	}
	d.pendingVolumes[target] = volume
	if d.flushArmed {
		d.volMu.Unlock()
		return
	}
	d.flushArmed = true
	d.volMu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.volumeLimiter.Wait(ctx); err != nil {
			// Flush anyway; converging late beats never.
			log.Debug("volume flush past deadline", "error", err)
		}

		// Levels that land while the flush is sending are picked up on the
		// next pass instead of racing a direct send.
		for {
			d.volMu.Lock()
			pending := d.pendingVolumes
			d.pendingVolumes = nil
			if len(pending) == 0 {
				d.flushArmed = false
				d.volMu.Unlock()
				return
			}
			d.volMu.Unlock()

			for target, volume := range pending {
				d.sendVolume(target, volume)
			}
		}
	}()
}

// sendVolume issues the concrete backend command for one volume target.
func (d *Dispatcher) sendVolume(target, volume int) {
	if target == masterVolumeTarget {
		d.send("set_master_volume", func(ctx context.Context) error {
			return d.backend.SetMasterVolume(ctx, volume)
		})
		return
	}
	d.send("set_volume", func(ctx context.Context) error {
		return d.backend.SetVolume(ctx, target, volume)
	})
}

// send runs one backend command on its own goroutine. Failures are logged
// and dropped; the caller has already moved on.
func (d *Dispatcher) send(command string, call func(context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := call(ctx); err != nil {
			log.Error("audio backend command failed", "command", command, "error", err)
		}
	}()
}

// LoadCatalog tells the backend which catalog file is in play. Startup-only;
// no mixer action maps to it.
func (d *Dispatcher) LoadCatalog(path string) {
	if d.backend == nil {
		return
	}
	d.send("load_sound_catalog", func(ctx context.Context) error {
		return d.backend.LoadCatalog(ctx, path)
	})
}

// Wait blocks until all in-flight backend calls have finished. Used on
// shutdown so commands are not cut off mid-write.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
