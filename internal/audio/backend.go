// Package audio is the boundary to the native audio backend. The mixer never
// talks to a device directly: every state transition is mirrored here as an
// asynchronous, fire-and-forget command, and a failed command is logged and
// dropped. Local state stays the source of truth and the backend catches up.
package audio

import (
	"context"
	"errors"
)

// Common backend errors.
var (
	ErrBackendClosed = errors.New("audio backend is closed")
	ErrDeviceInit    = errors.New("audio device initialization failed")
)

// Backend is the command surface of the native audio engine. Every method is
// best-effort: callers never block on the result, never retry, and never roll
// back local state on failure.
type Backend interface {
	PlaySound(ctx context.Context, id int) error
	StopSound(ctx context.Context, id int) error
	SetVolume(ctx context.Context, id, volume int) error
	SetMasterVolume(ctx context.Context, volume int) error
	MuteSound(ctx context.Context, id int, muted bool) error
	MuteAllExcept(ctx context.Context, id int) error
	SetAllPlaying(ctx context.Context) error
	SetAllPaused(ctx context.Context) error
	ApplyMixSettings(ctx context.Context, levels map[int]float64) error
	LoadPreset(ctx context.Context, name string) error
	SavePreset(ctx context.Context, name string) error
	ResetAll(ctx context.Context) error
	SelectAllSounds(ctx context.Context) error
	LoadCatalog(ctx context.Context, path string) error
	Close() error
}
