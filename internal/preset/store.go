// Package preset persists named snapshots of the full sound-state list. A
// preset is the only way the mixer's list is ever replaced wholesale, so
// loading validates the snapshot against the catalog before it is dispatched.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/klauspost/compress/zstd"
	gap "github.com/muesli/go-app-paths"

	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
)

// Preset file extension: zstd-compressed JSON.
const fileExt = ".preset.zst"

// Common preset errors.
var (
	ErrNotFound     = errors.New("preset not found")
	ErrInvalidName  = errors.New("preset name must contain a letter or digit")
	ErrUnknownSound = errors.New("preset references a sound missing from the catalog")
)

// Snapshot is one stored preset.
type Snapshot struct {
	Version int           `json:"version"`
	Name    string        `json:"name"`
	SavedAt time.Time     `json:"savedAt"`
	Sounds  []mixer.Sound `json:"sounds"`
}

// Entry is a directory listing item.
type Entry struct {
	Name    string
	SavedAt time.Time
}

// Store reads and writes presets under a single directory.
type Store struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// DefaultDir returns the per-user preset directory.
func DefaultDir() (string, error) {
	scope := gap.NewScope(gap.User, "hush")
	dir, err := scope.DataPath("presets")
	if err != nil {
		return "", fmt.Errorf("unable to resolve preset directory: %w", err)
	}
	return dir, nil
}

// NewStore opens (creating if needed) a preset directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create preset directory: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create zstd decoder: %w", err)
	}

	return &Store{dir: dir, encoder: encoder, decoder: decoder}, nil
}

// Dir returns the directory this store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a snapshot of the sound list under the given name,
// overwriting any existing preset with the same name.
func (s *Store) Save(name string, sounds []mixer.Sound) error {
	slug, err := slugify(name)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Version: 1,
		Name:    name,
		SavedAt: time.Now(),
		Sounds:  sounds,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("unable to encode preset: %w", err)
	}

	path := filepath.Join(s.dir, slug+fileExt)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, s.encoder.EncodeAll(raw, nil), 0o644); err != nil {
		return fmt.Errorf("unable to write preset: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("unable to finalize preset: %w", err)
	}
	return nil
}

// Load reads a preset by name.
func (s *Store) Load(name string) (*Snapshot, error) {
	slug, err := slugify(name)
	if err != nil {
		return nil, err
	}

	compressed, err := os.ReadFile(filepath.Join(s.dir, slug+fileExt))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read preset: %w", err)
	}

	raw, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to decompress preset %s: %w", name, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unable to decode preset %s: %w", name, err)
	}
	return &snap, nil
}

// Delete removes a preset by name.
func (s *Store) Delete(name string) error {
	slug, err := slugify(name)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, slug+fileExt))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// List returns the stored presets, most recently saved first.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("unable to list presets: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), fileExt) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    strings.TrimSuffix(f.Name(), fileExt),
			SavedAt: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})
	return entries, nil
}

// Watch returns a filesystem watcher on the preset directory so externally
// added or removed presets show up without a restart. The caller owns the
// watcher and must close it.
func (s *Store) Watch() (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create preset watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		w.Close() //nolint:errcheck
		return nil, fmt.Errorf("unable to watch preset directory: %w", err)
	}
	return w, nil
}

// Validate checks a snapshot against the catalog: every sound it references
// must exist. The mixer only accepts full valid lists.
func Validate(snap *Snapshot, cat *catalog.Catalog) error {
	for _, s := range snap.Sounds {
		if _, ok := cat.ByID(s.ID); !ok {
			return fmt.Errorf("%w: id %d", ErrUnknownSound, s.ID)
		}
	}
	return nil
}

// slugify converts a preset name into a safe file stem.
func slugify(name string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "", ErrInvalidName
	}
	return slug, nil
}
