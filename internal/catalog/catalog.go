// Package catalog loads and indexes the static sound catalog: the read-only
// list of available sounds grouped by category. The catalog is loaded once at
// startup and never mutated; all runtime playback state lives in the mixer.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	_ "embed"
)

//go:embed sounds.json
var defaultCatalogJSON []byte

// Common errors for catalog loading.
var (
	ErrEmptyCatalog = errors.New("catalog contains no sounds")
	ErrDuplicateID  = errors.New("duplicate sound id in catalog")
	ErrMissingName  = errors.New("sound entry is missing a name")
)

// Sound is a single immutable catalog entry.
type Sound struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Category string `json:"category"`
}

// Catalog indexes sounds by category and id. It is safe for concurrent reads
// once constructed.
type Catalog struct {
	categories map[string][]Sound
	order      []string // category iteration order
	byID       map[int]Sound
	flat       []Sound // all sounds, category order then source order
}

// catalogFile mirrors the on-disk JSON shape.
type catalogFile struct {
	Categories map[string][]Sound `json:"categories"`
}

// Default returns the catalog bundled with the application.
func Default() *Catalog {
	c, err := Parse(defaultCatalogJSON)
	if err != nil {
		// The embedded catalog is validated by tests; failing to parse it is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads and parses a catalog file from disk.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a Catalog from raw JSON and validates it: ids must be unique
// across all categories and every entry needs a name.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("unable to parse catalog: %w", err)
	}
	return build(f.Categories)
}

func build(categories map[string][]Sound) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[string][]Sound, len(categories)),
		byID:       make(map[int]Sound),
	}

	// Map iteration order is random; keep categories in a stable order so the
	// flattened sound list (and therefore mixer state order) is deterministic.
	for name := range categories {
		c.order = append(c.order, name)
	}
	sort.Strings(c.order)

	for _, name := range c.order {
		for _, s := range categories[name] {
			if s.Name == "" {
				return nil, fmt.Errorf("%w: id %d in category %q", ErrMissingName, s.ID, name)
			}
			if _, exists := c.byID[s.ID]; exists {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
			}
			if s.Category == "" {
				s.Category = name
			}
			c.byID[s.ID] = s
			c.categories[name] = append(c.categories[name], s)
			c.flat = append(c.flat, s)
		}
	}

	if len(c.flat) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Categories returns the category keys in stable iteration order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SoundsByCategory returns the ordered sounds in a category. An unknown
// category yields an empty slice, not an error.
func (c *Catalog) SoundsByCategory(category string) []Sound {
	src := c.categories[category]
	out := make([]Sound, len(src))
	copy(out, src)
	return out
}

// ByID looks up a sound by id.
func (c *Catalog) ByID(id int) (Sound, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns every sound, grouped by category in stable order.
func (c *Catalog) All() []Sound {
	out := make([]Sound, len(c.flat))
	copy(out, c.flat)
	return out
}

// Len returns the number of sounds in the catalog.
func (c *Catalog) Len() int {
	return len(c.flat)
}
