package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/muesli/gitcha"
)

// audioExtensions are the file types ScanDir recognizes as playable sounds.
var audioExtensions = []string{"*.ogg", "*.wav", "*.mp3", "*.flac"}

// ScanDir builds a catalog from the audio files found under dir. Each file
// becomes a sound named after its base name; the category is the file's
// immediate parent directory (or "ambient" for files at the top level). Ids
// are assigned in discovery order starting at 1.
func ScanDir(dir string) (*Catalog, error) {
	ch, err := gitcha.FindAllFilesExcept(dir, audioExtensions, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to scan %s: %w", dir, err)
	}

	categories := make(map[string][]Sound)
	id := 0
	for res := range ch {
		id++
		rel, err := filepath.Rel(dir, res.Path)
		if err != nil {
			rel = res.Path
		}

		category := filepath.Base(filepath.Dir(rel))
		if category == "." || category == string(filepath.Separator) {
			category = "ambient"
		}

		categories[category] = append(categories[category], Sound{
			ID:       id,
			Name:     nameFromFilename(filepath.Base(rel)),
			Filename: rel,
			Category: category,
		})
	}

	if id == 0 {
		return nil, fmt.Errorf("%w: no audio files under %s", ErrEmptyCatalog, dir)
	}
	return build(categories)
}

// nameFromFilename turns "rain-on-window.ogg" into "Rain On Window".
func nameFromFilename(base string) string {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(name)
}
