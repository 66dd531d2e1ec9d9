package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// setupLog discards log output unless HUSH_LOGFILE is set, in which case
// everything goes there. The returned closer flushes the file on exit.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)

	if os.Getenv("HUSH_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	if path := os.Getenv("HUSH_LOGFILE"); path != "" {
		f, err := tea.LogToFileWith(path, "hush", log.Default())
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		log.SetOutput(f)
		return f.Close, nil
	}

	return func() error { return nil }, nil
}
