package main

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

var colorProfile = termenv.ColorProfile()

// keyword colorizes a word for help and usage text.
func keyword(s string) string {
	return termenv.String(s).Foreground(colorProfile.Color("#04B575")).String()
}

// paragraph wraps and indents a block of help text.
func paragraph(s string) string {
	return strings.TrimRight(indent.String(wordwrap.String(s, 78), 2), "\n")
}
