package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Built-in glamour style names.
const (
	markdownLight = "light"
	markdownDark  = "dark"
)

// RenderMarkdown renders src for a terminal of the given width. When the
// renderer cannot be built or fails, the source text is returned as is.
func RenderMarkdown(src string, width int, dark bool) string {
	style := markdownLight
	if dark {
		style = markdownDark
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return src
	}

	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}
