package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/theme"
)

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Avatars renders up to limit initials chips followed by "+N" for the rest.
func Avatars(names []string, limit int) string {
	style := lipgloss.NewStyle().Foreground(theme.ColorBlue).Bold(true)
	var parts []string
	for i, name := range names {
		if i == limit {
			parts = append(parts, theme.MutedStyle.Render(fmt.Sprintf("+%d", len(names)-limit)))
			break
		}
		parts = append(parts, style.Render(model.Initials(name)))
	}
	return strings.Join(parts, " ")
}

// Tags renders tag chips separated by spaces.
func Tags(tags []string) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = theme.TagStyle.Render("#" + t)
	}
	return strings.Join(parts, " ")
}

// ProgressBar renders a static bar filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(theme.ColorBlue.Dark),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 4)),
	)
	if !theme.Dark() {
		bar.FullColor = theme.ColorBlue.Light
	}
	return bar.ViewAs(percent)
}

// Empty renders centered placeholder text.
func Empty(width, height int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render(text)
}

// Section renders a bold section title.
func Section(title string) string {
	return theme.TitleStyle.MarginTop(1).Render(title)
}
