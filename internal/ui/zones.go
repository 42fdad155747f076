package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/theme"
)

// CloseZoneID names the close button drawn in every overlay's title bar.
const CloseZoneID = "overlay-close"

// MarkZone wraps s in a clickable zone named id. With no manager s is
// returned unchanged.
func MarkZone(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}

// ZoneHit reports whether msg landed inside the zone named id as of the
// last scanned frame.
func ZoneHit(z *zone.Manager, id string, msg tea.MouseMsg) bool {
	if z == nil {
		return false
	}
	info := z.Get(id)
	return info != nil && info.InBounds(msg)
}

// TitleBar lays out title on the left and the overlay close button on the
// right of a width-wide row.
func TitleBar(z *zone.Manager, title string, width int) string {
	button := MarkZone(z, CloseZoneID, theme.MutedStyle.Render("✕"))
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(button), 1)
	return title + strings.Repeat(" ", gap) + button
}
