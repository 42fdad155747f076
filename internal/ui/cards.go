package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/theme"
)

// StatCard renders a headline metric: title, value, and the change label
// colored by sign.
func StatCard(m model.Metric, width int) string {
	accent := theme.AccentColor(m.Color)
	value := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.Value)

	lines := []string{
		theme.MutedStyle.Render(Truncate(m.Title, width-4)),
		value,
	}
	if m.Change != "" {
		lines = append(lines, theme.ChangeStyle(m.Positive()).Render(m.Change)+
			theme.MutedStyle.Render(" vs last period"))
	}

	return theme.CardStyle.
		Width(max(width-2, 8)).
		BorderForeground(accent).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// StatRow lays out cards side by side, sharing width evenly. Cards wrap
// to a new row when each would be narrower than minWidth.
func StatRow(metrics []model.Metric, width, minWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	perRow := len(metrics)
	for perRow > 1 && width/perRow < minWidth {
		perRow--
	}
	cardWidth := width / perRow

	var rows []string
	for start := 0; start < len(metrics); start += perRow {
		end := min(start+perRow, len(metrics))
		cards := make([]string, 0, end-start)
		for _, m := range metrics[start:end] {
			cards = append(cards, StatCard(m, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// StatusBadge renders a status label in its color.
func StatusBadge(status string) string {
	return theme.StatusStyle(status).Render(status)
}

// Grid lays out equally sized cells in rows of cols.
func Grid(cells []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
