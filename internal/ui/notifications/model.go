package notifications

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

const panelWidth = 46

// Model is the notification dropdown panel. It reads and mutates the
// shared notification store directly.
type Model struct {
	store  *state.Notifications
	keys   *keys.KeyMap
	zones  *zone.Manager
	cursor int
	width  int
	height int
}

// New creates a new notification panel model.
func New(n *state.Notifications, k *keys.KeyMap, width, height int) Model {
	m := Model{store: n, keys: k}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key input while the panel is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Select):
		all := m.store.All()
		if m.cursor < len(all) {
			m.store.MarkRead(all[m.cursor].ID)
		}
	case key.Matches(km, m.keys.MarkAllRead):
		m.store.MarkAllRead()
	}
	return m, nil
}

// SetZones sets the tracker notification rows are marked in.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

func rowZone(id int) string {
	return fmt.Sprintf("notification-%d", id)
}

// Clicked marks the notification msg landed on as read and highlights it.
// It reports whether a row was hit.
func (m *Model) Clicked(msg tea.MouseMsg) bool {
	for i, n := range m.store.All() {
		if ui.ZoneHit(m.zones, rowZone(n.ID), msg) {
			m.cursor = i
			m.store.MarkRead(n.ID)
			return true
		}
	}
	return false
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Reset moves the cursor back to the first notification.
func (m *Model) Reset() {
	m.cursor = 0
}

// View renders the panel.
func (m Model) View() string {
	inner := m.width - 6
	unread := m.store.UnreadCount()

	title := theme.TitleStyle.Render("Notifications")
	if unread > 0 {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ",
			theme.BadgeStyle.Render(fmt.Sprintf("%d new", unread)))
	}

	rows := []string{title}
	all := m.store.All()
	if len(all) == 0 {
		rows = append(rows, theme.MutedStyle.Render("You're all caught up."))
	}
	for i, n := range all {
		marker := "  "
		msgStyle := theme.MutedStyle
		if !n.Read {
			marker = lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("●") + " "
			msgStyle = lipgloss.NewStyle().Bold(true)
		}
		row := lipgloss.JoinVertical(lipgloss.Left,
			marker+msgStyle.Render(ui.Truncate(n.Message, inner-2)),
			"  "+theme.MutedStyle.Render(n.TimeLabel),
		)
		if i == m.cursor {
			row = theme.SelectedItemStyle.Render(row)
		} else {
			row = theme.ListItemStyle.Render(row)
		}
		rows = append(rows, ui.MarkZone(m.zones, rowZone(n.ID), row))
	}
	rows = append(rows, "", theme.HelpStyle.Render("enter mark read · A mark all · n close"))

	return theme.DetailPanelStyle.
		Width(m.width - 2).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// SetSize updates the panel dimensions for a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = min(panelWidth, max(width, 24))
	m.height = height
}
