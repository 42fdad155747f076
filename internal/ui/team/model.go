package team

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

// TeamLoadedMsg carries the roster.
type TeamLoadedMsg struct {
	Members []model.TeamMember
}

// Model is the team roster view.
type Model struct {
	store   store.Store
	keys    *keys.KeyMap
	members []model.TeamMember
	cursor  int
	width   int
	height  int
}

// New creates a new team model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{store: s, keys: k, width: width, height: height}
}

// Init returns a command that loads the roster.
func (m Model) Init() tea.Cmd {
	return m.LoadTeam()
}

// Update handles messages for the team view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TeamLoadedMsg:
		m.members = msg.Members
		m.cursor = min(m.cursor, max(len(m.members)-1, 0))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.members)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// Online returns the number of members currently online.
func (m Model) Online() int {
	n := 0
	for _, member := range m.members {
		if member.Presence == model.PresenceOnline {
			n++
		}
	}
	return n
}

// View renders the roster.
func (m Model) View() string {
	lines := []string{
		theme.TitleStyle.Render("Team"),
		theme.MutedStyle.Render(fmt.Sprintf("%d members · %d online", len(m.members), m.Online())),
		"",
	}

	nameWidth := 18
	roleWidth := 22
	emailWidth := max(m.width-nameWidth-roleWidth-24, 16)
	for i, member := range m.members {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			theme.PresenceStyle(member.Presence).Render("● "),
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Render(ui.PadRight(model.Initials(member.Name), 3)),
			ui.PadRight(member.Name, nameWidth),
			theme.MutedStyle.Render(ui.PadRight(member.Role, roleWidth)),
			ui.PadRight(member.Email, emailWidth),
			fmt.Sprintf("%3d tasks", member.Tasks),
		)
		if i == m.cursor {
			lines = append(lines, theme.SelectedItemStyle.Render(row))
		} else {
			lines = append(lines, theme.ListItemStyle.Render(row))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// LoadTeam returns a tea.Cmd that queries the roster.
func (m Model) LoadTeam() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		members, err := s.GetTeam(context.Background())
		if err != nil {
			return ui.ErrorMsg{Op: "loading team", Err: err}
		}
		return TeamLoadedMsg{Members: members}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
