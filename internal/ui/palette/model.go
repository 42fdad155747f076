package palette

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

const maxWidth = 64

// ItemsLoadedMsg carries the fixed result list.
type ItemsLoadedMsg struct {
	Items []model.PaletteItem
}

// Model is the command palette overlay. The result list is fixed; typing
// does not filter it.
type Model struct {
	store  store.Store
	zones  *zone.Manager
	input  textinput.Model
	items  []model.PaletteItem
	cursor int
	width  int
	height int
}

// New creates a new command palette model.
func New(s store.Store, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search campaigns, tasks, team members..."
	ti.Prompt = "/ "

	m := Model{
		store: s,
		input: ti,
	}
	m.SetSize(width, height)
	return m
}

// Init returns a command that loads the result list.
func (m Model) Init() tea.Cmd {
	return m.LoadItems()
}

// Open resets the palette for a fresh search and focuses the input.
func (m *Model) Open() tea.Cmd {
	m.input.Reset()
	m.cursor = 0
	return m.input.Focus()
}

// SetZones sets the tracker result rows and the close button are marked in.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

func itemZone(id int) string {
	return fmt.Sprintf("palette-item-%d", id)
}

// Clicked navigates to the result msg landed on.
func (m Model) Clicked(msg tea.MouseMsg) tea.Cmd {
	for _, item := range m.items {
		if ui.ZoneHit(m.zones, itemZone(item.ID), msg) {
			view := ViewFor(item.Kind)
			return func() tea.Msg { return ui.NavigateMsg{View: view} }
		}
	}
	return nil
}

// ViewFor returns the view that shows items of the given kind.
func ViewFor(kind string) state.ViewID {
	switch kind {
	case model.PaletteCampaign:
		return state.ViewCampaigns
	case model.PaletteTask:
		return state.ViewTasks
	case model.PaletteTeam:
		return state.ViewTeam
	case model.PaletteFile:
		return state.ViewContent
	default:
		return state.ViewDashboard
	}
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsLoadedMsg:
		m.items = msg.Items
		m.cursor = min(m.cursor, max(len(m.items)-1, 0))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.items) {
				view := ViewFor(m.items[m.cursor].Kind)
				return m, func() tea.Msg { return ui.NavigateMsg{View: view} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Query returns the typed search text.
func (m Model) Query() string {
	return m.input.Value()
}

// View renders the command palette.
func (m Model) View() string {
	inner := m.width - 6

	lines := []string{
		ui.TitleBar(m.zones, theme.TitleStyle.Render("Search"), inner),
		m.input.View(),
		"",
		theme.MutedStyle.Render("Recent"),
	}
	for i, item := range m.items {
		kind := theme.MutedStyle.Render(fmt.Sprintf("%-9s", item.Kind))
		row := kind + " " + ui.Truncate(item.Name, inner-12)
		if i == m.cursor {
			row = theme.SelectedItemStyle.Render(row)
		} else {
			row = theme.ListItemStyle.Render(row)
		}
		lines = append(lines, ui.MarkZone(m.zones, itemZone(item.ID), row))
	}
	lines = append(lines, "", theme.HelpStyle.Render("↑/↓ move · enter open · esc close"))

	return theme.DetailPanelStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LoadItems returns a tea.Cmd that queries the palette entries.
func (m Model) LoadItems() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		items, err := s.GetPaletteItems(context.Background())
		if err != nil {
			return ui.ErrorMsg{Op: "loading search items", Err: err}
		}
		return ItemsLoadedMsg{Items: items}
	}
}

// SetSize sizes the palette to fit a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = min(max(width-4, 30), maxWidth)
	m.height = height
	m.input.Width = m.width - 10
}
