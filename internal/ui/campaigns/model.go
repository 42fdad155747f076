package campaigns

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

const cardWidth = 38

// CampaignsLoadedMsg is sent when campaigns have been loaded from the store.
type CampaignsLoadedMsg struct {
	Campaigns []model.Campaign
}

// statusFilters is the cycle order for f; the empty string shows all.
var statusFilters = append([]string{""}, model.CampaignStatuses...)

// Model is the campaign grid view.
type Model struct {
	store       store.Store
	keys        *keys.KeyMap
	campaigns   []model.Campaign
	filterIndex int
	cursor      int
	zones       *zone.Manager
	width       int
	height      int
}

// New creates a new campaigns model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		store:  s,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the campaigns.
func (m Model) Init() tea.Cmd {
	return m.LoadCampaigns()
}

// Update handles messages for the campaigns view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CampaignsLoadedMsg:
		m.campaigns = msg.Campaigns
		m.cursor = min(m.cursor, max(len(m.campaigns)-1, 0))
		return m, nil

	case tea.KeyMsg:
		cols := m.columns()
		switch {
		case key.Matches(msg, m.keys.Left):
			m.move(-1)
		case key.Matches(msg, m.keys.Right):
			m.move(1)
		case key.Matches(msg, m.keys.Up):
			m.move(-cols)
		case key.Matches(msg, m.keys.Down):
			m.move(cols)
		case key.Matches(msg, m.keys.CycleStatus):
			m.filterIndex = (m.filterIndex + 1) % len(statusFilters)
			m.cursor = 0
			return m, m.LoadCampaigns()
		case key.Matches(msg, m.keys.Select):
			if c, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ui.OpenCampaignMsg{Campaign: c} }
			}
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.campaigns) {
		m.cursor = next
	}
}

// Selected returns the highlighted campaign.
func (m Model) Selected() (model.Campaign, bool) {
	if m.cursor < 0 || m.cursor >= len(m.campaigns) {
		return model.Campaign{}, false
	}
	return m.campaigns[m.cursor], true
}

// FilterSummary describes the active status filter.
func (m Model) FilterSummary() string {
	if f := statusFilters[m.filterIndex]; f != "" {
		return "status: " + f
	}
	return "status: all"
}

func (m Model) columns() int {
	return max(m.width/cardWidth, 1)
}

// View renders the campaign cards.
func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.TitleStyle.Render("Campaigns"),
		theme.MutedStyle.Render("  "+m.FilterSummary()+" (f to change)"),
	)

	if len(m.campaigns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			ui.Empty(m.width, max(m.height-2, 1), "No campaigns match this filter."))
	}

	cards := make([]string, len(m.campaigns))
	for i, c := range m.campaigns {
		cards[i] = ui.MarkZone(m.zones, cardZone(c.ID), renderCard(c, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", ui.Grid(cards, m.columns()))
}

func cardZone(id int) string {
	return fmt.Sprintf("campaign-card-%d", id)
}

// SetZones enables click targets on the cards.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

// Clicked opens the campaign whose card msg landed on.
func (m Model) Clicked(msg tea.MouseMsg) tea.Cmd {
	for _, c := range m.campaigns {
		if ui.ZoneHit(m.zones, cardZone(c.ID), msg) {
			return func() tea.Msg { return ui.OpenCampaignMsg{Campaign: c} }
		}
	}
	return nil
}

func renderCard(c model.Campaign, selected bool) string {
	inner := cardWidth - 4
	lines := []string{
		theme.TitleStyle.Render(ui.Truncate(c.Name, inner)),
		ui.StatusBadge(c.Status),
		theme.MutedStyle.Render(fmt.Sprintf("%s → %s", c.StartDate, c.EndDate)),
		"",
		ui.ProgressBar(c.Percent(), inner-5) + fmt.Sprintf(" %3d%%", c.Progress),
		theme.MutedStyle.Render(fmt.Sprintf("%d/%d tasks", c.CompletedTasks, c.TaskCount)),
		ui.Avatars(c.Team, 3),
		lipgloss.NewStyle().MaxWidth(inner).Render(ui.Tags(c.Tags)),
	}

	style := theme.CardStyle
	if selected {
		style = theme.SelectedCardStyle
	}
	return style.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LoadCampaigns returns a tea.Cmd that queries the store with the current
// status filter.
func (m Model) LoadCampaigns() tea.Cmd {
	s := m.store
	var filter store.CampaignFilter
	if f := statusFilters[m.filterIndex]; f != "" {
		filter.Status = store.StrPtr(f)
	}
	return func() tea.Msg {
		campaigns, err := s.GetCampaigns(context.Background(), filter)
		if err != nil {
			return ui.ErrorMsg{Op: "loading campaigns", Err: err}
		}
		return CampaignsLoadedMsg{Campaigns: campaigns}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
