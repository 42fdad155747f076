package dashboard

import (
	"context"
	"fmt"
	"strings"

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

// quickActions are the shortcut buttons under the campaign list.
var quickActions = []string{"New Campaign", "Add Task", "Upload File", "Invite Team"}

// DataLoadedMsg carries the dashboard's metrics and recent campaigns.
type DataLoadedMsg struct {
	Metrics   []model.Metric
	Campaigns []model.Campaign
}

// Model is the dashboard view.
type Model struct {
	store     store.Store
	keys      *keys.KeyMap
	user      model.User
	metrics   []model.Metric
	campaigns []model.Campaign
	cursor    int
	zones     *zone.Manager
	width     int
	height    int
}

// New creates a new dashboard model.
func New(s store.Store, k *keys.KeyMap, user model.User, width, height int) Model {
	return Model{
		store:  s,
		keys:   k,
		user:   user,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the dashboard data.
func (m Model) Init() tea.Cmd {
	return m.LoadData()
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DataLoadedMsg:
		m.metrics = msg.Metrics
		m.campaigns = msg.Campaigns
		m.cursor = min(m.cursor, max(len(m.campaigns)-1, 0))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.campaigns)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if c, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ui.OpenCampaignMsg{Campaign: c} }
			}
		}
	}
	return m, nil
}

// Selected returns the highlighted campaign.
func (m Model) Selected() (model.Campaign, bool) {
	if m.cursor < 0 || m.cursor >= len(m.campaigns) {
		return model.Campaign{}, false
	}
	return m.campaigns[m.cursor], true
}

// View renders the dashboard.
func (m Model) View() string {
	firstName := m.user.Name
	if parts := strings.Fields(m.user.Name); len(parts) > 0 {
		firstName = parts[0]
	}

	sections := []string{
		theme.TitleStyle.Render(fmt.Sprintf("Welcome back, %s", firstName)),
		theme.MutedStyle.Render("Here's what's happening with your campaigns today."),
		"",
		ui.StatRow(m.metrics, m.width, 24),
		ui.Section("Recent Campaigns"),
	}

	if len(m.campaigns) == 0 {
		sections = append(sections, theme.MutedStyle.Render("No campaigns yet."))
	}
	for i, c := range m.campaigns {
		sections = append(sections,
			ui.MarkZone(m.zones, campaignZone(c.ID), m.renderCampaign(c, i == m.cursor)))
	}

	sections = append(sections, ui.Section("Quick Actions"))
	buttons := make([]string, len(quickActions))
	for i, a := range quickActions {
		buttons[i] = theme.CardStyle.Render(a)
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func campaignZone(id int) string {
	return fmt.Sprintf("dashboard-campaign-%d", id)
}

// SetZones enables click targets on the campaign rows.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

// Clicked opens the campaign whose row msg landed on.
func (m Model) Clicked(msg tea.MouseMsg) tea.Cmd {
	for _, c := range m.campaigns {
		if ui.ZoneHit(m.zones, campaignZone(c.ID), msg) {
			return func() tea.Msg { return ui.OpenCampaignMsg{Campaign: c} }
		}
	}
	return nil
}

func (m Model) renderCampaign(c model.Campaign, selected bool) string {
	nameWidth := max(m.width/3, 12)
	barWidth := max(m.width/4, 10)

	name := ui.PadRight(c.Name, nameWidth)
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		name,
		" ",
		ui.ProgressBar(c.Percent(), barWidth),
		fmt.Sprintf(" %3d%%  ", c.Progress),
		ui.StatusBadge(c.Status),
		theme.MutedStyle.Render(fmt.Sprintf(" %d/%d tasks", c.CompletedTasks, c.TaskCount)),
	)
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// LoadData returns a tea.Cmd that queries the dashboard metrics and
// every campaign.
func (m Model) LoadData() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		metrics, err := s.GetMetrics(ctx, model.MetricGroupDashboard)
		if err != nil {
			return ui.ErrorMsg{Op: "loading dashboard metrics", Err: err}
		}
		campaigns, err := s.GetCampaigns(ctx, store.CampaignFilter{})
		if err != nil {
			return ui.ErrorMsg{Op: "loading recent campaigns", Err: err}
		}
		return DataLoadedMsg{Metrics: metrics, Campaigns: campaigns}
	}
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
