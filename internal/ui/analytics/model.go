package analytics

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

// Periods are the selectable reporting windows. Switching only changes
// the label; the figures are fixed.
var Periods = []string{"Last 7 days", "Last 30 days", "Last 90 days", "Last year"}

// chartTitles are the placeholder chart panels.
var chartTitles = []string{"Campaign Performance Over Time", "Channel Distribution"}

// AnalyticsLoadedMsg carries the key metrics and the performance table.
type AnalyticsLoadedMsg struct {
	Metrics     []model.Metric
	Performance []model.Performance
}

// Model is the analytics view.
type Model struct {
	store       store.Store
	keys        *keys.KeyMap
	metrics     []model.Metric
	performance []model.Performance
	period      int
	table       table.Model
	width       int
	height      int
}

// New creates a new analytics model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	t := table.New(
		table.WithColumns(performanceColumns(width)),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(theme.ColorBlue).Bold(true)
	t.SetStyles(styles)

	return Model{store: s, keys: k, table: t, width: width, height: height}
}

func performanceColumns(width int) []table.Column {
	name := max(width-12*4-12, 20)
	return []table.Column{
		{Title: "Campaign", Width: name},
		{Title: "Impressions", Width: 12},
		{Title: "Clicks", Width: 12},
		{Title: "Conversions", Width: 12},
		{Title: "ROI", Width: 12},
		{Title: "Status", Width: 10},
	}
}

// Init returns a command that loads the analytics data.
func (m Model) Init() tea.Cmd {
	return m.LoadAnalytics()
}

// Update handles messages for the analytics view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AnalyticsLoadedMsg:
		m.metrics = msg.Metrics
		m.performance = msg.Performance
		rows := make([]table.Row, len(m.performance))
		for i, p := range m.performance {
			rows[i] = table.Row{p.Campaign, p.Impressions, p.Clicks, p.Conversions, p.ROI, p.Status}
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.CyclePeriod) {
			m.period = (m.period + 1) % len(Periods)
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Period returns the selected reporting window label.
func (m Model) Period() string {
	return Periods[m.period]
}

// View renders the analytics view.
func (m Model) View() string {
	selector := make([]string, len(Periods))
	for i, p := range Periods {
		style := theme.MutedStyle.Padding(0, 1)
		if i == m.period {
			style = lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Padding(0, 1)
		}
		selector[i] = style.Render(p)
	}

	chartWidth := max(m.width/len(chartTitles), 20)
	charts := make([]string, len(chartTitles))
	for i, title := range chartTitles {
		charts[i] = theme.CardStyle.
			Width(chartWidth-2).
			Height(5).
			Align(lipgloss.Center, lipgloss.Center).
			Render(title + "\n" + theme.MutedStyle.Render("chart visualization"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			theme.TitleStyle.Render("Analytics"),
			"  ",
			lipgloss.JoinHorizontal(lipgloss.Top, selector...),
			theme.MutedStyle.Render(" (p)"),
		),
		"",
		ui.StatRow(m.metrics, m.width, 24),
		lipgloss.JoinHorizontal(lipgloss.Top, charts...),
		ui.Section("Campaign Performance"),
		m.table.View(),
	)
}

// LoadAnalytics returns a tea.Cmd that queries the key metrics and the
// campaign performance rows.
func (m Model) LoadAnalytics() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		metrics, err := s.GetMetrics(ctx, model.MetricGroupAnalytics)
		if err != nil {
			return ui.ErrorMsg{Op: "loading analytics metrics", Err: err}
		}
		performance, err := s.GetPerformance(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading campaign performance", Err: err}
		}
		return AnalyticsLoadedMsg{Metrics: metrics, Performance: performance}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(performanceColumns(width))
}
