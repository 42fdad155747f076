package feedback

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

// summaryStatuses are the counters shown above the request list.
var summaryStatuses = []struct {
	status string
	color  string
}{
	{model.FeedbackPending, "yellow"},
	{model.FeedbackApproved, "green"},
	{model.FeedbackNeedsChanges, "orange"},
	{model.FeedbackRejected, "red"},
}

// FeedbackLoadedMsg carries the approval requests and the activity feed.
type FeedbackLoadedMsg struct {
	Requests []model.FeedbackRequest
	Activity []model.Activity
}

// DecisionMsg reports an approve or reject that was applied.
type DecisionMsg struct {
	ID     int
	Status string
}

// Model is the feedback and approvals view.
type Model struct {
	store    store.Store
	keys     *keys.KeyMap
	requests []model.FeedbackRequest
	activity []model.Activity
	cursor   int
	width    int
	height   int
}

// New creates a new feedback model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	return Model{store: s, keys: k, width: width, height: height}
}

// Init returns a command that loads the requests.
func (m Model) Init() tea.Cmd {
	return m.LoadFeedback()
}

// Update handles messages for the feedback view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FeedbackLoadedMsg:
		m.requests = msg.Requests
		m.activity = msg.Activity
		m.cursor = min(m.cursor, max(len(m.requests)-1, 0))
		return m, nil

	case DecisionMsg:
		return m, m.LoadFeedback()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.requests)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Approve):
			return m, m.decide(model.FeedbackApproved)
		case key.Matches(msg, m.keys.Reject):
			return m, m.decide(model.FeedbackRejected)
		}
	}
	return m, nil
}

// Selected returns the highlighted request.
func (m Model) Selected() (model.FeedbackRequest, bool) {
	if m.cursor < 0 || m.cursor >= len(m.requests) {
		return model.FeedbackRequest{}, false
	}
	return m.requests[m.cursor], true
}

// decide records a decision on the highlighted request. Only pending
// requests can be decided.
func (m Model) decide(status string) tea.Cmd {
	req, ok := m.Selected()
	if !ok || !req.IsPending() {
		return nil
	}
	s := m.store
	return func() tea.Msg {
		if err := s.SetFeedbackStatus(context.Background(), req.ID, status); err != nil {
			return ui.ErrorMsg{Op: "updating request status", Err: err}
		}
		return DecisionMsg{ID: req.ID, Status: status}
	}
}

// Counts returns the number of requests per status.
func (m Model) Counts() map[string]int {
	counts := make(map[string]int, len(summaryStatuses))
	for _, r := range m.requests {
		counts[r.Status]++
	}
	return counts
}

// View renders the status summary, the requests and the activity feed.
func (m Model) View() string {
	counts := m.Counts()
	cards := make([]model.Metric, len(summaryStatuses))
	for i, s := range summaryStatuses {
		cards[i] = model.Metric{
			Title: s.status,
			Value: fmt.Sprintf("%d", counts[s.status]),
			Color: s.color,
		}
	}

	listWidth := m.width * 2 / 3
	var rows []string
	for i, r := range m.requests {
		rows = append(rows, m.renderRequest(r, listWidth, i == m.cursor))
	}
	if len(rows) == 0 {
		rows = append(rows, theme.MutedStyle.Render("No approval requests."))
	}

	var feed []string
	for _, a := range m.activity {
		feed = append(feed,
			a.Action,
			theme.MutedStyle.Render(fmt.Sprintf("%s · %s", a.User, a.TimeLabel)),
		)
	}

	requests := lipgloss.NewStyle().Width(listWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{ui.Section("Approval Requests")}, rows...)...),
	)
	activity := lipgloss.NewStyle().Width(m.width - listWidth).PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{ui.Section("Recent Activity")}, feed...)...),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Feedback & Approvals"),
		theme.MutedStyle.Render("a approve · r reject (pending requests only)"),
		"",
		ui.StatRow(cards, m.width, 18),
		lipgloss.JoinHorizontal(lipgloss.Top, requests, activity),
	)
}

func (m Model) renderRequest(r model.FeedbackRequest, width int, selected bool) string {
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Bold(true).Render(ui.Truncate(r.Title, max(width-20, 10))),
			" ",
			ui.StatusBadge(r.Status),
		),
		theme.MutedStyle.Render(fmt.Sprintf("%s · by %s · %s", r.Campaign, r.Requester, r.Created)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			theme.PriorityStyle(r.Priority).Render(r.Priority),
			theme.MutedStyle.Render(fmt.Sprintf(" · %d comments", r.Comments)),
		),
	}
	style := theme.CardStyle
	if selected {
		style = theme.SelectedCardStyle
	}
	return style.Width(max(width-2, 10)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LoadFeedback returns a tea.Cmd that queries requests and activity.
func (m Model) LoadFeedback() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		requests, err := s.GetFeedback(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading approval requests", Err: err}
		}
		activity, err := s.GetFeedbackActivity(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading approval activity", Err: err}
		}
		return FeedbackLoadedMsg{Requests: requests, Activity: activity}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
