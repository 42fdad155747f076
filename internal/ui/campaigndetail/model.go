package campaigndetail

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

const (
	maxWidth  = 90
	maxHeight = 32
)

// TasksLoadedMsg carries the tasks whose campaign matches the open one.
type TasksLoadedMsg struct {
	Campaign string
	Tasks    []model.Task
}

// Model is the campaign detail overlay.
type Model struct {
	store    store.Store
	keys     *keys.KeyMap
	zones    *zone.Manager
	campaign *model.Campaign
	tasks    []model.Task
	cursor   int
	viewport viewport.Model
	dark     bool
	width    int
	height   int
}

// New creates a new campaign detail model.
func New(s store.Store, k *keys.KeyMap, width, height int) Model {
	m := Model{
		store:    s,
		keys:     k,
		viewport: viewport.New(0, 0),
	}
	m.SetSize(width, height)
	return m
}

// Open shows c and starts loading its related tasks.
func (m *Model) Open(c model.Campaign, dark bool) tea.Cmd {
	m.campaign = &c
	m.tasks = nil
	m.cursor = 0
	m.dark = dark
	m.refresh()
	m.viewport.GotoTop()
	return m.LoadTasks()
}

// SetZones sets the tracker the close button is marked in.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

// SetDark re-renders the brief for the given theme.
func (m *Model) SetDark(dark bool) {
	m.dark = dark
	m.refresh()
}

// Update handles messages for the campaign detail overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		if m.campaign == nil || msg.Campaign != m.campaign.Name {
			return m, nil
		}
		m.tasks = msg.Tasks
		m.cursor = 0
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if t, ok := m.SelectedTask(); ok {
				return m, func() tea.Msg { return ui.OpenTaskMsg{Task: t} }
			}
			return m, nil
		}
	}

	// Delegate to viewport for paging and the mouse wheel.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SelectedTask returns the highlighted related task.
func (m Model) SelectedTask() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// View renders the overlay panel.
func (m Model) View() string {
	if m.campaign == nil {
		return ""
	}
	title := ui.TitleBar(m.zones, lipgloss.JoinHorizontal(lipgloss.Top,
		theme.TitleStyle.Render(ui.Truncate(m.campaign.Name, m.viewport.Width-16)),
		" ",
		ui.StatusBadge(m.campaign.Status),
	), m.viewport.Width)
	hint := theme.HelpStyle.Render("j/k task · enter open task · pgup/pgdn scroll · esc close")
	return theme.DetailPanelStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), hint))
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

// renderContent builds the detail body for the viewport.
func (m Model) renderContent() string {
	if m.campaign == nil {
		return ""
	}
	c := m.campaign
	width := m.viewport.Width
	meta := theme.MutedStyle

	sections := []string{
		meta.Render(fmt.Sprintf("%s → %s", c.StartDate, c.EndDate)),
		ui.ProgressBar(c.Percent(), max(width-8, 10)) + fmt.Sprintf(" %3d%%", c.Progress),
		meta.Render(fmt.Sprintf("%d of %d tasks complete", c.CompletedTasks, c.TaskCount)),
		ui.Section("Brief"),
	}

	if strings.TrimSpace(c.Brief) == "" {
		sections = append(sections, meta.Italic(true).Render("No brief"))
	} else {
		sections = append(sections, ui.RenderMarkdown(c.Brief, width, m.dark))
	}

	sections = append(sections, ui.Section(fmt.Sprintf("Related Tasks (%d)", len(m.tasks))))
	if len(m.tasks) == 0 {
		sections = append(sections, meta.Render("No tasks linked to this campaign."))
	}
	for i, t := range m.tasks {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			ui.PadRight(t.Title, max(width-30, 12)),
			" ",
			theme.StatusStyle(t.Status).Render(t.Status),
			" ",
			meta.Render(t.Assignee),
		)
		if i == m.cursor {
			sections = append(sections, theme.SelectedItemStyle.Render(row))
		} else {
			sections = append(sections, theme.ListItemStyle.Render(row))
		}
	}

	sections = append(sections,
		ui.Section("Team"),
		ui.Avatars(c.Team, len(c.Team))+"  "+meta.Render(strings.Join(c.Team, ", ")),
		ui.Section("Channels"),
		strings.Join(c.Channels, " · "),
		ui.Section("Tags"),
		ui.Tags(c.Tags),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// LoadTasks returns a tea.Cmd that queries tasks by campaign name.
func (m Model) LoadTasks() tea.Cmd {
	if m.campaign == nil {
		return nil
	}
	s := m.store
	name := m.campaign.Name
	return func() tea.Msg {
		tasks, err := s.GetTasks(context.Background(), store.TaskFilter{Campaign: store.StrPtr(name)})
		if err != nil {
			return ui.ErrorMsg{Op: "loading campaign tasks", Err: err}
		}
		return TasksLoadedMsg{Campaign: name, Tasks: tasks}
	}
}

// SetSize fits the overlay inside a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = min(max(width-4, 30), maxWidth)
	m.height = min(max(height-2, 12), maxHeight)
	// Panel frame is 6 columns and 4 rows; title and hint take 2 rows.
	m.viewport.Width = m.width - 6
	m.viewport.Height = m.height - 6
	m.refresh()
}
