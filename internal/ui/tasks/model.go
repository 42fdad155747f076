package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/theme"
	"github.com/nhle/marketing-hub/internal/ui"
)

// TasksLoadedMsg is sent when the board, the filtered list and the filter
// options have been loaded from the store.
type TasksLoadedMsg struct {
	// Columns holds one slice per model.TaskStatuses entry.
	Columns   [][]model.Task
	List      []model.Task
	Campaigns []string
	Assignees []string
}

// ToggleLayoutMsg asks the root model to switch between kanban and list.
type ToggleLayoutMsg struct{}

// Model is the tasks view: a kanban board or a filterable table.
type Model struct {
	store store.Store
	keys  *keys.KeyMap
	mode  state.TaskView

	columns [][]model.Task
	col     int
	row     int

	list          []model.Task
	table         table.Model
	campaigns     []string
	assignees     []string
	campaignIndex int
	assigneeIndex int

	zones  *zone.Manager
	width  int
	height int
}

// New creates a new tasks model.
func New(s store.Store, k *keys.KeyMap, mode state.TaskView, width, height int) Model {
	t := table.New(
		table.WithColumns(tableColumns(width)),
		table.WithFocused(true),
		table.WithHeight(max(height-4, 3)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.ColorBlue).
		Bold(true)
	t.SetStyles(styles)

	return Model{
		store:  s,
		keys:   k,
		mode:   mode,
		table:  t,
		width:  width,
		height: height,
	}
}

func tableColumns(width int) []table.Column {
	fixed := 12 + 8 + 10 + 11
	rest := max(width-fixed-12, 30)
	return []table.Column{
		{Title: "Task", Width: rest * 3 / 5},
		{Title: "Status", Width: 12},
		{Title: "Priority", Width: 8},
		{Title: "Assignee", Width: 10},
		{Title: "Campaign", Width: rest * 2 / 5},
		{Title: "Due", Width: 11},
	}
}

// Init returns a command that loads the tasks.
func (m Model) Init() tea.Cmd {
	return m.LoadTasks()
}

// Update handles messages for the tasks view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		m.columns = msg.Columns
		m.list = msg.List
		m.campaigns = msg.Campaigns
		m.assignees = msg.Assignees
		m.clampBoardCursor()
		m.table.SetRows(tableRows(m.list))
		if m.table.Cursor() >= len(m.list) {
			m.table.SetCursor(max(len(m.list)-1, 0))
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ToggleLayout) {
			return m, func() tea.Msg { return ToggleLayoutMsg{} }
		}
		if key.Matches(msg, m.keys.Select) {
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ui.OpenTaskMsg{Task: t} }
			}
			return m, nil
		}
		if m.mode == state.TaskViewList {
			return m.handleListKeys(msg)
		}
		return m.handleBoardKeys(msg), nil
	}
	return m, nil
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.columns)-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		m.row++
	}
	m.clampBoardCursor()
	return m
}

func (m Model) handleListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleCampaign):
		m.campaignIndex = (m.campaignIndex + 1) % (len(m.campaigns) + 1)
		m.table.SetCursor(0)
		return m, m.LoadTasks()
	case key.Matches(msg, m.keys.CycleAssignee):
		m.assigneeIndex = (m.assigneeIndex + 1) % (len(m.assignees) + 1)
		m.table.SetCursor(0)
		return m, m.LoadTasks()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) clampBoardCursor() {
	if len(m.columns) == 0 {
		m.col, m.row = 0, 0
		return
	}
	m.col = min(max(m.col, 0), len(m.columns)-1)
	m.row = min(m.row, max(len(m.columns[m.col])-1, 0))
}

// Selected returns the highlighted task in the current layout.
func (m Model) Selected() (model.Task, bool) {
	if m.mode == state.TaskViewList {
		i := m.table.Cursor()
		if i < 0 || i >= len(m.list) {
			return model.Task{}, false
		}
		return m.list[i], true
	}
	if m.col >= len(m.columns) || m.row >= len(m.columns[m.col]) {
		return model.Task{}, false
	}
	return m.columns[m.col][m.row], true
}

// SetMode switches between the kanban board and the list.
func (m *Model) SetMode(mode state.TaskView) {
	m.mode = mode
}

// Mode returns the current layout.
func (m Model) Mode() state.TaskView {
	return m.mode
}

func (m Model) campaignFilter() string {
	if m.campaignIndex == 0 || m.campaignIndex > len(m.campaigns) {
		return ""
	}
	return m.campaigns[m.campaignIndex-1]
}

func (m Model) assigneeFilter() string {
	if m.assigneeIndex == 0 || m.assigneeIndex > len(m.assignees) {
		return ""
	}
	return m.assignees[m.assigneeIndex-1]
}

// FilterSummary describes the list filters.
func (m Model) FilterSummary() string {
	campaign, assignee := m.campaignFilter(), m.assigneeFilter()
	if campaign == "" {
		campaign = "all"
	}
	if assignee == "" {
		assignee = "all"
	}
	return fmt.Sprintf("campaign: %s | assignee: %s", campaign, assignee)
}

// View renders the tasks view in its current layout.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Tasks")
	if m.mode == state.TaskViewList {
		header := lipgloss.JoinHorizontal(lipgloss.Top,
			title,
			theme.MutedStyle.Render("  list · "+m.FilterSummary()),
		)
		if len(m.list) == 0 {
			return lipgloss.JoinVertical(lipgloss.Left, header,
				ui.Empty(m.width, max(m.height-2, 1), "No matching tasks.\nTry adjusting your filters."))
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View())
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		title,
		theme.MutedStyle.Render("  kanban (v for list)"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderBoard())
}

func (m Model) renderBoard() string {
	if len(m.columns) == 0 {
		return ""
	}
	colWidth := max(m.width/len(m.columns), 16)
	cols := make([]string, len(m.columns))
	for i, tasks := range m.columns {
		status := model.TaskStatuses[i]
		lines := []string{
			theme.StatusStyle(status).Render(fmt.Sprintf("%s (%d)", status, len(tasks))),
		}
		for j, t := range tasks {
			card := renderCard(t, colWidth-1, i == m.col && j == m.row)
			lines = append(lines, ui.MarkZone(m.zones, cardZone(t.ID), card))
		}
		cols[i] = lipgloss.NewStyle().Width(colWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, lines...),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func cardZone(id int) string {
	return fmt.Sprintf("task-card-%d", id)
}

// SetZones enables click targets on the kanban cards.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

// Clicked opens the task whose kanban card msg landed on. The list layout
// is driven by the keyboard only.
func (m Model) Clicked(msg tea.MouseMsg) tea.Cmd {
	if m.mode != state.TaskViewKanban {
		return nil
	}
	for _, tasks := range m.columns {
		for _, t := range tasks {
			if ui.ZoneHit(m.zones, cardZone(t.ID), msg) {
				return func() tea.Msg { return ui.OpenTaskMsg{Task: t} }
			}
		}
	}
	return nil
}

func renderCard(t model.Task, width int, selected bool) string {
	inner := max(width-4, 8)
	meta := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.PriorityStyle(t.Priority).Render(t.Priority),
		"  ",
		ui.Avatars([]string{t.Assignee}, 1),
	)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Width(inner).Render(t.Title),
		meta,
		theme.MutedStyle.Render(fmt.Sprintf("due %s · %d comments", t.DueDate, t.CommentCount)),
	}

	style := theme.CardStyle
	if selected {
		style = theme.SelectedCardStyle
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func tableRows(tasks []model.Task) []table.Row {
	rows := make([]table.Row, len(tasks))
	for i, t := range tasks {
		rows[i] = table.Row{t.Title, t.Status, t.Priority, t.Assignee, t.Campaign, t.DueDate}
	}
	return rows
}

// LoadTasks returns a tea.Cmd that queries each kanban column by status,
// the list with its campaign and assignee filters, and the filter options.
func (m Model) LoadTasks() tea.Cmd {
	s := m.store
	var listFilter store.TaskFilter
	if c := m.campaignFilter(); c != "" {
		listFilter.Campaign = store.StrPtr(c)
	}
	if a := m.assigneeFilter(); a != "" {
		listFilter.Assignee = store.StrPtr(a)
	}

	return func() tea.Msg {
		ctx := context.Background()

		columns := make([][]model.Task, len(model.TaskStatuses))
		for i, status := range model.TaskStatuses {
			tasks, err := s.GetTasks(ctx, store.TaskFilter{Status: store.StrPtr(status)})
			if err != nil {
				return ui.ErrorMsg{Op: "loading " + status + " tasks", Err: err}
			}
			columns[i] = tasks
		}

		list, err := s.GetTasks(ctx, listFilter)
		if err != nil {
			return ui.ErrorMsg{Op: "loading task list", Err: err}
		}
		campaigns, err := s.GetCampaignNames(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading campaign names", Err: err}
		}
		assignees, err := s.GetAssignees(ctx)
		if err != nil {
			return ui.ErrorMsg{Op: "loading assignees", Err: err}
		}

		return TasksLoadedMsg{
			Columns:   columns,
			List:      list,
			Campaigns: campaigns,
			Assignees: assignees,
		}
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(tableColumns(width))
	m.table.SetHeight(max(height-4, 3))
}
