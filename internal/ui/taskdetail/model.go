package taskdetail

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
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
	maxHeight = 34
	formRows  = 8
)

// CommentsLoadedMsg carries the comments of the open task.
type CommentsLoadedMsg struct {
	TaskID   int
	Comments []model.Comment
}

// CommentAddedMsg is dispatched once a new comment has been stored.
type CommentAddedMsg struct {
	Comment model.Comment
}

// TaskReloadedMsg carries the stored copy of the open task.
type TaskReloadedMsg struct {
	Task model.Task
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	body string
}

// Model is the task detail overlay.
type Model struct {
	store     store.Store
	keys      *keys.KeyMap
	zones     *zone.Manager
	author    string
	task      *model.Task
	comments  []model.Comment
	viewport  viewport.Model
	form      *huh.Form
	fb        *formBindings
	composing bool
	dark      bool
	width     int
	height    int
}

// New creates a new task detail model. Comments are attributed to author.
func New(s store.Store, k *keys.KeyMap, author string, width, height int) Model {
	m := Model{
		store:    s,
		keys:     k,
		author:   author,
		fb:       &formBindings{},
		viewport: viewport.New(0, 0),
	}
	m.SetSize(width, height)
	return m
}

// Open shows t and starts loading its comments.
func (m *Model) Open(t model.Task, dark bool) tea.Cmd {
	m.task = &t
	m.comments = nil
	m.composing = false
	m.form = nil
	m.dark = dark
	m.refresh()
	m.viewport.GotoTop()
	return m.LoadComments()
}

// SetZones sets the tracker the close button is marked in.
func (m *Model) SetZones(z *zone.Manager) {
	m.zones = z
}

// SetDark re-renders the description for the given theme.
func (m *Model) SetDark(dark bool) {
	m.dark = dark
	m.refresh()
}

// Composing reports whether the comment form has focus.
func (m Model) Composing() bool {
	return m.composing
}

// Task returns the task on display, if any.
func (m Model) Task() (model.Task, bool) {
	if m.task == nil {
		return model.Task{}, false
	}
	return *m.task, true
}

// Update handles messages for the task detail overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		if m.task == nil || msg.TaskID != m.task.ID {
			return m, nil
		}
		m.comments = msg.Comments
		m.refresh()
		return m, nil

	case CommentAddedMsg:
		if m.task == nil || msg.Comment.TaskID != m.task.ID {
			return m, nil
		}
		m.comments = append(m.comments, msg.Comment)
		m.composing = false
		m.form = nil
		m.refresh()
		m.viewport.GotoBottom()
		return m, m.ReloadTask()

	case TaskReloadedMsg:
		if m.task == nil || msg.Task.ID != m.task.ID {
			return m, nil
		}
		t := msg.Task
		m.task = &t
		m.refresh()
		return m, nil
	}

	if m.composing && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Comment) && m.task != nil {
		return m, m.startComment()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.composing = false
		return m, m.addComment(m.fb.body)
	case huh.StateAborted:
		m.composing = false
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) startComment() tea.Cmd {
	m.fb.body = ""
	m.composing = true
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Add a comment").
				Placeholder("Write a comment...").
				CharLimit(500).
				Lines(3).
				Validate(validateRequired("comment")).
				Value(&m.fb.body),
		),
	).WithShowHelp(false).WithWidth(m.viewport.Width)
	return m.form.Init()
}

// addComment stores body as a comment by the current user.
func (m Model) addComment(body string) tea.Cmd {
	if m.task == nil {
		return nil
	}
	s := m.store
	c := model.Comment{
		TaskID: m.task.ID,
		Author: m.author,
		Body:   strings.TrimSpace(body),
	}
	return func() tea.Msg {
		saved, err := s.AddComment(context.Background(), c)
		if err != nil {
			return ui.ErrorMsg{Op: "adding comment", Err: err}
		}
		return CommentAddedMsg{Comment: saved}
	}
}

// ReloadTask returns a tea.Cmd that fetches the open task again so counters
// reflect what the store holds.
func (m Model) ReloadTask() tea.Cmd {
	if m.task == nil {
		return nil
	}
	s := m.store
	id := m.task.ID
	return func() tea.Msg {
		t, err := s.GetTaskByID(context.Background(), id)
		if err != nil {
			return ui.ErrorMsg{Op: "reloading task", Err: err}
		}
		if t == nil {
			return ui.ErrorMsg{Op: "reloading task", Err: fmt.Errorf("task %d not found", id)}
		}
		return TaskReloadedMsg{Task: *t}
	}
}

// LoadComments returns a tea.Cmd that queries the open task's comments.
func (m Model) LoadComments() tea.Cmd {
	if m.task == nil {
		return nil
	}
	s := m.store
	id := m.task.ID
	return func() tea.Msg {
		comments, err := s.GetComments(context.Background(), id)
		if err != nil {
			return ui.ErrorMsg{Op: "loading comments", Err: err}
		}
		return CommentsLoadedMsg{TaskID: id, Comments: comments}
	}
}

// View renders the overlay panel.
func (m Model) View() string {
	if m.task == nil {
		return ""
	}
	title := ui.TitleBar(m.zones,
		theme.TitleStyle.Render(ui.Truncate(m.task.Title, m.viewport.Width-2)), m.viewport.Width)
	parts := []string{title, m.viewport.View()}
	if m.composing && m.form != nil {
		parts = append(parts, m.form.View(),
			theme.HelpStyle.Render("enter submit · alt+enter newline · esc close"))
	} else {
		parts = append(parts, theme.HelpStyle.Render("c comment · pgup/pgdn scroll · esc close"))
	}
	return theme.DetailPanelStyle.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	if m.task == nil {
		return ""
	}
	t := m.task
	width := m.viewport.Width
	meta := theme.MutedStyle

	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.StatusBadge(t.Status),
		" ",
		theme.PriorityStyle(t.Priority).Render(t.Priority+" priority"),
	)

	sections := []string{
		badges,
		"",
		fmt.Sprintf("%s %s   %s %s",
			ui.Avatars([]string{t.Assignee}, 1), t.Assignee,
			meta.Render("due"), t.DueDate),
		meta.Render("Campaign: ") + t.Campaign,
		ui.Tags(t.Tags),
		ui.Section("Description"),
	}
	if strings.TrimSpace(t.Description) == "" {
		sections = append(sections, meta.Italic(true).Render("No description"))
	} else {
		sections = append(sections, ui.RenderMarkdown(t.Description, width, m.dark))
	}

	sections = append(sections, ui.Section(fmt.Sprintf("Comments (%d)", t.CommentCount)))
	if len(m.comments) == 0 {
		sections = append(sections, meta.Render("No comments yet."))
	}
	for _, c := range m.comments {
		header := lipgloss.JoinHorizontal(lipgloss.Top,
			ui.Avatars([]string{c.Author}, 1), " ",
			lipgloss.NewStyle().Bold(true).Render(c.Author), " ",
			meta.Render(c.TimeLabel),
		)
		body := lipgloss.NewStyle().Width(max(width-2, 10)).PaddingLeft(2).Render(c.Body)
		sections = append(sections, header, body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetSize fits the overlay inside a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = min(max(width-4, 30), maxWidth)
	m.height = min(max(height-2, 14), maxHeight)
	m.viewport.Width = m.width - 6
	m.viewport.Height = max(m.height-6-formRows, 4)
	if m.form != nil {
		m.form = m.form.WithWidth(m.viewport.Width)
	}
	m.refresh()
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
