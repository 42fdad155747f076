package tasks

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/state"
	"github.com/nhle/marketing-hub/internal/ui"
	"github.com/nhle/marketing-hub/tests/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newLoaded(t *testing.T, mode state.TaskView) Model {
	t.Helper()
	m := New(testutil.NewTestStore(t), keys.DefaultKeyMap(), mode, 120, 40)
	return apply(t, m, m.LoadTasks())
}

func apply(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(TasksLoadedMsg)
	require.True(t, ok, "got %T", msg)
	m, _ = m.Update(loaded)
	return m
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestTasks_KanbanColumnsByStatus(t *testing.T) {
	m := newLoaded(t, state.TaskViewKanban)

	require.Len(t, m.columns, 4)
	assert.Equal(t, []string{"Design email templates"}, titles(m.columns[0]))
	assert.Equal(t, []string{"Create product demo video"}, titles(m.columns[1]))
	assert.Equal(t, []string{"Write blog post about new features"}, titles(m.columns[2]))
	assert.Equal(t, []string{"Social media content calendar"}, titles(m.columns[3]))

	view := m.View()
	for _, status := range model.TaskStatuses {
		assert.Contains(t, view, status+" (1)")
	}
}

func TestTasks_KanbanNavigationAndOpen(t *testing.T) {
	m := newLoaded(t, state.TaskViewKanban)

	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("j"))
	task, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Write blog post about new features", task.Title)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	open, ok := cmd().(ui.OpenTaskMsg)
	require.True(t, ok)
	assert.Equal(t, 3, open.Task.ID)
}

func TestTasks_ToggleLayoutAsksRoot(t *testing.T) {
	m := newLoaded(t, state.TaskViewKanban)

	_, cmd := m.Update(runes("v"))
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleLayoutMsg{}, cmd())

	m.SetMode(state.TaskViewList)
	assert.Equal(t, state.TaskViewList, m.Mode())
	assert.Contains(t, m.View(), "Campaign")
}

func TestTasks_ListFilters(t *testing.T) {
	m := newLoaded(t, state.TaskViewList)
	assert.Len(t, m.list, 4)

	var cmd tea.Cmd
	m, cmd = m.Update(runes("c"))
	m = apply(t, m, cmd)
	assert.Equal(t, "campaign: Q4 Product Launch | assignee: all", m.FilterSummary())
	assert.Equal(t, []string{
		"Create product demo video",
		"Write blog post about new features",
	}, titles(m.list))

	m, cmd = m.Update(runes("a"))
	m = apply(t, m, cmd)
	assert.Equal(t, "campaign: Q4 Product Launch | assignee: Mike R.", m.FilterSummary())
	assert.Equal(t, []string{"Create product demo video"}, titles(m.list))

	m, cmd = m.Update(runes("a"))
	m = apply(t, m, cmd)
	assert.Empty(t, m.list, "Anna K. has no Q4 tasks")
	assert.Contains(t, m.View(), "No matching tasks")

	// Kanban columns ignore the list filters.
	assert.Len(t, m.columns[0], 1)
}

func TestTasks_ListSelection(t *testing.T) {
	m := newLoaded(t, state.TaskViewList)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	task, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Design email templates", task.Title)
}
